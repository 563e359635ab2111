package tui

import "github.com/dkovalev/qr-mint/models"

type kindSelectModel struct {
	kinds []models.ContentKind
	idx   int
}

func newKindSelectModel() kindSelectModel {
	return kindSelectModel{kinds: models.ContentKinds()}
}

func (m kindSelectModel) current() models.ContentKind {
	if m.idx < 0 || m.idx >= len(m.kinds) {
		return 0
	}
	return m.kinds[m.idx]
}

func kindLabel(k models.ContentKind) string {
	switch k {
	case models.WiFi:
		return "Wi-Fi network"
	case models.VCard:
		return "Contact card"
	case models.Email:
		return "Email"
	case models.WhatsApp:
		return "WhatsApp chat"
	case models.SMS:
		return "SMS"
	case models.SocialLink:
		return "Social link"
	case models.GenericText:
		return "Text / URL"
	case models.Geo:
		return "Location"
	default:
		return "Unknown"
	}
}

func (m kindSelectModel) View() string {
	out := titleStyle.Render("qr-mint") + "\n\nWhat do you want to encode?\n\n"
	for i, kind := range m.kinds {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + kindLabel(kind) + "\n"
	}
	out += "\n" + helpStyle.Render("enter select  h history  a about  q quit")
	return out
}
