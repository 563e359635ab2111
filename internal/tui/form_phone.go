package tui

import (
	"github.com/dkovalev/qr-mint/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// formPhoneModel backs both the WhatsApp and SMS forms; the kind chosen on
// the previous screen decides which encoder the request hits.
type formPhoneModel struct {
	kind       models.ContentKind
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newFormPhoneModel(kind models.ContentKind) formPhoneModel {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[0].Placeholder = "44"
	inputs[0].Focus()

	return formPhoneModel{kind: kind, inputs: inputs}
}

func (m formPhoneModel) toRequest() models.GenerateRequest {
	return models.GenerateRequest{
		Kind: m.kind,
		Phone: &models.PhoneMessageFields{
			CallingCode: m.inputs[0].Value(),
			LocalNumber: m.inputs[1].Value(),
			Message:     m.inputs[2].Value(),
		},
	}
}

func (m formPhoneModel) View() string {
	title := "New WhatsApp QR code"
	if m.kind == models.SMS {
		title = "New SMS QR code"
	}

	out := titleStyle.Render(title) + "\n\n"
	out += "Country code: [" + m.inputs[0].View() + "]\n"
	out += "Phone number: [" + m.inputs[1].View() + "]\n"
	out += "Message:      [" + m.inputs[2].View() + "]\n\n"
	out += helpStyle.Render("esc back  tab next field  enter generate")
	return out
}
