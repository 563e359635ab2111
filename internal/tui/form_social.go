package tui

import (
	"github.com/dkovalev/qr-mint/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type formSocialModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newFormSocialModel() formSocialModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[1].Placeholder = "https://..."
	inputs[0].Focus()

	return formSocialModel{inputs: inputs}
}

func (m formSocialModel) toRequest() models.GenerateRequest {
	return models.GenerateRequest{
		Kind: models.SocialLink,
		SocialLink: &models.SocialLinkFields{
			Platform: m.inputs[0].Value(),
			URL:      m.inputs[1].Value(),
		},
	}
}

func (m formSocialModel) View() string {
	out := titleStyle.Render("New social link QR code") + "\n\n"
	out += "Platform:    [" + m.inputs[0].View() + "]\n"
	out += "Profile URL: [" + m.inputs[1].View() + "]\n\n"
	out += helpStyle.Render("esc back  tab next field  enter generate")
	return out
}
