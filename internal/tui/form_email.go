package tui

import (
	"github.com/dkovalev/qr-mint/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type formEmailModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newFormEmailModel() formEmailModel {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[0].Focus()

	return formEmailModel{inputs: inputs}
}

func (m formEmailModel) toRequest() models.GenerateRequest {
	return models.GenerateRequest{
		Kind: models.Email,
		Email: &models.EmailFields{
			Recipient: m.inputs[0].Value(),
			Subject:   m.inputs[1].Value(),
			Body:      m.inputs[2].Value(),
		},
	}
}

func (m formEmailModel) View() string {
	out := titleStyle.Render("New email QR code") + "\n\n"
	out += "To:      [" + m.inputs[0].View() + "]\n"
	out += "Subject: [" + m.inputs[1].View() + "]\n"
	out += "Body:    [" + m.inputs[2].View() + "]\n\n"
	out += helpStyle.Render("esc back  tab next field  enter generate")
	return out
}
