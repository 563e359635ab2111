package tui

import (
	"github.com/dkovalev/qr-mint/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type formTextModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newFormTextModel() formTextModel {
	inputs := make([]textinput.Model, 1)
	inputs[0] = textinput.New()
	inputs[0].Width = 60
	inputs[0].Focus()

	return formTextModel{inputs: inputs}
}

func (m formTextModel) toRequest() models.GenerateRequest {
	return models.GenerateRequest{
		Kind: models.GenericText,
		Text: &models.TextFields{Text: m.inputs[0].Value()},
	}
}

func (m formTextModel) View() string {
	out := titleStyle.Render("New text QR code") + "\n\n"
	out += "Text or URL: [" + m.inputs[0].View() + "]\n\n"
	out += helpStyle.Render("esc back  enter generate")
	return out
}
