package tui

import (
	"github.com/dkovalev/qr-mint/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type formVCardModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newFormVCardModel() formVCardModel {
	inputs := make([]textinput.Model, 13)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[0].Focus()

	return formVCardModel{inputs: inputs}
}

func (m formVCardModel) toRequest() models.GenerateRequest {
	return models.GenerateRequest{
		Kind: models.VCard,
		VCard: &models.VCardFields{
			FirstName: m.inputs[0].Value(),
			LastName:  m.inputs[1].Value(),
			Mobile:    m.inputs[2].Value(),
			Email:     m.inputs[3].Value(),
			Company:   m.inputs[4].Value(),
			JobTitle:  m.inputs[5].Value(),
			Street:    m.inputs[6].Value(),
			City:      m.inputs[7].Value(),
			State:     m.inputs[8].Value(),
			Zip:       m.inputs[9].Value(),
			Country:   m.inputs[10].Value(),
			Website:   m.inputs[11].Value(),
			PhotoURI:  m.inputs[12].Value(),
		},
	}
}

func (m formVCardModel) View() string {
	out := titleStyle.Render("New contact QR code") + "\n\n"
	out += "First name: [" + m.inputs[0].View() + "]\n"
	out += "Last name:  [" + m.inputs[1].View() + "]\n"
	out += "Mobile:     [" + m.inputs[2].View() + "]\n"
	out += "Email:      [" + m.inputs[3].View() + "]\n"
	out += "Company:    [" + m.inputs[4].View() + "]\n"
	out += "Job title:  [" + m.inputs[5].View() + "]\n"
	out += "Street:     [" + m.inputs[6].View() + "]\n"
	out += "City:       [" + m.inputs[7].View() + "]\n"
	out += "State:      [" + m.inputs[8].View() + "]\n"
	out += "ZIP:        [" + m.inputs[9].View() + "]\n"
	out += "Country:    [" + m.inputs[10].View() + "]\n"
	out += "Website:    [" + m.inputs[11].View() + "]\n"
	out += "Photo URL:  [" + m.inputs[12].View() + "]\n\n"
	out += helpStyle.Render("esc back  tab next field  enter generate")
	return out
}
