package tui

import (
	"github.com/dkovalev/qr-mint/models"
	"github.com/charmbracelet/bubbles/textinput"
)

var wifiEncryptions = []models.WiFiEncryption{
	models.EncryptionWPA,
	models.EncryptionWEP,
	models.EncryptionNone,
	models.EncryptionRaw,
}

type formWiFiModel struct {
	inputs     []textinput.Model
	focus      int
	encIdx     int
	submitting bool
}

// The encryption selector sits after the text inputs, so focus ranges over
// len(inputs)+1 positions.
func newFormWiFiModel() formWiFiModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[1].EchoMode = textinput.EchoPassword
	inputs[1].EchoCharacter = '*'
	inputs[0].Focus()

	return formWiFiModel{inputs: inputs}
}

func (m formWiFiModel) encryption() models.WiFiEncryption {
	return wifiEncryptions[m.encIdx]
}

func (m formWiFiModel) onEncryption() bool {
	return m.focus == len(m.inputs)
}

func (m formWiFiModel) toRequest() models.GenerateRequest {
	return models.GenerateRequest{
		Kind: models.WiFi,
		WiFi: &models.WiFiFields{
			SSID:       m.inputs[0].Value(),
			Password:   m.inputs[1].Value(),
			Encryption: m.encryption(),
		},
	}
}

func (m formWiFiModel) View() string {
	encCursor := "  "
	if m.onEncryption() {
		encCursor = "> "
	}

	out := titleStyle.Render("New Wi-Fi QR code") + "\n\n"
	out += "Network name: [" + m.inputs[0].View() + "]\n"
	out += "Password:     [" + m.inputs[1].View() + "]\n"
	out += encCursor + "Encryption:   " + string(m.encryption()) + "\n\n"
	out += helpStyle.Render("esc back  tab next field  ←/→ encryption  enter generate")
	return out
}
