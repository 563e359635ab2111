package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dkovalev/qr-mint/models"
	"github.com/charmbracelet/bubbles/textinput"
)

var errCoordinateNotANumber = errors.New("coordinates must be decimal numbers")

type formGeoModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newFormGeoModel() formGeoModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[0].Placeholder = "51.507351"
	inputs[1].Placeholder = "-0.127758"
	inputs[0].Focus()

	return formGeoModel{inputs: inputs}
}

// toRequest parses the typed coordinates. An empty input stays nil so the
// generation pipeline reports the missing field; a non-numeric input is
// rejected here before the request is built.
func (m formGeoModel) toRequest() (models.GenerateRequest, error) {
	fields := &models.GeoFields{}

	lat, err := parseCoordinate(m.inputs[0].Value())
	if err != nil {
		return models.GenerateRequest{}, err
	}
	fields.Latitude = lat

	lon, err := parseCoordinate(m.inputs[1].Value())
	if err != nil {
		return models.GenerateRequest{}, err
	}
	fields.Longitude = lon

	return models.GenerateRequest{Kind: models.Geo, Geo: fields}, nil
}

func parseCoordinate(v string) (*float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}

	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, errCoordinateNotANumber
	}
	return &parsed, nil
}

func (m formGeoModel) View() string {
	out := titleStyle.Render("New location QR code") + "\n\n"
	out += "Latitude:  [" + m.inputs[0].View() + "]\n"
	out += "Longitude: [" + m.inputs[1].View() + "]\n\n"
	out += helpStyle.Render("esc back  tab next field  enter generate")
	return out
}
