package tui

import (
	"github.com/dkovalev/qr-mint/models"
)

type resultModel struct {
	entry  models.HistoryEntry
	art    string
	status string
}

func newResultModel(entry models.HistoryEntry, art string) resultModel {
	return resultModel{entry: entry, art: art}
}

func (m resultModel) encoded() models.EncodedPayload {
	return models.EncodedPayload{Kind: m.entry.Kind, Text: m.entry.Payload}
}

func (m resultModel) View() string {
	out := titleStyle.Render(kindLabel(m.entry.Kind)) + "\n\n"
	out += m.art + "\n\n"
	out += fitText(m.entry.Payload, 72) + "\n"

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("s save PNG  c copy payload  n new  esc back  q quit")
	return out
}
