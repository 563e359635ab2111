package tui

import (
	"fmt"

	"github.com/dkovalev/qr-mint/models"
)

type historyModel struct {
	items   []models.HistoryEntry
	idx     int
	loading bool
}

func newHistoryModel() historyModel {
	return historyModel{loading: true}
}

func (m historyModel) current() (models.HistoryEntry, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.HistoryEntry{}, false
	}
	return m.items[m.idx], true
}

func (m historyModel) View() string {
	out := titleStyle.Render("History") + "\n\n"

	if m.loading {
		out += "Loading...\n"
	} else if len(m.items) == 0 {
		out += "No entries yet\n"
	} else {
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s  %-12s %s\n",
				cursor,
				item.CreatedAt.Local().Format("2006-01-02 15:04"),
				kindLabel(item.Kind),
				fitText(item.Payload, 40),
			)
		}
	}

	out += "\n" + helpStyle.Render("enter open  d delete  esc back  q quit")
	return out
}
