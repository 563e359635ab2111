package tui

import (
	"github.com/dkovalev/qr-mint/models"
)

type resultReadyMsg struct {
	entry models.HistoryEntry
	art   string
	err   error
}

type historyLoadedMsg struct {
	items []models.HistoryEntry
	err   error
}

type entryDeletedMsg struct {
	err error
}

type savedPNGMsg struct {
	path string
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
