package tui

import (
	"fmt"

	"github.com/dkovalev/qr-mint/models"
)

type aboutModel struct {
	buildInfo     models.AppBuildInfo
	remoteEnabled bool
}

func newAboutModel(buildInfo models.AppBuildInfo, remoteEnabled bool) aboutModel {
	return aboutModel{buildInfo: buildInfo, remoteEnabled: remoteEnabled}
}

func (m aboutModel) View() string {
	mode := "local"
	if m.remoteEnabled {
		mode = "remote"
	}

	out := titleStyle.Render("About qr-mint") + "\n\n"
	out += fmt.Sprintf("Version:    %s\n", valueOrDash(m.buildInfo.BuildVersion()))
	out += fmt.Sprintf("Built:      %s\n", valueOrDash(m.buildInfo.BuildDate()))
	out += fmt.Sprintf("Commit:     %s\n", valueOrDash(m.buildInfo.BuildCommit()))
	out += fmt.Sprintf("Generation: %s\n", mode)
	out += "\n" + helpStyle.Render("esc back  q quit")
	return out
}
