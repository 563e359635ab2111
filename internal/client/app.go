// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kovalev

package client

import (
	"context"

	"github.com/dkovalev/qr-mint/internal/config"
	"github.com/dkovalev/qr-mint/internal/logger"
	"github.com/dkovalev/qr-mint/internal/service"
	"github.com/dkovalev/qr-mint/internal/tui"
	"github.com/dkovalev/qr-mint/internal/workers"
)

type App struct {
	services   *service.ClientServices
	tui        *tui.TUI
	workersCfg config.ClientWorkers
	logger     *logger.Logger
}

// NewApp assembles the client runtime from its prepared collaborators.
func NewApp(services *service.ClientServices, ui *tui.TUI, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	return &App{services: services, tui: ui, workersCfg: workersCfg, logger: log}, nil
}

// Run starts the background prune job and blocks in the TUI until the user
// exits.
func (a *App) Run() error {
	ctx := context.Background()

	background := workers.NewWorkers(workers.WorkerFunc(func() {
		a.services.PruneJob.Start(ctx, a.workersCfg.PruneInterval)
	}))
	background.Run()
	defer a.services.PruneJob.Stop()

	return a.tui.Run(ctx)
}
