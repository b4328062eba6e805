package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/content-console/internal/config"
	"github.com/MKhiriev/content-console/internal/logger"
	"github.com/MKhiriev/content-console/internal/service"
	"github.com/MKhiriev/content-console/internal/tui"
	"github.com/MKhiriev/content-console/internal/workers"
)

// UI is the interactive front end driven by [App].
type UI interface {
	Run(ctx context.Context) error
}

var errNilDependency = errors.New("client: services and ui are required")

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, cfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errNilDependency
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(workers.NewProfileRefreshWorker(services.ProfileJob, cfg.ProfileRefreshInterval)),
		logger:   log,
	}, nil
}

// Run restores the stored session, starts background jobs and blocks in
// the UI until the user quits or a stop signal arrives.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	session, err := a.services.AuthService.RestoreSession(ctx)
	if err != nil {
		// the console still starts on the login page
		a.logger.Warn().Err(err).Msg("restore session failed")
	} else if session.HasToken() {
		a.logger.Info().Msg("session restored")
	}

	a.workers.Run(ctx)
	defer a.workers.Stop()

	err = a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("console stopped")
		return nil
	default:
		return fmt.Errorf("ui run: %w", err)
	}
}
