package client

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-site-client/internal/adapter"
	"github.com/MKhiriev/go-site-client/internal/config"
	"github.com/MKhiriev/go-site-client/internal/guard"
	"github.com/MKhiriev/go-site-client/internal/logger"
	"github.com/MKhiriev/go-site-client/internal/service"
	"github.com/MKhiriev/go-site-client/internal/tui"
	"github.com/MKhiriev/go-site-client/internal/workers"
	"github.com/MKhiriev/go-site-client/models"
)

// FingerprintInitializer computes and persists the device fingerprint.
type FingerprintInitializer interface {
	Initialize(ctx context.Context) (string, error)
}

// App wires the session state, the interceptor and the terminal program
// into one process lifecycle.
type App struct {
	services    *service.ClientServices
	adapters    *adapter.Adapters
	fingerprint FingerprintInitializer
	workers     *workers.Workers

	cfg       config.ClientApp
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// NewApp returns an [App].
func NewApp(
	services *service.ClientServices,
	adapters *adapter.Adapters,
	fingerprint FingerprintInitializer,
	ws *workers.Workers,
	cfg config.ClientApp,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
) (*App, error) {
	if services == nil || adapters == nil {
		return nil, ErrMissingDependency
	}
	return &App{
		services:    services,
		adapters:    adapters,
		fingerprint: fingerprint,
		workers:     ws,
		cfg:         cfg,
		buildInfo:   buildInfo,
		logger:      log,
	}, nil
}

// Run shows the terminal UI until the user quits or the process is
// interrupted. Quitting with ctrl+c is not an error.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = a.logger.WithContext(ctx)

	if a.fingerprint != nil {
		if _, err := a.fingerprint.Initialize(ctx); err != nil {
			a.logger.Warn().Err(err).Str("func", "App.Run").Msg("device fingerprint not persisted")
		}
	}

	deps := tui.NewDeps(ctx, a.services, a.buildInfo, a.cfg.Development, a.logger)
	program := tui.NewProgram(deps, guard.HomePath)

	unsubscribe := a.connect(program)
	defer unsubscribe()

	go a.services.Session.Init(ctx)

	if a.workers != nil {
		a.workers.Start(ctx)
		defer a.workers.Stop()
	}

	go func() {
		<-ctx.Done()
		program.Quit()
	}()

	err := program.Run()
	a.services.Session.Dispose()

	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Str("func", "App.Run").Msg("client closed by user")
		return nil
	}
	return err
}

// sender is the part of the program the subscriptions use.
type sender interface {
	Send(msg tea.Msg)
	Location() *tui.Location
}

// connect forwards session changes and expiry events to the program and
// lets the interceptor see the current screen path.
func (a *App) connect(program sender) func() {
	a.adapters.Interceptor.SetPathProvider(program.Location())

	unsubSession := a.services.Session.Subscribe(func(snap service.Snapshot) {
		program.Send(tui.SessionChanged{Snapshot: snap})
	})

	unsubExpired := a.adapters.Interceptor.Subscribe(func(ev adapter.SessionExpired) {
		a.logger.Info().
			Str("func", "App.connect").
			Str("from", ev.From).
			Str("login_path", ev.LoginPath).
			Msg("session expired")
		a.services.Session.HandleSessionExpired()
		program.Send(tui.NavigateTo{Path: ev.LoginPath, From: ev.From})
	})

	return func() {
		unsubExpired()
		unsubSession()
	}
}
