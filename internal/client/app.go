package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-pocket-money/internal/logger"
	"github.com/MKhiriev/go-pocket-money/internal/service"
	"github.com/MKhiriev/go-pocket-money/internal/tui"
	"github.com/MKhiriev/go-pocket-money/models"
)

// ErrNotLoggedIn is returned by commands that need a session when none is
// stored.
var ErrNotLoggedIn = errors.New("not logged in, run `login <name>` first")

// App is the client runtime shared by the interactive UI and the one-shot
// commands.
type App struct {
	services  *service.ClientServices
	ui        UI
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	in  io.Reader
	out io.Writer
}

func NewApp(services *service.ClientServices, ui UI, buildInfo models.AppBuildInfo, logger *logger.Logger) *App {
	return &App{
		services:  services,
		ui:        ui,
		buildInfo: buildInfo,
		logger:    logger,
		in:        os.Stdin,
		out:       os.Stdout,
	}
}

// Run restores the stored session or asks the user to sign in, then runs
// the main loop. Logging out drops the session and starts over.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		username, err := a.services.AuthService.Restore(ctx)
		if errors.Is(err, service.ErrNotLoggedIn) {
			username, err = a.ui.LoginFlow(ctx)
		}
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("signing in: %w", err)
		}

		logout, err := a.ui.MainLoop(ctx, username)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		if err = a.services.AuthService.Logout(ctx); err != nil {
			return fmt.Errorf("logging out: %w", err)
		}
		a.logger.Info().Str("func", "*App.Run").Str("username", username).Msg("logged out")
	}
}

// session restores the stored session for a one-shot command.
func (a *App) session(ctx context.Context) (string, error) {
	username, err := a.services.AuthService.Restore(ctx)
	if errors.Is(err, service.ErrNotLoggedIn) {
		return "", ErrNotLoggedIn
	}
	if err != nil {
		return "", fmt.Errorf("restoring session: %w", err)
	}
	return username, nil
}
