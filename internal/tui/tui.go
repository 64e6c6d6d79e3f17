package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pocket-money/internal/logger"
	"github.com/MKhiriev/go-pocket-money/internal/service"
	"github.com/MKhiriev/go-pocket-money/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	options   []tea.ProgramOption
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		logger:    logger,
		options:   []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// LoginFlow runs the sign-in screen until the user is authenticated and
// returns the signed-in name.
func (t *TUI) LoginFlow(ctx context.Context) (string, error) {
	pages := map[string]tea.Model{
		pageLogin: NewLoginModel(ctx, t.services.AuthService),
	}

	result, err := t.run(NewRootModel(pages, pageLogin, t.buildInfo))
	if err != nil {
		return "", err
	}
	if result.quitByUser || result.username == "" {
		return "", ErrUserQuit
	}

	t.logger.Info().Str("func", "*TUI.LoginFlow").Str("username", result.username).Msg("signed in")
	return result.username, nil
}

// MainLoop runs the main menu for username. It reports whether the user
// asked to log out.
func (t *TUI) MainLoop(ctx context.Context, username string) (logout bool, err error) {
	pocket := t.services.PocketService
	pages := map[string]tea.Model{
		pageMenu:        NewMenuModel(username),
		pageAddExpense:  NewEntryFormModel(ctx, pocket, models.EntryKindExpense),
		pageAddIncome:   NewEntryFormModel(ctx, pocket, models.EntryKindIncome),
		pageExpenses:    NewEntriesModel(ctx, pocket, models.EntryKindExpense),
		pageIncome:      NewEntriesModel(ctx, pocket, models.EntryKindIncome),
		pageDashboard:   NewDashboardModel(ctx, pocket),
		pageWishlist:    NewWishlistModel(ctx, pocket),
		pageLeaderboard: NewLeaderboardModel(ctx, pocket, username),
		pageChat:        NewChatModel(ctx, pocket),
	}

	result, err := t.run(NewRootModel(pages, pageMenu, t.buildInfo))
	if err != nil {
		return false, err
	}
	return result.logout, nil
}

func (t *TUI) run(root RootModel) (RootModel, error) {
	finalModel, err := tea.NewProgram(root, t.options...).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.run").Msg("tui program failed")
		return RootModel{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return RootModel{}, tea.ErrProgramKilled
	}
	return result, nil
}
