package tui

import "github.com/MKhiriev/go-pocket-money/models"

// Page names registered in the main loop router.
const (
	pageLogin       = "login"
	pageMenu        = "menu"
	pageAddExpense  = "add-expense"
	pageAddIncome   = "add-income"
	pageExpenses    = "expenses"
	pageIncome      = "income"
	pageDashboard   = "dashboard"
	pageWishlist    = "wishlist"
	pageLeaderboard = "leaderboard"
	pageChat        = "chat"
)

// NavigateTo switches the active page of [RootModel]. When Payload is set it
// is delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult finishes the login flow.
type LoginResult struct {
	Username string
	Err      error
}

// LogoutRequested ends the main loop and asks the caller to drop the session.
type LogoutRequested struct{}

type categoriesLoadedMsg struct {
	categories models.Categories
	err        error
}

type entrySavedMsg struct {
	entry models.Entry
	err   error
}

type entriesLoadedMsg struct {
	kind    models.EntryKind
	entries []models.Entry
	today   int64
	err     error
}

type dashboardLoadedMsg struct {
	summary  models.Summary
	progress models.ProgressReport
	feedback models.FeedbackReport
	err      error
}

type wishlistLoadedMsg struct {
	goal models.WishlistGoal
	err  error
}

type wishlistSavedMsg struct {
	cleared bool
	err     error
}

type leaderboardLoadedMsg struct {
	rows []models.LeaderboardRow
	err  error
}

type chatReplyMsg struct {
	reply models.ChatReply
	err   error
}

type copiedMsg struct {
	err error
}

type chatModelsMsg struct {
	models models.ChatModels
	err    error
}
