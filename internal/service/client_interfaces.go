package service

import (
	"context"

	"github.com/MKhiriev/go-pocket-money/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService manages the client's login session. The bearer token is
// kept in a session.TokenStore so that separate invocations share it.
type ClientAuthService interface {
	// Login signs in on the server (creating the user on first use), stores
	// the token and returns the user name.
	Login(ctx context.Context, creds models.Credentials) (string, error)

	// Restore loads a stored token into the adapter and returns its user
	// name. Returns ErrNotLoggedIn when nothing is stored.
	Restore(ctx context.Context) (string, error)

	// Logout forgets the stored token.
	Logout(ctx context.Context) error
}

// ClientPocketService is the client's view of the server API. Every
// transport error is translated into the same sentinel errors the server
// services use.
type ClientPocketService interface {
	Version(ctx context.Context) (string, error)
	Categories(ctx context.Context) (models.Categories, error)
	Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardRow, error)

	Record(ctx context.Context, entry models.Entry) (models.Entry, error)
	Entries(ctx context.Context, kind models.EntryKind) ([]models.Entry, error)
	DailyTotal(ctx context.Context, kind models.EntryKind, date models.Date) (int64, error)

	Summary(ctx context.Context) (models.Summary, error)
	Progress(ctx context.Context) (models.ProgressReport, error)
	Feedback(ctx context.Context) (models.FeedbackReport, error)

	// Wishlist returns store.ErrWishlistNotFound when no goal is set.
	Wishlist(ctx context.Context) (models.WishlistGoal, error)
	SetWishlist(ctx context.Context, goal models.WishlistGoal) error
	ClearWishlist(ctx context.Context) error

	Chat(ctx context.Context, req models.ChatRequest) (models.ChatReply, error)
	ChatPing(ctx context.Context, req models.ChatRequest) (models.ChatReply, error)
	ChatModels(ctx context.Context) (models.ChatModels, error)
}
