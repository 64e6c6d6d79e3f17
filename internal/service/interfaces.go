package service

import (
	"context"

	"github.com/MKhiriev/go-pocket-money/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService signs users in, creating them on first use, and issues and
// parses session tokens.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// LedgerService records expenses and income and derives aggregates from them.
type LedgerService interface {
	// Record validates and appends entry, then accrues progression for its
	// owner. An accrual failure is logged and never fails the call.
	Record(ctx context.Context, entry models.Entry) (models.Entry, error)

	// EntriesFor lists entries newest first.
	EntriesFor(ctx context.Context, username string, kind models.EntryKind) ([]models.Entry, error)

	// DailyTotal sums the amounts of one kind on one date.
	DailyTotal(ctx context.Context, username string, kind models.EntryKind, date models.Date) (int64, error)

	Summary(ctx context.Context, username string) (models.Summary, error)
	Categories(ctx context.Context) models.Categories
}

// ProgressionService persists XP, points and the activity streak.
type ProgressionService interface {
	// Accrue applies one activity event to the user's progress. A missing
	// user is a logged no-op.
	Accrue(ctx context.Context, username string) error

	Report(ctx context.Context, username string) (models.ProgressReport, error)
}

type FeedbackService interface {
	Evaluate(ctx context.Context, username string) (models.FeedbackReport, error)
}

type LeaderboardService interface {
	// TopN ranks users by points then name. n outside [1, 100] is clamped;
	// zero means the default size.
	TopN(ctx context.Context, n int) ([]models.LeaderboardRow, error)
}

// WishlistService manages the single savings goal of a user.
type WishlistService interface {
	Get(ctx context.Context, username string) (models.WishlistGoal, error)
	Replace(ctx context.Context, username string, goal models.WishlistGoal) error
	Clear(ctx context.Context, username string) error

	// Thumbnail returns a PNG of the goal image fitted into maxSide×maxSide.
	Thumbnail(ctx context.Context, username string, maxSide int) ([]byte, error)
}

// ChatService forwards prompts to the generative-language collaborator.
type ChatService interface {
	Ask(ctx context.Context, req models.ChatRequest) (models.ChatReply, error)

	// Ping sends the fixed "ping" prompt to test the credential and model.
	Ping(ctx context.Context, req models.ChatRequest) (models.ChatReply, error)

	Models() models.ChatModels
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
