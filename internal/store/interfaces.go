package store

import (
	"context"

	"github.com/MKhiriev/go-pocket-money/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists users and their progression counters.
type UserRepository interface {
	// CreateUser inserts a new user. Returns [ErrUserAlreadyExists] when the
	// name is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByName returns [ErrNoUserWasFound] for an unknown name.
	FindUserByName(ctx context.Context, name string) (models.User, error)
	// UpdateProgress stores next only if the stored counters still equal
	// expected; otherwise it returns [ErrProgressConflict].
	UpdateProgress(ctx context.Context, name string, expected, next models.Progress) error
}

// EntryRepository is the append-only ledger of expenses and income.
type EntryRepository interface {
	// SaveEntry appends entry to the ledger of its kind and returns it with
	// the assigned ID.
	SaveEntry(ctx context.Context, entry models.Entry) (models.Entry, error)
	// ListEntries returns the entries of one kind, newest date first and
	// newest insertion first within a day.
	ListEntries(ctx context.Context, username string, kind models.EntryKind) ([]models.Entry, error)
	// DailyTotal sums the amounts of one kind on date.
	DailyTotal(ctx context.Context, username string, kind models.EntryKind, date models.Date) (int64, error)
}

// WishlistRepository stores at most one goal per user.
type WishlistRepository interface {
	// GetGoal returns [ErrWishlistNotFound] when the user has no goal.
	GetGoal(ctx context.Context, username string) (models.WishlistGoal, error)
	// ReplaceGoal deletes any previous goal and inserts goal atomically.
	ReplaceGoal(ctx context.Context, username string, goal models.WishlistGoal) error
	// DeleteGoal removes the goal; a missing goal is not an error.
	DeleteGoal(ctx context.Context, username string) error
}

// LeaderboardRepository ranks users.
type LeaderboardRepository interface {
	// TopUsers returns at most limit users ordered by points descending
	// and name ascending.
	TopUsers(ctx context.Context, limit int) ([]models.User, error)
}
