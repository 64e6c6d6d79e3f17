package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gosimple/slug"

	"github.com/MKhiriev/go-pocket-money/internal/logger"
	"github.com/MKhiriev/go-pocket-money/internal/progression"
	"github.com/MKhiriev/go-pocket-money/internal/store"
	"github.com/MKhiriev/go-pocket-money/internal/validators"
	"github.com/MKhiriev/go-pocket-money/models"
)

// DefaultCategory is assigned to entries recorded without a category.
const DefaultCategory = "other"

var (
	expenseCategories = []string{"food", progression.SnackCategory, "transport", "shopping", "entertainment", "education", DefaultCategory}
	incomeCategories  = []string{"allowance", "gift", "chores", DefaultCategory}
)

type ledgerService struct {
	entryRepository    store.EntryRepository
	wishlistRepository store.WishlistRepository
	progression        ProgressionService
	validator          validators.Validator

	now func() time.Time

	logger *logger.Logger
}

func NewLedgerService(entryRepository store.EntryRepository, wishlistRepository store.WishlistRepository,
	progression ProgressionService, validator validators.Validator, logger *logger.Logger) LedgerService {
	return &ledgerService{
		entryRepository:    entryRepository,
		wishlistRepository: wishlistRepository,
		progression:        progression,
		validator:          validator,
		now:                time.Now,
		logger:             logger,
	}
}

// Record normalises the category, defaults the date to today and appends
// the entry. Progression is accrued afterwards; its failure is only logged
// because the entry itself is already stored.
func (l *ledgerService) Record(ctx context.Context, entry models.Entry) (models.Entry, error) {
	log := logger.FromContext(ctx)

	entry.Category = normalizeCategory(entry.Category)
	if entry.Date.IsZero() {
		entry.Date = models.NewDate(l.now())
	}

	if err := l.validator.Validate(ctx, entry); err != nil {
		log.Debug().Err(err).Str("func", "*ledgerService.Record").Msg("entry rejected")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	saved, err := l.entryRepository.SaveEntry(ctx, entry)
	if err != nil {
		log.Err(err).Str("func", "*ledgerService.Record").Str("kind", string(entry.Kind)).Msg("saving entry failed")
		return models.Entry{}, fmt.Errorf("saving entry failed: %w", err)
	}

	if err = l.progression.Accrue(ctx, entry.Username); err != nil {
		log.Warn().Err(err).Str("func", "*ledgerService.Record").Str("username", entry.Username).Msg("progress accrual failed")
	}

	return saved, nil
}

func (l *ledgerService) EntriesFor(ctx context.Context, username string, kind models.EntryKind) ([]models.Entry, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, validators.ErrInvalidKind)
	}

	return l.entryRepository.ListEntries(ctx, username, kind)
}

func (l *ledgerService) DailyTotal(ctx context.Context, username string, kind models.EntryKind, date models.Date) (int64, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("%w: %w", ErrInvalidInput, validators.ErrInvalidKind)
	}
	if date.IsZero() {
		date = models.NewDate(l.now())
	}

	return l.entryRepository.DailyTotal(ctx, username, kind, date)
}

// Summary reads both ledgers and the wishlist goal and derives the
// aggregates as of today.
func (l *ledgerService) Summary(ctx context.Context, username string) (models.Summary, error) {
	expenses, err := l.entryRepository.ListEntries(ctx, username, models.EntryKindExpense)
	if err != nil {
		return models.Summary{}, fmt.Errorf("listing expenses: %w", err)
	}

	income, err := l.entryRepository.ListEntries(ctx, username, models.EntryKindIncome)
	if err != nil {
		return models.Summary{}, fmt.Errorf("listing income: %w", err)
	}

	var goal *models.WishlistGoal
	stored, err := l.wishlistRepository.GetGoal(ctx, username)
	switch {
	case err == nil:
		goal = &stored
	case errors.Is(err, store.ErrWishlistNotFound):
	default:
		return models.Summary{}, fmt.Errorf("reading wishlist goal: %w", err)
	}

	return progression.Summarize(expenses, income, goal, models.NewDate(l.now())), nil
}

func (l *ledgerService) Categories(ctx context.Context) models.Categories {
	return models.Categories{
		Expense: append([]string(nil), expenseCategories...),
		Income:  append([]string(nil), incomeCategories...),
	}
}

func normalizeCategory(category string) string {
	if normalized := slug.Make(category); normalized != "" {
		return normalized
	}

	return DefaultCategory
}
