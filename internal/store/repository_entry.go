package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-pocket-money/internal/logger"
	"github.com/MKhiriev/go-pocket-money/models"
)

// entryRepository stores expenses and income in two tables with the same
// shape; only expenses carry a necessity column.
type entryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEntryRepository constructs an [EntryRepository].
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	logger.Debug().Msg("creating entry repository")
	return &entryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *entryRepository) SaveEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertEntryQuery(r.db.builder, entry)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.SaveEntry").Msg("failed to build query")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&entry.ID); err != nil {
		log.Err(err).
			Str("func", "*entryRepository.SaveEntry").
			Str("username", entry.Username).
			Str("kind", string(entry.Kind)).
			Msg("failed to insert entry")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().
		Str("func", "*entryRepository.SaveEntry").
		Str("username", entry.Username).
		Int64("entry_id", entry.ID).
		Msg("entry saved")

	return entry, nil
}

func (r *entryRepository) ListEntries(ctx context.Context, username string, kind models.EntryKind) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(r.db.builder, username, kind)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Str("username", username).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.Entry, 0, 32)
	for rows.Next() {
		entry := models.Entry{Kind: kind, Username: username}
		dest := []any{&entry.ID, &entry.Date, &entry.Label, &entry.Amount, &entry.Category}

		var necessity sql.NullString
		if kind == models.EntryKindExpense {
			dest = append(dest, &necessity)
		}

		if err := rows.Scan(dest...); err != nil {
			log.Err(err).Str("func", "*entryRepository.ListEntries").Str("username", username).Msg("failed to scan entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entry.Necessity = models.Necessity(necessity.String)

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *entryRepository) DailyTotal(ctx context.Context, username string, kind models.EntryKind, date models.Date) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDailyTotalQuery(r.db.builder, username, kind, date)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.DailyTotal").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*entryRepository.DailyTotal").Str("username", username).Msg("failed to sum entries")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return total, nil
}
