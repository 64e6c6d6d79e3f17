package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pocket-money/internal/logger"
	"github.com/MKhiriev/go-pocket-money/models"
)

type wishlistRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewWishlistRepository constructs a [WishlistRepository].
func NewWishlistRepository(db *DB, logger *logger.Logger) WishlistRepository {
	return &wishlistRepository{
		db:     db,
		logger: logger,
	}
}

// GetGoal returns the stored goal. A legacy row with an empty label and a
// zero target is reported as [ErrWishlistNotFound] too.
func (r *wishlistRepository) GetGoal(ctx context.Context, username string) (models.WishlistGoal, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetWishlistQuery(r.db.builder, username)
	if err != nil {
		log.Err(err).Str("func", "*wishlistRepository.GetGoal").Msg("failed to build query")
		return models.WishlistGoal{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		goal        models.WishlistGoal
		contentType sql.NullString
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&goal.ItemLabel, &goal.TargetAmount, &goal.Image, &contentType)
	if errors.Is(err, sql.ErrNoRows) {
		return models.WishlistGoal{}, ErrWishlistNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*wishlistRepository.GetGoal").Str("username", username).Msg("failed to scan wishlist row")
		return models.WishlistGoal{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	goal.ImageContentType = contentType.String

	if goal.IsEmpty() {
		return models.WishlistGoal{}, ErrWishlistNotFound
	}

	return goal, nil
}

// ReplaceGoal deletes the previous goal and inserts the new one inside one
// transaction, so readers never observe two goals or none in between.
func (r *wishlistRepository) ReplaceGoal(ctx context.Context, username string, goal models.WishlistGoal) error {
	log := logger.FromContext(ctx)

	deleteQuery, deleteArgs, err := buildDeleteWishlistQuery(r.db.builder, username)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	insertQuery, insertArgs, err := buildInsertWishlistQuery(r.db.builder, username, goal)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*wishlistRepository.ReplaceGoal").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).Str("func", "*wishlistRepository.ReplaceGoal").Str("username", username).Msg("failed to delete previous goal")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		log.Err(err).Str("func", "*wishlistRepository.ReplaceGoal").Str("username", username).Msg("failed to insert goal")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*wishlistRepository.ReplaceGoal").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *wishlistRepository) DeleteGoal(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteWishlistQuery(r.db.builder, username)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*wishlistRepository.DeleteGoal").Str("username", username).Msg("failed to delete goal")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
