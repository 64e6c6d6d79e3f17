package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pocket-money/internal/logger"
	"github.com/MKhiriev/go-pocket-money/models"
)

// userRepository is the database/sql implementation of [UserRepository].
// It handles user creation, lookup and the progress compare-and-swap
// against the "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record with the progress carried by user.
//
// Error handling:
//   - unique or primary key violation → [ErrUserAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("username", user.Name).Msg("user already exists")
			return models.User{}, ErrUserAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Name).Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// FindUserByName retrieves the user record with the given name.
//
// Error handling:
//   - no rows → [ErrNoUserWasFound].
//   - any other driver-level error → wrapped [ErrScanningRow], also
//     matching [ErrTransient] when the driver reports it as temporary.
func (r *userRepository) FindUserByName(ctx context.Context, name string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(r.db.builder, name)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByName").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		user       models.User
		lastActive models.Date
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.Name,
		&user.SecretHash,
		&lastActive,
		&user.StreakDays,
		&user.XP,
		&user.Points,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByName").Str("username", name).Msg("error scanning user")
		return models.User{}, r.db.wrapError(ErrScanningRow, err)
	}

	if !lastActive.IsZero() {
		user.LastActiveDate = &lastActive
	}

	return user, nil
}

// UpdateProgress performs the compare-and-swap of the progression counters.
// Zero affected rows mean either the counters moved on or the user is gone;
// both are reported as [ErrProgressConflict] and the caller re-reads.
// Temporary driver failures additionally match [ErrTransient].
func (r *userRepository) UpdateProgress(ctx context.Context, name string, expected, next models.Progress) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProgressQuery(r.db.builder, name, expected, next)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProgress").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProgress").Str("username", name).Msg("error updating progress")
		return r.db.wrapError(ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Warn().Str("func", "*userRepository.UpdateProgress").Str("username", name).Msg("progress changed concurrently")
		return ErrProgressConflict
	}

	return nil
}
