package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pocket-money/internal/logger"
	"github.com/MKhiriev/go-pocket-money/models"
)

type leaderboardRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLeaderboardRepository constructs a [LeaderboardRepository].
func NewLeaderboardRepository(db *DB, logger *logger.Logger) LeaderboardRepository {
	return &leaderboardRepository{
		db:     db,
		logger: logger,
	}
}

func (r *leaderboardRepository) TopUsers(ctx context.Context, limit int) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildTopUsersQuery(r.db.builder, limit)
	if err != nil {
		log.Err(err).Str("func", "*leaderboardRepository.TopUsers").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*leaderboardRepository.TopUsers").Int("limit", limit).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, limit)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.Name, &u.XP, &u.Points); err != nil {
			log.Err(err).Str("func", "*leaderboardRepository.TopUsers").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}
