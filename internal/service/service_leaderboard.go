package service

import (
	"context"

	"github.com/MKhiriev/go-pocket-money/internal/logger"
	"github.com/MKhiriev/go-pocket-money/internal/progression"
	"github.com/MKhiriev/go-pocket-money/internal/store"
	"github.com/MKhiriev/go-pocket-money/models"
)

const (
	DefaultLeaderboardSize = 10
	MaxLeaderboardSize     = 100
)

type leaderboardService struct {
	leaderboardRepository store.LeaderboardRepository

	logger *logger.Logger
}

func NewLeaderboardService(leaderboardRepository store.LeaderboardRepository, logger *logger.Logger) LeaderboardService {
	return &leaderboardService{
		leaderboardRepository: leaderboardRepository,
		logger:                logger,
	}
}

func (l *leaderboardService) TopN(ctx context.Context, n int) ([]models.LeaderboardRow, error) {
	users, err := l.leaderboardRepository.TopUsers(ctx, clampLeaderboardSize(n))
	if err != nil {
		return nil, err
	}

	rows := make([]models.LeaderboardRow, 0, len(users))
	for i, u := range users {
		rows = append(rows, models.LeaderboardRow{
			Rank:     i + 1,
			Username: u.Name,
			XP:       u.XP,
			Points:   u.Points,
			Level:    progression.Level(u.XP),
		})
	}

	return rows, nil
}

func clampLeaderboardSize(n int) int {
	switch {
	case n == 0:
		return DefaultLeaderboardSize
	case n < 1:
		return 1
	case n > MaxLeaderboardSize:
		return MaxLeaderboardSize
	default:
		return n
	}
}
