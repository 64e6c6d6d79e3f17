package service

import (
	"fmt"

	"github.com/MKhiriev/go-pocket-money/internal/adapter"
	"github.com/MKhiriev/go-pocket-money/internal/config"
	"github.com/MKhiriev/go-pocket-money/internal/logger"
	"github.com/MKhiriev/go-pocket-money/internal/store"
	"github.com/MKhiriev/go-pocket-money/internal/validators"
)

type Services struct {
	AuthService        AuthService
	LedgerService      LedgerService
	ProgressionService ProgressionService
	FeedbackService    FeedbackService
	LeaderboardService LeaderboardService
	WishlistService    WishlistService
	ChatService        ChatService
	AppInfoService     AppInfoService
}

func NewServices(repositories *store.Repositories, chatAdapter adapter.ChatAdapter, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewPocketMoneyValidator(cfg.App.SecretLength, cfg.App.MaxImageBytes)
	progressionService := NewProgressionService(repositories.UserRepository, cfg.App, logger)

	return &Services{
		AuthService:        NewAuthService(repositories.UserRepository, validator, cfg.App, logger),
		LedgerService:      NewLedgerService(repositories.EntryRepository, repositories.WishlistRepository, progressionService, validator, logger),
		ProgressionService: progressionService,
		FeedbackService:    NewFeedbackService(repositories.EntryRepository, logger),
		LeaderboardService: NewLeaderboardService(repositories.LeaderboardRepository, logger),
		WishlistService:    NewWishlistService(repositories.WishlistRepository, validator, logger),
		ChatService:        NewChatService(chatAdapter, validator, cfg.Chat, logger),
		AppInfoService:     appInfoService,
	}, nil
}
