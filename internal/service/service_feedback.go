package service

import (
	"context"

	"github.com/MKhiriev/go-pocket-money/internal/logger"
	"github.com/MKhiriev/go-pocket-money/internal/progression"
	"github.com/MKhiriev/go-pocket-money/internal/store"
	"github.com/MKhiriev/go-pocket-money/models"
)

type feedbackService struct {
	entryRepository store.EntryRepository

	logger *logger.Logger
}

func NewFeedbackService(entryRepository store.EntryRepository, logger *logger.Logger) FeedbackService {
	return &feedbackService{
		entryRepository: entryRepository,
		logger:          logger,
	}
}

func (f *feedbackService) Evaluate(ctx context.Context, username string) (models.FeedbackReport, error) {
	expenses, err := f.entryRepository.ListEntries(ctx, username, models.EntryKindExpense)
	if err != nil {
		return models.FeedbackReport{}, err
	}

	return progression.Evaluate(expenses), nil
}
