package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pocket-money/internal/logger"
	"github.com/MKhiriev/go-pocket-money/internal/mock"
	"github.com/MKhiriev/go-pocket-money/internal/store"
	"github.com/MKhiriev/go-pocket-money/models"
)

func TestFeedbackService_Evaluate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockEntryRepository(ctrl)
	svc := NewFeedbackService(repo, logger.Nop())
	ctx := context.Background()

	expenses := []models.Entry{
		{Kind: models.EntryKindExpense, Amount: 500, Category: "snack", Necessity: models.NecessityWant},
		{Kind: models.EntryKindExpense, Amount: 500, Category: "food", Necessity: models.NecessityNeed},
	}
	repo.EXPECT().ListEntries(ctx, "mia", models.EntryKindExpense).Return(expenses, nil).Times(2)

	first, err := svc.Evaluate(ctx, "mia")
	require.NoError(t, err)
	assert.Equal(t, models.VerdictWarning, first.Snack.Level)
	assert.Equal(t, models.VerdictGood, first.Necessity.Level)

	second, err := svc.Evaluate(ctx, "mia")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFeedbackService_Evaluate_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockEntryRepository(ctrl)
	repo.EXPECT().ListEntries(gomock.Any(), "mia", models.EntryKindExpense).Return(nil, store.ErrScanningRows)

	_, err := NewFeedbackService(repo, logger.Nop()).Evaluate(context.Background(), "mia")
	assert.ErrorIs(t, err, store.ErrScanningRows)
}
