package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pocket-money/models"
)

func TestWishlistPercent(t *testing.T) {
	assert.InDelta(t, 40.0, WishlistPercent(4000, 10000), 1e-9)
	assert.InDelta(t, 100.0, WishlistPercent(12000, 10000), 1e-9)
	assert.InDelta(t, 0.0, WishlistPercent(-500, 10000), 1e-9)
	assert.InDelta(t, 0.0, WishlistPercent(500, 0), 1e-9)
}

func TestNoSpendStreak(t *testing.T) {
	today := day(t, "2026-04-10")

	t.Run("no expenses hits the cap", func(t *testing.T) {
		assert.Equal(t, NoSpendStreakCap, NoSpendStreak(nil, today))
	})

	t.Run("spent today", func(t *testing.T) {
		expenses := []models.Entry{{Kind: models.EntryKindExpense, Date: today, Amount: 5}}
		assert.Equal(t, 0, NoSpendStreak(expenses, today))
	})

	t.Run("spent three days ago", func(t *testing.T) {
		expenses := []models.Entry{
			{Kind: models.EntryKindExpense, Date: today.AddDays(-3), Amount: 5},
			{Kind: models.EntryKindExpense, Date: today.AddDays(-10), Amount: 5},
		}
		assert.Equal(t, 3, NoSpendStreak(expenses, today))
	})

	t.Run("spending older than the cap is not seen", func(t *testing.T) {
		expenses := []models.Entry{{Kind: models.EntryKindExpense, Date: today.AddDays(-45), Amount: 5}}
		assert.Equal(t, NoSpendStreakCap, NoSpendStreak(expenses, today))
	})
}

func TestSummarize(t *testing.T) {
	today := day(t, "2026-04-10")
	expenses := []models.Entry{
		{Kind: models.EntryKindExpense, Date: today.AddDays(-1), Amount: 300, Category: "snack", Necessity: models.NecessityWant},
		{Kind: models.EntryKindExpense, Date: today.AddDays(-2), Amount: 700, Category: "food", Necessity: models.NecessityNeed},
	}
	income := []models.Entry{
		{Kind: models.EntryKindIncome, Date: today.AddDays(-5), Amount: 5000, Category: "allowance"},
	}
	goal := &models.WishlistGoal{ItemLabel: "bike", TargetAmount: 10000}

	s := Summarize(expenses, income, goal, today)

	assert.Equal(t, int64(1000), s.TotalSpent)
	assert.Equal(t, int64(5000), s.TotalEarned)
	assert.Equal(t, int64(4000), s.Savings)
	assert.Equal(t, int64(300), s.ExpenseByCategory["snack"])
	assert.Equal(t, int64(5000), s.IncomeByCategory["allowance"])
	assert.Equal(t, int64(700), s.NeedsTotal)
	assert.Equal(t, int64(300), s.WantsTotal)
	assert.Equal(t, 1, s.NoSpendStreak)
	require.NotNil(t, s.Wishlist)
	assert.InDelta(t, 40.0, s.Wishlist.Percent, 1e-9)
}

func TestSummarize_NoGoal(t *testing.T) {
	today := day(t, "2026-04-10")

	assert.Nil(t, Summarize(nil, nil, nil, today).Wishlist)
	assert.Nil(t, Summarize(nil, nil, &models.WishlistGoal{}, today).Wishlist)
}
