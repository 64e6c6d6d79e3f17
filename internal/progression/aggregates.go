// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package progression

import "github.com/MKhiriev/go-pocket-money/models"

// NoSpendStreakCap bounds the backward scan of NoSpendStreak. A streak never
// reports more than this many days.
const NoSpendStreakCap = 30

// NoSpendStreak counts consecutive days, ending with today, on which the
// summed expense amount is zero. The scan looks back at most
// NoSpendStreakCap days.
func NoSpendStreak(expenses []models.Entry, today models.Date) int {
	spent := make(map[string]int64, len(expenses))
	for _, e := range expenses {
		if e.Kind == models.EntryKindExpense {
			spent[e.Date.String()] += e.Amount
		}
	}

	streak := 0
	for day := today; streak < NoSpendStreakCap; day = day.AddDays(-1) {
		if spent[day.String()] != 0 {
			break
		}
		streak++
	}

	return streak
}

// WishlistPercent returns 100 × savings / target clamped to [0, 100].
// A non-positive target yields 0.
func WishlistPercent(savings, target int64) float64 {
	if target <= 0 {
		return 0
	}

	pct := 100 * float64(savings) / float64(target)
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return pct
	}
}

// Summarize derives the ledger aggregates of one user. goal may be nil.
func Summarize(expenses, income []models.Entry, goal *models.WishlistGoal, today models.Date) models.Summary {
	summary := models.Summary{
		ExpenseByCategory: make(map[string]int64),
		IncomeByCategory:  make(map[string]int64),
	}

	for _, e := range expenses {
		summary.TotalSpent += e.Amount
		summary.ExpenseByCategory[e.Category] += e.Amount

		switch e.Necessity {
		case models.NecessityNeed:
			summary.NeedsTotal += e.Amount
		case models.NecessityWant:
			summary.WantsTotal += e.Amount
		}
	}

	for _, e := range income {
		summary.TotalEarned += e.Amount
		summary.IncomeByCategory[e.Category] += e.Amount
	}

	summary.Savings = summary.TotalEarned - summary.TotalSpent
	summary.NoSpendStreak = NoSpendStreak(expenses, today)

	if goal != nil && !goal.IsEmpty() {
		summary.Wishlist = &models.WishlistProgress{
			ItemLabel:    goal.ItemLabel,
			TargetAmount: goal.TargetAmount,
			Percent:      WishlistPercent(summary.Savings, goal.TargetAmount),
		}
	}

	return summary
}
