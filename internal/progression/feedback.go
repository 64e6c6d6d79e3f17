// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package progression

import (
	"strings"

	"github.com/MKhiriev/go-pocket-money/models"
)

// SnackCategory is the category whose share of spending is watched.
const SnackCategory = "snack"

// SnackRatioThreshold is the snack share, in percent, above which spending
// is snack-heavy.
const SnackRatioThreshold = 40.0

// Verdict codes.
const (
	CodeSnackHeavy       = "snack-heavy"
	CodeSnackBalanced    = "snack-balanced"
	CodeWantsExceedNeeds = "wants-exceed-needs"
	CodeNeedsPrioritized = "needs-prioritized"
)

// Evaluate classifies the expenses among entries. Income entries are
// ignored. The function has no side effects, so repeated calls over the
// same entries return equal reports.
func Evaluate(entries []models.Entry) models.FeedbackReport {
	var report models.FeedbackReport

	for _, e := range entries {
		if e.Kind != models.EntryKindExpense {
			continue
		}

		report.TotalSpent += e.Amount
		if IsSnack(e.Category) {
			report.SnackSpent += e.Amount
		}

		switch e.Necessity {
		case models.NecessityNeed:
			report.NeedsAmount += e.Amount
		case models.NecessityWant:
			report.WantsAmount += e.Amount
		}
	}

	if report.TotalSpent > 0 {
		report.SnackRatio = 100 * float64(report.SnackSpent) / float64(report.TotalSpent)
	}

	if report.SnackRatio > SnackRatioThreshold {
		report.Snack = models.Verdict{
			Level:   models.VerdictWarning,
			Code:    CodeSnackHeavy,
			Message: "More than 40% of your spending goes on snacks. Try to cut back a little.",
		}
	} else {
		report.Snack = models.Verdict{
			Level:   models.VerdictGood,
			Code:    CodeSnackBalanced,
			Message: "Your snack spending is well balanced.",
		}
	}

	if report.WantsAmount > report.NeedsAmount {
		report.Necessity = models.Verdict{
			Level:   models.VerdictAlert,
			Code:    CodeWantsExceedNeeds,
			Message: "You spend more on wants than on needs. Think twice before buying.",
		}
	} else {
		report.Necessity = models.Verdict{
			Level:   models.VerdictGood,
			Code:    CodeNeedsPrioritized,
			Message: "Great job putting needs first!",
		}
	}

	return report
}

// IsSnack reports whether category is the snack category, ignoring case and
// surrounding blanks.
func IsSnack(category string) bool {
	return strings.EqualFold(strings.TrimSpace(category), SnackCategory)
}
