// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package progression

import "github.com/MKhiriev/go-pocket-money/models"

const (
	// DefaultXPGain is added to XP on every recorded entry.
	DefaultXPGain = 10
	// DefaultPointsGain is added to points on every recorded entry.
	DefaultPointsGain = 10
	// XPPerLevel is the amount of XP between two levels.
	XPPerLevel = 100
)

// Badge thresholds.
const (
	StreakBadgeDays      = 7
	PointsBadgeThreshold = 100
	LevelBadgeThreshold  = 5
)

// Badge codes.
const (
	BadgeStreak = "streak-7"
	BadgePoints = "points-100"
	BadgeLevel  = "level-5"
)

// Accrue applies one activity event on today to p and returns the new
// progress. XP and points grow on every call; the streak grows at most once
// per calendar day.
//
// A last active date in the future is treated as garbage and resets the
// streak like a gap would.
func Accrue(p models.Progress, today models.Date, xpGain, pointsGain int) models.Progress {
	next := models.Progress{
		LastActiveDate: p.LastActiveDate,
		StreakDays:     p.StreakDays,
		XP:             p.XP + max(xpGain, 0),
		Points:         p.Points + max(pointsGain, 0),
	}

	last := p.LastActiveDate
	switch {
	case last != nil && last.Equal(today):
		return next
	case last != nil && last.AddDays(1).Equal(today):
		next.StreakDays = p.StreakDays + 1
	default:
		next.StreakDays = 1
	}

	day := today
	next.LastActiveDate = &day
	return next
}

// Level returns the level reached with xp: 1 for 0..99, 2 for 100..199 and so on.
func Level(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// XPToNextLevel returns how much XP is missing to reach the next level.
func XPToNextLevel(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return XPPerLevel - xp%XPPerLevel
}

// Badges evaluates every badge against p, in a fixed order.
func Badges(p models.Progress) []models.Badge {
	return []models.Badge{
		{
			Code:        BadgeStreak,
			Title:       "Streak Master",
			Description: "Keep a 7-day activity streak",
			Unlocked:    p.StreakDays >= StreakBadgeDays,
		},
		{
			Code:        BadgePoints,
			Title:       "Point Collector",
			Description: "Collect 100 points",
			Unlocked:    p.Points >= PointsBadgeThreshold,
		},
		{
			Code:        BadgeLevel,
			Title:       "Money Pro",
			Description: "Reach level 5",
			Unlocked:    Level(p.XP) >= LevelBadgeThreshold,
		},
	}
}

// Report builds the derived progression view for username.
func Report(username string, p models.Progress) models.ProgressReport {
	return models.ProgressReport{
		Username:      username,
		Progress:      p,
		Level:         Level(p.XP),
		XPToNextLevel: XPToNextLevel(p.XP),
		Badges:        Badges(p),
	}
}
