package models

// LeaderboardRow is one ranked user.
type LeaderboardRow struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	XP       int    `json:"xp"`
	Points   int    `json:"points"`
	Level    int    `json:"level"`
}
