package models

// Badge is an achievement derived from the current progression counters.
// There is no partial credit: a badge is either locked or unlocked.
type Badge struct {
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

// ProgressReport is the derived view of a user's progression.
type ProgressReport struct {
	Username string `json:"username"`
	Progress
	Level         int     `json:"level"`
	XPToNextLevel int     `json:"xp_to_next_level"`
	Badges        []Badge `json:"badges"`
}
