package models

// User is a child account. Users are identified by a unique name chosen at
// first login and are never deleted.
type User struct {
	// Name is the unique user name and primary key.
	Name string `json:"name"`

	// SecretHash is the bcrypt hash of the numeric secret (PIN).
	// It never leaves the server.
	SecretHash string `json:"-"`

	// Progress holds the gamification counters of the user.
	Progress
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Progress is the per-user progression record. XP and Points never decrease.
type Progress struct {
	// LastActiveDate is the calendar day of the latest recorded activity.
	// Nil until the first entry is recorded.
	LastActiveDate *Date `json:"last_active_date,omitempty"`

	// StreakDays is the count of consecutive days with activity.
	StreakDays int `json:"streak_days"`

	// XP drives level derivation.
	XP int `json:"xp"`

	// Points drive leaderboard rank.
	Points int `json:"points"`
}

// Credentials is the login payload: a user name and a fixed-length numeric
// secret.
type Credentials struct {
	Name   string `json:"name"`
	Secret string `json:"secret"`
}
