package store

import "github.com/MKhiriev/go-pocket-money/internal/logger"

// Repositories groups every repository backed by one database connection.
type Repositories struct {
	UserRepository        UserRepository
	EntryRepository       EntryRepository
	WishlistRepository    WishlistRepository
	LeaderboardRepository LeaderboardRepository
}

// NewRepositories wires all repositories to db.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db, logger),
		EntryRepository:       NewEntryRepository(db, logger),
		WishlistRepository:    NewWishlistRepository(db, logger),
		LeaderboardRepository: NewLeaderboardRepository(db, logger),
	}
}
