package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when a user with the same name is
	// already stored.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrProgressConflict is returned by a compare-and-swap progress update
	// when the stored counters no longer match the expected ones, meaning a
	// concurrent accrual won the race.
	ErrProgressConflict = errors.New("user progress was modified concurrently")

	// ErrTransient marks a driver error the database reports as temporary
	// (lost connection, serialization failure, busy database). The same
	// operation may succeed when attempted again.
	ErrTransient = errors.New("transient database error")

	// ErrWishlistNotFound is returned when the user has no wishlist goal.
	ErrWishlistNotFound = errors.New("wishlist goal was not found")

	// ErrUnknownEntryKind is returned when an entry kind maps to no table.
	ErrUnknownEntryKind = errors.New("unknown entry kind")

	// ErrUnsupportedDriver is returned when the configured database driver
	// is neither PostgreSQL nor SQLite.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
