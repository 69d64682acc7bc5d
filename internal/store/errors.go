package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when a record addressed by library, type
	// and key does not exist in the replica.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrInvalidRecord is returned when a record cannot be stored as given
	// (empty key, invalid library or unknown object type).
	ErrInvalidRecord = errors.New("invalid record")
)

// Errors of the API server repositories.
var (
	// ErrLoginAlreadyExists is returned when an account name is taken.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when no account matches a lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrGroupNotFound is returned for an unknown group id.
	ErrGroupNotFound = errors.New("group was not found")

	// ErrVersionConflict is returned when a write carries an
	// If-Unmodified-Since-Version older than the library version.
	ErrVersionConflict = errors.New("library has been modified since specified version")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination value fails.
	ErrScanningRow = errors.New("failed to scan row")
)
