package store

import "errors"

// Low-level database operation errors. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when reading a stored value fails.
	ErrScanningRow = errors.New("failed to scan local storage row")
)

// ErrEmptyKey is returned when a local storage key is empty.
var ErrEmptyKey = errors.New("local storage key is empty")
