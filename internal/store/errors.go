package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNodeNotFound is returned when a query targets a node (by id or
	// slug) that does not exist for the given node type.
	ErrNodeNotFound = errors.New("node was not found")

	// ErrSlugAlreadyExists is returned when an insert or update violates the
	// per-type slug uniqueness constraint.
	ErrSlugAlreadyExists = errors.New("slug already exists for this node type")

	// ErrUserAlreadyExists is returned when registering a user whose
	// username or email is already taken.
	ErrUserAlreadyExists = errors.New("username or email already exists")

	// ErrUserNotFound is returned when a user lookup produces an empty
	// result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrInvalidMediaName is returned when a media operation targets a name
	// that is not a plain file name.
	ErrInvalidMediaName = errors.New("invalid media file name")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingData is returned when a node's value map cannot be
	// serialized for the JSONB data column.
	ErrEncodingData = errors.New("failed to encode node data")
)
