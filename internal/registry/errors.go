package registry

import "errors"

// Sentinel errors returned by registration calls. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrDuplicateType is returned when a node or block type is registered
	// under a name that is already taken. Registration is startup-only, so a
	// duplicate always indicates a bootstrap mistake.
	ErrDuplicateType = errors.New("type is already registered")

	// ErrInvalidType is returned when a type declaration is malformed: an
	// empty type name, an empty or duplicate field name, or a field carrying
	// an unrecognized type tag.
	ErrInvalidType = errors.New("invalid type declaration")
)
