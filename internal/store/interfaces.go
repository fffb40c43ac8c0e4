// Package store implements the persistence layer: PostgreSQL-backed
// repositories for nodes and users, and a filesystem store for uploaded
// media. Node instances are stored generically, one row per node with the
// declared field values serialized into a JSONB column, so no per-type
// tables or queries exist.
package store

import (
	"context"
	"io"

	"github.com/fieldpress/fieldpress/models"
)

// ListParams describes one page of a node list query.
type ListParams struct {
	// Page is 1-based; values below 1 are treated as 1.
	Page int

	// Limit is the page size; values below 1 fall back to the repository
	// default.
	Limit int

	// Search is an optional substring filter applied to TitleField.
	Search string

	// TitleField names the data key the search runs against. It comes from
	// the type registry, never from user input.
	TitleField string
}

// NodeRepository persists node instances of all registered types.
type NodeRepository interface {
	CreateNode(ctx context.Context, node models.Node) (models.Node, error)
	GetNodeByID(ctx context.Context, nodeType string, id int64) (models.Node, error)
	GetNodeBySlug(ctx context.Context, nodeType, slug string) (models.Node, error)
	ListNodes(ctx context.Context, nodeType string, params ListParams) ([]models.Node, int64, error)
	UpdateNode(ctx context.Context, node models.Node) (models.Node, error)
	DeleteNode(ctx context.Context, nodeType string, id int64) error
}

// UserRepository persists authentication principals.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	TouchLastLogin(ctx context.Context, id int64) error
}

// MediaStore persists uploaded files backing file fields.
type MediaStore interface {
	// Save streams r to durable storage under a name derived from fileName
	// and returns the stored name. On any failure no partial file remains.
	Save(ctx context.Context, fileName string, r io.Reader) (string, error)

	// Remove deletes a previously stored file. A name with path components
	// is rejected with ErrInvalidMediaName; a name that is already gone is
	// not an error.
	Remove(ctx context.Context, storedName string) error
}
