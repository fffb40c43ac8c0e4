// Package service implements the application logic between the HTTP transport
// and the persistence layer: account lifecycle and token handling, the
// schema-driven generic CRUD engine, and public path resolution.
package service

import (
	"context"

	"github.com/fieldpress/fieldpress/internal/schema"
	"github.com/fieldpress/fieldpress/internal/store"
	"github.com/fieldpress/fieldpress/models"
)

// AuthService handles account registration, credential verification, and JWT
// lifecycle.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	EnsureAdmin(ctx context.Context) error
}

// NodeService is the generic CRUD engine: one implementation serves every
// registered node type, driven entirely by the type's declared schema.
type NodeService interface {
	List(ctx context.Context, typeName string, params store.ListParams) (models.NodeList, error)
	Get(ctx context.Context, typeName, idOrSlug string) (models.Node, error)
	Create(ctx context.Context, typeName string, input schema.Values, authorID int64) (models.Node, error)
	Update(ctx context.Context, typeName string, id int64, input schema.Values) (models.Node, error)
	Delete(ctx context.Context, typeName string, id int64) error
}

// ResolveService maps public URL paths to node instances and node instances
// back to their public URLs.
type ResolveService interface {
	Resolve(ctx context.Context, segments []string) (models.ResolvedNode, error)
	NodeURL(ctx context.Context, typeName string, id int64) (string, error)
}
