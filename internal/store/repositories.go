package store

import (
	"context"
	"fmt"

	"github.com/fieldpress/fieldpress/internal/config"
	"github.com/fieldpress/fieldpress/internal/logger"
)

// Storages bundles every persistence backend behind one constructor so the
// composition root wires a single value.
type Storages struct {
	Nodes NodeRepository
	Users UserRepository
	Media MediaStore
}

// NewStorages connects to PostgreSQL, applies pending migrations, and
// constructs all repositories plus the filesystem media store.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("applying migrations: %w", err)
	}

	media, err := NewMediaFileStore(cfg.Media.Dir, log)
	if err != nil {
		return nil, fmt.Errorf("preparing media store: %w", err)
	}

	return &Storages{
		Nodes: NewNodeRepository(db, log),
		Users: NewUserRepository(db, log),
		Media: media,
	}, nil
}
