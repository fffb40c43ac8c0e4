package service

import (
	"github.com/fieldpress/fieldpress/internal/config"
	"github.com/fieldpress/fieldpress/internal/logger"
	"github.com/fieldpress/fieldpress/internal/registry"
	"github.com/fieldpress/fieldpress/internal/store"
)

// Services bundles every application service behind one constructor so the
// composition root wires a single value.
type Services struct {
	AuthService    AuthService
	NodeService    NodeService
	ResolveService ResolveService

	// MediaStore is passed through untouched: uploads need no application
	// logic beyond what the store already does.
	MediaStore store.MediaStore
}

func NewServices(storages *store.Storages, reg *registry.Registry, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.Users, cfg.App, logger),
		NodeService:    NewNodeService(storages.Nodes, reg, logger),
		ResolveService: NewResolveService(storages.Nodes, reg, logger),
		MediaStore:     storages.Media,
	}
}
