// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, tracing, and logging concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"github.com/fieldpress/fieldpress/internal/forms"
	"github.com/fieldpress/fieldpress/internal/logger"
	"github.com/fieldpress/fieldpress/internal/registry"
	"github.com/fieldpress/fieldpress/internal/service"
)

type Handler struct {
	services *service.Services
	registry *registry.Registry
	forms    *forms.Renderer

	logger *logger.Logger
}

func NewHandler(services *service.Services, reg *registry.Registry, renderer *forms.Renderer, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		registry: reg,
		forms:    renderer,
		logger:   logger,
	}
}
