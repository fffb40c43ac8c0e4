package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)

		r.Get("/nodes/resolve/*", h.resolveNode)
		r.Get("/nodes/{nodeType}/{id}/url", h.nodeURL)
	})

	// routes for any authenticated user
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/block-types", h.listBlockTypes)
		r.Get("/block-types/{blockType}", h.getBlockType)
		r.Get("/block-types/{blockType}/fields", h.getBlockTypeFields)
	})

	// admin-only routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.requireAdmin)

		r.Get("/node-types/{nodeType}/fields", h.getNodeTypeFields)
		r.Get("/node-types/{nodeType}/form", h.getNodeTypeForm)
		r.Get("/node-types/{nodeType}/nodes", h.listNodes)
		r.Post("/node-types/{nodeType}/nodes", h.createNode)
		r.Get("/node-types/{nodeType}/nodes/{id}", h.getNode)
		r.Get("/node-types/{nodeType}/nodes/{id}/form", h.getNodeForm)
		r.Put("/node-types/{nodeType}/nodes/{id}", h.updateNode)
		r.Delete("/node-types/{nodeType}/nodes/{id}", h.deleteNode)

		r.Post("/media", h.uploadMedia)
		r.Delete("/media/{fileName}", h.deleteMedia)
	})

	return router
}
