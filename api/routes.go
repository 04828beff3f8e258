package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes registers the public site surface and the auth-gated admin
// subtree.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/healthz", handlers.siteHandler.health())
		r.Get("/view", handlers.siteHandler.resolveView())

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		r.Get("/assets", handlers.assetHandler.getAssets())

		r.Post("/contact", handlers.contactHandler.submit())
		r.Post("/login", handlers.authHandler.login())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())

		r.Put("/admin/assets", handlers.assetHandler.updateAssets())
		r.Get("/admin/events", handlers.siteHandler.adminEvents())
		r.Post("/logout", handlers.authHandler.logout())
	})
}
