package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public site, the auth endpoints and the admin
// surface. Every admin route sits behind the session check.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/api/projects", handlers.publicHandler.listPublished())
		r.Get("/api/projects/featured", handlers.publicHandler.listFeatured())
		r.Get("/api/project/{slug}", handlers.publicHandler.getBySlug())

		r.Post("/api/auth/register", handlers.authHandler.register())
		r.Post("/api/auth/login", handlers.authHandler.login())
		r.Get("/api/auth/oauth/{provider}", handlers.authHandler.oauthRedirect())
		r.Get("/api/auth/oauth/{provider}/callback", handlers.authHandler.oauthCallback())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/api/admin/projects", handlers.projectHandler.getAllProjects())
		r.Get("/api/admin/project/{projectID}", handlers.projectHandler.getProject())
		r.Post("/api/admin/project", handlers.projectHandler.createProject())
		r.Put("/api/admin/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/api/admin/project/{projectID}", handlers.projectHandler.deleteProject())

		r.Post("/api/admin/project/{projectID}/image", handlers.projectHandler.addProjectImage())
		r.Delete("/api/admin/image/{imageID}", handlers.projectHandler.deleteProjectImage())
		r.Put("/api/admin/image/{imageID}/sort-order", handlers.projectHandler.reorderProjectImage())

		r.Get("/api/admin/skills", handlers.skillHandler.getAllSkills())
		r.Post("/api/admin/skill", handlers.skillHandler.createSkill())
	})
}
