package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public read surface, the authenticated write surface,
// and the SEO/ops endpoints.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public reads
		r.Get("/posts", handlers.blogPostHandler.listPosts())
		r.Get("/posts/{slug}", handlers.blogPostHandler.getPost())
		r.Get("/categories", handlers.categoryHandler.listCategories())
		r.Get("/sitemap.xml", handlers.sitemapHandler.serveSitemap())
		r.Get("/healthz", handlers.healthHandler.check())

		// Authenticated writes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.requireAPIKey)

			r.Post("/posts", handlers.blogPostHandler.createPost())
			r.Patch("/posts/{slug}", handlers.blogPostHandler.updatePost())
			r.Delete("/posts/{slug}", handlers.blogPostHandler.deletePost())
		})
	})
}
