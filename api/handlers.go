package api

import (
	"time"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(store PostStore, revalidator Revalidator, ping func() error, baseURL string, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		blogPostHandler: newBlogPostHandler(store, revalidator, baseURL),
		categoryHandler: newCategoryHandler(store),
		sitemapHandler:  newSitemapHandler(store, baseURL),
		healthHandler:   newHealthHandler(ping, startupTime),
	}
}
