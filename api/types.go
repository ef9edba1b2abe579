package api

import (
	"context"

	"github.com/cakely/landing-backend/database"
	"github.com/cakely/landing-backend/models"
)

// PostStore is the data-access surface the handlers depend on. It is satisfied
// by *database.BlogPostRepo; tests substitute an in-memory implementation.
type PostStore interface {
	List(f database.PostFilter) ([]models.BlogPost, int64, error)
	FindBySlug(slug string) (*models.BlogPost, error)
	Add(post *models.BlogPost) error
	Update(post *models.BlogPost) error
	DeleteBySlug(slug string) error
	AllPublished() ([]models.BlogPost, error)
	CountByCategory() (map[string]int64, error)
}

// Revalidator marks cached frontend renders of the given paths stale after a
// successful mutation. Implementations are best-effort and must not fail the
// request.
type Revalidator interface {
	RevalidatePaths(ctx context.Context, paths ...string)
}

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	blogPostHandler blogPostHandler
	categoryHandler categoryHandler
	sitemapHandler  sitemapHandler
	healthHandler   healthHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error string `json:"error" example:"post not found"`
}
