package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cakely/landing-backend/database"
	"github.com/cakely/landing-backend/errs"
	"github.com/cakely/landing-backend/models"
	"github.com/cakely/landing-backend/slug"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

type blogPostHandler struct {
	responder   Responder
	logger      zerolog.Logger
	store       PostStore
	revalidator Revalidator
	baseURL     string
	validate    *validator.Validate
}

func newBlogPostHandler(store PostStore, revalidator Revalidator, baseURL string) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		store:       store,
		revalidator: revalidator,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		validate:    validator.New(),
	}
}

type createPostRequest struct {
	Title      string  `json:"title" validate:"required"`
	Content    string  `json:"content" validate:"required"`
	Excerpt    *string `json:"excerpt"`
	CoverImage *string `json:"coverImage" validate:"omitempty,url"`
	Category   *string `json:"category"`
	Published  *bool   `json:"published"`
}

// updatePostRequest distinguishes omitted fields (nil pointers) from supplied
// ones; only supplied fields touch the stored post.
type updatePostRequest struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	Excerpt    *string `json:"excerpt"`
	CoverImage *string `json:"coverImage"`
	Category   *string `json:"category"`
	Published  *bool   `json:"published"`
}

// createdPost is the summary returned from a successful create, including the
// public URL of the new post.
type createdPost struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	URL         string     `json:"url"`
}

type paginationBlock struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"hasMore"`
}

type listPostsResponse struct {
	Posts      []models.BlogPostSummary `json:"posts"`
	Pagination paginationBlock          `json:"pagination"`
}

// listPosts returns a page of post summaries ordered by publish date
// descending. Unpublished posts are excluded unless the caller passes
// published=false, which includes both published and unpublished posts.
func (h blogPostHandler) listPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filter := database.PostFilter{
			PublishedOnly: query.Get("published") != "false",
			Limit:         defaultListLimit,
		}

		if category := query.Get("category"); category != "" {
			filter.Category = strings.ToUpper(category)
		}

		if raw := query.Get("limit"); raw != "" {
			if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
				filter.Limit = min(limit, maxListLimit)
			}
		}
		if raw := query.Get("offset"); raw != "" {
			if offset, err := strconv.Atoi(raw); err == nil && offset > 0 {
				filter.Offset = offset
			}
		}

		posts, total, err := h.store.List(filter)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("list", "blog posts", err))
			return
		}

		summaries := make([]models.BlogPostSummary, 0, len(posts))
		for _, post := range posts {
			summaries = append(summaries, post.Summary())
		}

		h.responder.WriteJSON(w, listPostsResponse{
			Posts: summaries,
			Pagination: paginationBlock{
				Total:   total,
				Limit:   filter.Limit,
				Offset:  filter.Offset,
				HasMore: int64(filter.Offset+filter.Limit) < total,
			},
		})
	}
}

// getPost returns the full post for a slug. Missing and unpublished posts are
// indistinguishable to the caller: both are a plain 404, so the existence of
// drafts does not leak.
func (h blogPostHandler) getPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postSlug := chi.URLParam(r, "slug")

		post, err := h.store.FindBySlug(postSlug)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "blog post", err))
			return
		}

		if post == nil || !post.Published {
			h.responder.WriteError(w, errs.NewNotFoundError("post not found"))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"post": post})
	}
}

func (h blogPostHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.BadRequest("failed to read request body"))
			return
		}

		var req createPostRequest
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&req); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode create post request body")
			h.responder.WriteError(w, errs.Malformed("create post payload"))
			return
		}

		if err := h.validate.Struct(req); err != nil {
			h.responder.WriteError(w, validationError(err))
			return
		}

		postSlug := slug.Make(req.Title)
		if postSlug == "" {
			h.responder.WriteError(w, errs.NewInvalidFieldError("title", "must contain at least one letter or digit"))
			return
		}

		category, apiErr := normalizeCategory(req.Category)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existing, err := h.store.FindBySlug(postSlug)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "blog post", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewConflictError("a post with this title already exists"))
			return
		}

		published := true
		if req.Published != nil {
			published = *req.Published
		}

		var publishedAt *time.Time
		if published {
			now := time.Now()
			publishedAt = &now
		}

		post := models.BlogPost{
			Title:       req.Title,
			Slug:        postSlug,
			Content:     req.Content,
			Excerpt:     req.Excerpt,
			CoverImage:  req.CoverImage,
			Category:    category,
			Published:   published,
			PublishedAt: publishedAt,
		}

		// The unique index on slug decides a concurrent race on the same
		// title; the loser's duplicate-key error maps to 409 here.
		if err := h.store.Add(&post); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "blog post", err))
			return
		}

		h.revalidator.RevalidatePaths(r.Context(), "/blog", "/blog/"+post.Slug)

		h.responder.WriteJSONStatus(w, http.StatusCreated, map[string]any{
			"success": true,
			"post": createdPost{
				ID:          post.ID,
				Title:       post.Title,
				Slug:        post.Slug,
				Published:   post.Published,
				PublishedAt: post.PublishedAt,
				URL:         h.baseURL + "/blog/" + post.Slug,
			},
		})
	}
}

func (h blogPostHandler) updatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postSlug := chi.URLParam(r, "slug")

		post, err := h.store.FindBySlug(postSlug)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "blog post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("post not found"))
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.BadRequest("failed to read request body"))
			return
		}

		var req updatePostRequest
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&req); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode update post request body")
			h.responder.WriteError(w, errs.Malformed("update post payload"))
			return
		}

		if req.Title != nil && *req.Title != "" {
			// The slug stays as derived at creation time; post URLs are
			// stable across title edits.
			post.Title = *req.Title
		}
		if req.Content != nil && *req.Content != "" {
			post.Content = *req.Content
		}
		if req.Excerpt != nil {
			post.Excerpt = req.Excerpt
		}
		if req.CoverImage != nil {
			post.CoverImage = req.CoverImage
		}
		if req.Category != nil {
			category, apiErr := normalizeCategory(req.Category)
			if apiErr != nil {
				h.responder.WriteError(w, apiErr)
				return
			}
			post.Category = category
		}
		if req.Published != nil {
			post.Published = *req.Published
			// First publish stamps the timestamp; it is never rewritten
			// afterwards, even when the post is unpublished and republished.
			if *req.Published && post.PublishedAt == nil {
				now := time.Now()
				post.PublishedAt = &now
			}
		}

		if err := h.store.Update(post); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "blog post", err))
			return
		}

		h.revalidator.RevalidatePaths(r.Context(), "/blog", "/blog/"+post.Slug)

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"post":    post,
		})
	}
}

func (h blogPostHandler) deletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postSlug := chi.URLParam(r, "slug")

		post, err := h.store.FindBySlug(postSlug)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "blog post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("post not found"))
			return
		}

		if err := h.store.DeleteBySlug(postSlug); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "blog post", err))
			return
		}

		h.revalidator.RevalidatePaths(r.Context(), "/blog", "/blog/"+postSlug)

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"message": "post deleted successfully",
		})
	}
}

// normalizeCategory uppercases a supplied category and checks it against the
// registry. An empty string clears the category.
func normalizeCategory(raw *string) (*string, *errs.ApiErr) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	code := strings.ToUpper(*raw)
	if !models.ValidCategory(code) {
		return nil, errs.NewInvalidFieldError("category", "unknown category code")
	}
	return &code, nil
}

// validationError flattens a validator error into a 400 naming the first
// offending field.
func validationError(err error) *errs.ApiErr {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		field := strings.ToLower(fe.Field())
		if fe.Tag() == "required" {
			return errs.MissingRequiredField(field)
		}
		return errs.NewInvalidFieldError(field, "failed "+fe.Tag()+" validation")
	}
	return errs.BadRequest("invalid payload")
}
