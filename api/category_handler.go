package api

import (
	"net/http"

	"github.com/cakely/landing-backend/errs"
	"github.com/cakely/landing-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type categoryHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     PostStore
}

func newCategoryHandler(store PostStore) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

type categoryWithCount struct {
	models.Category
	PostCount int64 `json:"postCount"`
}

// listCategories returns the registry in declaration order, each entry carrying
// the number of published posts filed under it.
func (h categoryHandler) listCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := h.store.CountByCategory()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("count", "blog posts by category", err))
			return
		}

		all := models.AllCategories()
		out := make([]categoryWithCount, 0, len(all))
		for _, c := range all {
			out = append(out, categoryWithCount{
				Category:  c,
				PostCount: counts[c.Code],
			})
		}

		h.responder.WriteJSON(w, map[string]any{"categories": out})
	}
}
