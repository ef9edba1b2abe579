package api

import (
	"encoding/json"
	"encoding/xml"
	"net/http"
	"testing"
	"time"

	"github.com/cakely/landing-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapContents(t *testing.T) {
	published := publishedPost("Hola", "hola", time.Now())
	draft := &models.BlogPost{Title: "Draft", Slug: "draft", Content: "x", Published: false}
	store := newFakeStore(published, draft)
	router := newTestRouter(store, &fakeRevalidator{}, testAPIKey)

	rec := doJSON(t, router, http.MethodGet, "/sitemap.xml", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/xml")

	var urlset sitemapURLSet
	require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &urlset))
	assert.Equal(t, "http://www.sitemaps.org/schemas/sitemap/0.9", urlset.XMLNS)

	locs := make([]string, 0, len(urlset.URLs))
	for _, u := range urlset.URLs {
		locs = append(locs, u.Loc)
	}

	// Static pages.
	assert.Contains(t, locs, testBaseURL)
	assert.Contains(t, locs, testBaseURL+"/blog")
	assert.Contains(t, locs, testBaseURL+"/privacidad/cookies")

	// One URL per category page.
	for _, c := range models.AllCategories() {
		assert.Contains(t, locs, testBaseURL+"/blog/categoria/"+c.Slug)
	}

	// Published posts only.
	assert.Contains(t, locs, testBaseURL+"/blog/hola")
	assert.NotContains(t, locs, testBaseURL+"/blog/draft")
}

func TestCategoriesEndpointCountsPublishedOnly(t *testing.T) {
	recetas := models.CategoryRecetas

	published := publishedPost("Recetas 1", "recetas-1", time.Now())
	published.Category = &recetas
	draft := &models.BlogPost{Title: "Draft", Slug: "draft", Content: "x", Published: false, Category: &recetas}

	store := newFakeStore(published, draft)
	router := newTestRouter(store, &fakeRevalidator{}, testAPIKey)

	rec := doJSON(t, router, http.MethodGet, "/categories", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Categories []struct {
			Code        string `json:"code"`
			Label       string `json:"label"`
			Slug        string `json:"slug"`
			Description string `json:"description"`
			PostCount   int64  `json:"postCount"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Categories, 7)

	// Declaration order preserved.
	assert.Equal(t, models.CategoryGestion, resp.Categories[0].Code)
	assert.Equal(t, models.CategoryCasosEstudio, resp.Categories[6].Code)

	for _, c := range resp.Categories {
		if c.Code == models.CategoryRecetas {
			assert.Equal(t, int64(1), c.PostCount, "draft must not be counted")
		} else {
			assert.Zero(t, c.PostCount)
		}
		assert.NotEmpty(t, c.Label)
		assert.NotEmpty(t, c.Description)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(newFakeStore(), &fakeRevalidator{}, testAPIKey)

	rec := doJSON(t, router, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}
