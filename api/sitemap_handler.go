package api

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/cakely/landing-backend/errs"
	"github.com/cakely/landing-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// staticPages are the fixed landing pages, listed ahead of the dynamic
// category and post URLs.
var staticPages = []string{
	"",
	"/blog",
	"/contacto",
	"/terminos",
	"/privacidad",
	"/privacidad/cookies",
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     PostStore
	baseURL   string
}

func newSitemapHandler(store PostStore, baseURL string) sitemapHandler {
	logger := log.With().Str("handlerName", "sitemapHandler").Logger()

	return sitemapHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
	}
}

// serveSitemap renders the XML urlset: static landing pages, one URL per
// category page, and one per published post.
func (h sitemapHandler) serveSitemap() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.store.AllPublished()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("list", "published blog posts", err))
			return
		}

		now := time.Now().Format("2006-01-02")
		urls := make([]sitemapURL, 0, len(staticPages)+len(models.AllCategories())+len(posts))
		for _, page := range staticPages {
			urls = append(urls, sitemapURL{Loc: h.baseURL + page, LastMod: now})
		}
		for _, c := range models.AllCategories() {
			urls = append(urls, sitemapURL{Loc: h.baseURL + "/blog/categoria/" + c.Slug})
		}
		for _, p := range posts {
			urls = append(urls, sitemapURL{
				Loc:     h.baseURL + "/blog/" + p.Slug,
				LastMod: p.UpdatedAt.Format("2006-01-02"),
			})
		}

		sitemap := sitemapURLSet{
			XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
			URLs:  urls,
		}

		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(xml.Header))
		if err := xml.NewEncoder(w).Encode(sitemap); err != nil {
			h.logger.Error().Err(err).Msg("error encoding sitemap")
		}
	}
}
