package api

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cakely/landing-backend/database"
	"github.com/cakely/landing-backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fakeStore is an in-memory PostStore with the same observable behavior as
// the GORM repo: publish-date-descending ordering, (nil, nil) on missing
// slugs, and a duplicate-key error on slug collisions.
type fakeStore struct {
	mu    sync.Mutex
	posts []*models.BlogPost
}

func newFakeStore(posts ...*models.BlogPost) *fakeStore {
	s := &fakeStore{}
	for _, p := range posts {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		s.posts = append(s.posts, p)
	}
	return s
}

func (s *fakeStore) matching(f database.PostFilter) []*models.BlogPost {
	var out []*models.BlogPost
	for _, p := range s.posts {
		if f.PublishedOnly && !p.Published {
			continue
		}
		if f.Category != "" && (p.Category == nil || *p.Category != f.Category) {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		var ti, tj time.Time
		if out[i].PublishedAt != nil {
			ti = *out[i].PublishedAt
		}
		if out[j].PublishedAt != nil {
			tj = *out[j].PublishedAt
		}
		return ti.After(tj)
	})
	return out
}

func (s *fakeStore) List(f database.PostFilter) ([]models.BlogPost, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := s.matching(f)
	total := int64(len(matched))

	if f.Offset > 0 {
		if f.Offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[f.Offset:]
		}
	}
	if f.Limit > 0 && len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}

	out := make([]models.BlogPost, 0, len(matched))
	for _, p := range matched {
		out = append(out, *p)
	}
	return out, total, nil
}

func (s *fakeStore) FindBySlug(slug string) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.posts {
		if p.Slug == slug {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) Add(post *models.BlogPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.posts {
		if p.Slug == post.Slug {
			return gorm.ErrDuplicatedKey
		}
	}
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	clone := *post
	s.posts = append(s.posts, &clone)
	return nil
}

func (s *fakeStore) Update(post *models.BlogPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.posts {
		if p.ID == post.ID {
			post.UpdatedAt = time.Now()
			clone := *post
			s.posts[i] = &clone
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *fakeStore) DeleteBySlug(slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.posts {
		if p.Slug == slug {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *fakeStore) AllPublished() ([]models.BlogPost, error) {
	posts, _, err := s.List(database.PostFilter{PublishedOnly: true})
	return posts, err
}

func (s *fakeStore) CountByCategory() (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int64)
	for _, p := range s.posts {
		if p.Published && p.Category != nil {
			counts[*p.Category]++
		}
	}
	return counts, nil
}

// fakeRevalidator records the paths it was asked to revalidate.
type fakeRevalidator struct {
	mu    sync.Mutex
	paths []string
}

func (f *fakeRevalidator) RevalidatePaths(_ context.Context, paths ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paths = append(f.paths, paths...)
}

func (f *fakeRevalidator) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.paths))
	copy(out, f.paths)
	return out
}

const testBaseURL = "https://cakely.es"

func newTestRouter(store PostStore, revalidator Revalidator, apiKey string) *chi.Mux {
	r := chi.NewRouter()
	handlers := initializeHandlers(store, revalidator, nil, testBaseURL, time.Now())
	setupRoutes(r, handlers, newAuthMiddleware(apiKey))
	return r
}
