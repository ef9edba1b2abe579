package database

import (
	"errors"

	"github.com/cakely/landing-backend/models"
	"gorm.io/gorm"
)

// PostFilter narrows List queries. A zero Limit means "no limit"; callers are
// expected to pass an already-clamped value.
type PostFilter struct {
	PublishedOnly bool
	Category      string
	Limit         int
	Offset        int
}

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

func (r *BlogPostRepo) filtered(f PostFilter) *gorm.DB {
	q := r.db.Model(&models.BlogPost{})
	if f.PublishedOnly {
		q = q.Where("published = ?", true)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	return q
}

// List returns one page of posts ordered by publish date descending, together
// with the total number of posts matching the filter.
func (r *BlogPostRepo) List(f PostFilter) ([]models.BlogPost, int64, error) {
	var total int64
	if err := r.filtered(f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.filtered(f).Order("published_at DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	var posts []models.BlogPost
	if err := q.Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// FindBySlug returns the post with the given slug, or (nil, nil) when no such
// post exists.
func (r *BlogPostRepo) FindBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Where("slug = ?", slug).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new blog post. A slug collision surfaces as the driver's
// duplicate-key error; the unique index is the only guard against concurrent
// creates racing on the same slug.
func (r *BlogPostRepo) Add(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

// Update persists all fields of an existing blog post.
func (r *BlogPostRepo) Update(post *models.BlogPost) error {
	return r.db.Save(post).Error
}

// DeleteBySlug hard-deletes the post with the given slug.
func (r *BlogPostRepo) DeleteBySlug(slug string) error {
	return r.db.Where("slug = ?", slug).Delete(&models.BlogPost{}).Error
}

// AllPublished returns every published post with only the fields the sitemap
// needs populated.
func (r *BlogPostRepo) AllPublished() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.db.
		Select("slug", "updated_at", "published_at").
		Where("published = ?", true).
		Order("published_at DESC").
		Find(&posts).Error
	return posts, err
}

// CountByCategory returns the number of published posts per category code.
// Categories with no published posts are absent from the map.
func (r *BlogPostRepo) CountByCategory() (map[string]int64, error) {
	var rows []struct {
		Category string
		Count    int64
	}
	err := r.db.Model(&models.BlogPost{}).
		Select("category, COUNT(*) AS count").
		Where("published = ? AND category IS NOT NULL", true).
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}
	return counts, nil
}
