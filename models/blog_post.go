package models

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost is a single entry of the landing-site blog. The slug is derived
// from the title once at creation and never regenerated afterwards, so post
// URLs stay stable across title edits.
type BlogPost struct {
	ID          uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string     `json:"title" db:"title" gorm:"type:text;not null"`
	Slug        string     `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Content     string     `json:"content" db:"content" gorm:"type:text;not null"`
	Excerpt     *string    `json:"excerpt,omitempty" db:"excerpt" gorm:"type:text"`
	CoverImage  *string    `json:"coverImage,omitempty" db:"cover_image" gorm:"type:text"`
	Category    *string    `json:"category,omitempty" db:"category" gorm:"type:text"`
	Published   bool       `json:"published" db:"published" gorm:"not null;default:true"`
	PublishedAt *time.Time `json:"publishedAt,omitempty" db:"published_at" gorm:"type:timestamp"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

// BlogPostSummary is the listing shape: everything but the content body.
type BlogPostSummary struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	CoverImage  *string    `json:"coverImage,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Summary projects a post into its listing shape.
func (p BlogPost) Summary() BlogPostSummary {
	return BlogPostSummary{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		CoverImage:  p.CoverImage,
		Category:    p.Category,
		Published:   p.Published,
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
	}
}
