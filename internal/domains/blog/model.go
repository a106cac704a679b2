package blog

import (
	"time"

	"github.com/google/uuid"
)

// Post is a blog post record. Slug is unique across posts; unpublished
// posts are invisible to anonymous callers. ViewCount only ever grows and
// is bumped by the public detail read, never by lists.
type Post struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Excerpt       *string   `json:"excerpt,omitempty"`
	Content       string    `json:"content"`
	Category      *string   `json:"category,omitempty"`
	Tags          []string  `json:"tags"`
	FeaturedImage *string   `json:"featured_image,omitempty"`
	Published     bool      `json:"published"`
	ViewCount     int64     `json:"view_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
