package project

import (
	"time"

	"github.com/google/uuid"
)

// Project is a portfolio work entry, addressable by slug or id.
type Project struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Description  *string   `json:"description,omitempty"`
	Content      *string   `json:"content,omitempty"`
	Technologies []string  `json:"technologies"`
	Category     *string   `json:"category,omitempty"`
	LiveURL      *string   `json:"live_url,omitempty"`
	RepoURL      *string   `json:"repo_url,omitempty"`
	ImageURL     *string   `json:"image_url,omitempty"`
	Featured     bool      `json:"featured"`
	Published    bool      `json:"published"`
	ViewCount    int64     `json:"view_count"`
	SortOrder    int       `json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
