package project

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// CreateProjectRequest - admin creates a project. ID and timestamps are
// server-assigned; the DTO deliberately has no fields for them.
type CreateProjectRequest struct {
	Title        string   `json:"title"`
	Slug         string   `json:"slug,omitempty"` // derived from Title when empty
	Description  *string  `json:"description,omitempty"`
	Content      *string  `json:"content,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Category     *string  `json:"category,omitempty"`
	LiveURL      *string  `json:"live_url,omitempty"`
	RepoURL      *string  `json:"repo_url,omitempty"`
	ImageURL     *string  `json:"image_url,omitempty"`
	Featured     bool     `json:"featured"`
	Published    bool     `json:"published"`
	SortOrder    int      `json:"sort_order"`
}

func (r CreateProjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Slug,
			validation.When(r.Slug != "",
				validation.Match(slugPattern).Error("slug may contain only lowercase letters, digits and hyphens"),
				validation.Length(1, 200),
			),
		),
		validation.Field(&r.LiveURL,
			validation.When(r.LiveURL != nil && *r.LiveURL != "", is.URL),
		),
		validation.Field(&r.RepoURL,
			validation.When(r.RepoURL != nil && *r.RepoURL != "", is.URL),
		),
		validation.Field(&r.ImageURL,
			validation.When(r.ImageURL != nil && *r.ImageURL != "", is.URL),
		),
		validation.Field(&r.Technologies, validation.Length(0, 30)),
	)
}

// UpdateProjectRequest - partial update; only non-nil fields are applied.
type UpdateProjectRequest struct {
	Title        *string   `json:"title,omitempty"`
	Slug         *string   `json:"slug,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Content      *string   `json:"content,omitempty"`
	Technologies *[]string `json:"technologies,omitempty"`
	Category     *string   `json:"category,omitempty"`
	LiveURL      *string   `json:"live_url,omitempty"`
	RepoURL      *string   `json:"repo_url,omitempty"`
	ImageURL     *string   `json:"image_url,omitempty"`
	Featured     *bool     `json:"featured,omitempty"`
	Published    *bool     `json:"published,omitempty"`
	SortOrder    *int      `json:"sort_order,omitempty"`
}

func (r UpdateProjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be blank"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Slug,
			validation.NilOrNotEmpty.Error("slug cannot be blank"),
			validation.Match(slugPattern).Error("slug may contain only lowercase letters, digits and hyphens"),
			validation.Length(1, 200),
		),
	)
}

// ProjectFilter - list query parameters after normalization.
type ProjectFilter struct {
	Category      string
	Featured      *bool
	PublishedOnly bool
	Limit         int
	Offset        int
}
