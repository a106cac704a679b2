package blog

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// CreatePostRequest - admin creates a post. ID and timestamps are
// server-assigned; the DTO deliberately has no fields for them.
type CreatePostRequest struct {
	Title         string   `json:"title"`
	Slug          string   `json:"slug,omitempty"` // derived from Title when empty
	Excerpt       *string  `json:"excerpt,omitempty"`
	Content       string   `json:"content"`
	Category      *string  `json:"category,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	FeaturedImage *string  `json:"featured_image,omitempty"`
	Published     bool     `json:"published"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
		validation.Field(&r.Slug,
			validation.When(r.Slug != "",
				validation.Match(slugPattern).Error("slug may contain only lowercase letters, digits and hyphens"),
				validation.Length(1, 200),
			),
		),
		validation.Field(&r.FeaturedImage,
			validation.When(r.FeaturedImage != nil && *r.FeaturedImage != "", is.URL),
		),
		validation.Field(&r.Tags, validation.Length(0, 20)),
	)
}

// UpdatePostRequest - partial update; only non-nil fields are applied.
type UpdatePostRequest struct {
	Title         *string   `json:"title,omitempty"`
	Slug          *string   `json:"slug,omitempty"`
	Excerpt       *string   `json:"excerpt,omitempty"`
	Content       *string   `json:"content,omitempty"`
	Category      *string   `json:"category,omitempty"`
	Tags          *[]string `json:"tags,omitempty"`
	FeaturedImage *string   `json:"featured_image,omitempty"`
	Published     *bool     `json:"published,omitempty"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be blank"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Content,
			validation.NilOrNotEmpty.Error("content cannot be blank"),
		),
		validation.Field(&r.Slug,
			validation.NilOrNotEmpty.Error("slug cannot be blank"),
			validation.Match(slugPattern).Error("slug may contain only lowercase letters, digits and hyphens"),
			validation.Length(1, 200),
		),
	)
}

// PostFilter - list query parameters after normalization.
type PostFilter struct {
	Category      string
	Tag           string
	PublishedOnly bool
	Limit         int
	Offset        int
}
