package achievement

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateAchievementRequest - admin adds a milestone.
type CreateAchievementRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Icon        *string    `json:"icon,omitempty"`
	AchievedAt  *time.Time `json:"achieved_at,omitempty"`
	SortOrder   int        `json:"sort_order"`
}

func (r CreateAchievementRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 200),
		),
	)
}

// UpdateAchievementRequest - partial update; only non-nil fields are applied.
type UpdateAchievementRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Icon        *string    `json:"icon,omitempty"`
	AchievedAt  *time.Time `json:"achieved_at,omitempty"`
	SortOrder   *int       `json:"sort_order,omitempty"`
}

func (r UpdateAchievementRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be blank"),
			validation.Length(1, 200),
		),
	)
}

// AchievementFilter - list query parameters after normalization.
type AchievementFilter struct {
	Limit  int
	Offset int
}
