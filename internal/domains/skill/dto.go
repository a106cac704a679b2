package skill

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateSkillRequest - admin creates a skill entry.
type CreateSkillRequest struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Level     int     `json:"level"`
	Icon      *string `json:"icon,omitempty"`
	SortOrder int     `json:"sort_order"`
}

func (r CreateSkillRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Level, validation.Min(0), validation.Max(100)),
	)
}

// UpdateSkillRequest - partial update; only non-nil fields are applied.
type UpdateSkillRequest struct {
	Name      *string `json:"name,omitempty"`
	Category  *string `json:"category,omitempty"`
	Level     *int    `json:"level,omitempty"`
	Icon      *string `json:"icon,omitempty"`
	SortOrder *int    `json:"sort_order,omitempty"`
}

func (r UpdateSkillRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("name cannot be blank"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Category,
			validation.NilOrNotEmpty.Error("category cannot be blank"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Level,
			validation.When(r.Level != nil, validation.Min(0), validation.Max(100)),
		),
	)
}

// SkillFilter - list query parameters after normalization.
type SkillFilter struct {
	Category string
	Limit    int
	Offset   int
}
