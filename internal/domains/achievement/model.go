package achievement

import (
	"time"

	"github.com/google/uuid"
)

// Achievement is a milestone highlighted on the portfolio.
type Achievement struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Icon        *string    `json:"icon,omitempty"`
	AchievedAt  *time.Time `json:"achieved_at,omitempty"`
	SortOrder   int        `json:"sort_order"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
