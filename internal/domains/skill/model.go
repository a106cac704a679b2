package skill

import (
	"time"

	"github.com/google/uuid"
)

// Skill is a proficiency entry grouped by category on the portfolio page.
type Skill struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Level     int       `json:"level"` // 0-100
	Icon      *string   `json:"icon,omitempty"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
