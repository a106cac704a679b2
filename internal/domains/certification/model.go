package certification

import (
	"time"

	"github.com/google/uuid"
)

// Certification is a professional credential listed on the portfolio.
type Certification struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Issuer        string     `json:"issuer"`
	CredentialURL *string    `json:"credential_url,omitempty"`
	IssuedAt      *time.Time `json:"issued_at,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	SortOrder     int        `json:"sort_order"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
