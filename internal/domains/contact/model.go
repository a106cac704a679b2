package contact

import (
	"time"

	"github.com/google/uuid"
)

// Submission is a message left through the public contact form.
type Submission struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   *string   `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	ClientIP  *string   `json:"client_ip,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
