package certification

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateCertificationRequest - admin adds a credential.
type CreateCertificationRequest struct {
	Name          string     `json:"name"`
	Issuer        string     `json:"issuer"`
	CredentialURL *string    `json:"credential_url,omitempty"`
	IssuedAt      *time.Time `json:"issued_at,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	SortOrder     int        `json:"sort_order"`
}

func (r CreateCertificationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Issuer,
			validation.Required.Error("issuer is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.CredentialURL,
			validation.When(r.CredentialURL != nil && *r.CredentialURL != "", is.URL),
		),
	)
}

// UpdateCertificationRequest - partial update; only non-nil fields are applied.
type UpdateCertificationRequest struct {
	Name          *string    `json:"name,omitempty"`
	Issuer        *string    `json:"issuer,omitempty"`
	CredentialURL *string    `json:"credential_url,omitempty"`
	IssuedAt      *time.Time `json:"issued_at,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	SortOrder     *int       `json:"sort_order,omitempty"`
}

func (r UpdateCertificationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("name cannot be blank"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Issuer,
			validation.NilOrNotEmpty.Error("issuer cannot be blank"),
			validation.Length(1, 200),
		),
	)
}

// CertificationFilter - list query parameters after normalization.
type CertificationFilter struct {
	Limit  int
	Offset int
}
