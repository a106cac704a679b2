package portfolio

import "context"

// Service assembles the aggregate overview.
type Service interface {
	// GetOverview fans out the sub-queries concurrently. Any failure fails
	// the whole request; a partial portfolio is never served.
	GetOverview(ctx context.Context) (*Overview, error)
}
