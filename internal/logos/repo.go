package logos

import "context"

// Page bounds applied by every Repo implementation.
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// Repo defines persistence operations for logo sets. Every lookup is scoped
// to the owning user.
type Repo interface {
	Create(ctx context.Context, set LogoSet) error
	GetByID(ctx context.Context, userID, id string) (LogoSet, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]LogoSet, error)
	Delete(ctx context.Context, userID, id string) error
}
