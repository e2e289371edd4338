package logos

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]LogoSet // userID -> sets
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]LogoSet),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, set LogoSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[set.UserID] = append(r.data[set.UserID], cloneSet(set))
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, userID, id string) (LogoSet, error) {
	if err := ctx.Err(); err != nil {
		return LogoSet{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.data[userID] {
		if s.ID == id {
			return cloneSet(s), nil
		}
	}
	return LogoSet{}, ErrNotFound
}

// ListByUser returns sets newest first, honoring limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]LogoSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	limit, offset = clampPage(limit, offset)

	r.mu.RLock()
	sets := make([]LogoSet, len(r.data[userID]))
	copy(sets, r.data[userID])
	r.mu.RUnlock()

	if offset >= len(sets) {
		return []LogoSet{}, nil
	}
	sort.SliceStable(sets, func(i, j int) bool {
		return sets[i].CreatedAt.After(sets[j].CreatedAt)
	})

	end := len(sets)
	if offset+limit < end {
		end = offset + limit
	}
	out := make([]LogoSet, 0, end-offset)
	for _, s := range sets[offset:end] {
		out = append(out, cloneSet(s))
	}
	return out, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, userID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	sets := r.data[userID]
	for i := range sets {
		if sets[i].ID == id {
			r.data[userID] = append(sets[:i:i], sets[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func cloneSet(s LogoSet) LogoSet {
	s.Variants = append([]string(nil), s.Variants...)
	s.SVGs = append([]string(nil), s.SVGs...)
	return s
}

var _ Repo = (*MemoryRepo)(nil)
