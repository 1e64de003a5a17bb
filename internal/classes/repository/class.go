package repository

import (
	"context"
	"fmt"
	"sync"

	classeserrors "classbook/internal/classes/errors"
	"classbook/pkg/model"
)

type ClassRepository interface {
	FindAll(ctx context.Context) ([]*model.ClassSession, error)
	FindByID(ctx context.Context, id string) (*model.ClassSession, error)
	// ReserveSlot takes one slot from the session and returns its state after
	// the decrement.
	ReserveSlot(ctx context.Context, id string) (*model.ClassSession, error)
	// ReleaseSlot hands back a slot taken by ReserveSlot.
	ReleaseSlot(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type catalogEntry struct {
	mu      sync.Mutex
	session model.ClassSession
}

func (e *catalogEntry) snapshot() *model.ClassSession {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := e.session
	return &s
}

type inMemoryClassRepository struct {
	mu    sync.RWMutex
	order []*catalogEntry
	byID  map[string]*catalogEntry
}

// NewInMemoryClassRepository builds a catalog holding sessions in the given
// order. AvailableSlots is taken as given and must lie within [0, TotalSlots];
// TotalSlots must be positive.
func NewInMemoryClassRepository(sessions []model.ClassSession) (ClassRepository, error) {
	repo := &inMemoryClassRepository{
		order: make([]*catalogEntry, 0, len(sessions)),
		byID:  make(map[string]*catalogEntry, len(sessions)),
	}

	for _, s := range sessions {
		if _, exists := repo.byID[s.ID]; exists {
			return nil, fmt.Errorf("%w: %s", classeserrors.ErrDuplicateID, s.ID)
		}
		if s.TotalSlots < 1 {
			return nil, fmt.Errorf("%w: class %s has %d total slots",
				classeserrors.ErrInvalidSeed, s.ID, s.TotalSlots)
		}
		if s.AvailableSlots < 0 || s.AvailableSlots > s.TotalSlots {
			return nil, fmt.Errorf("%w: class %s has %d of %d slots available",
				classeserrors.ErrInvalidSeed, s.ID, s.AvailableSlots, s.TotalSlots)
		}
		entry := &catalogEntry{session: s}
		repo.order = append(repo.order, entry)
		repo.byID[s.ID] = entry
	}

	return repo, nil
}

func (r *inMemoryClassRepository) FindAll(ctx context.Context) ([]*model.ClassSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*model.ClassSession, 0, len(r.order))
	for _, entry := range r.order {
		sessions = append(sessions, entry.snapshot())
	}
	return sessions, nil
}

func (r *inMemoryClassRepository) FindByID(ctx context.Context, id string) (*model.ClassSession, error) {
	entry, err := r.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	return entry.snapshot(), nil
}

func (r *inMemoryClassRepository) ReserveSlot(ctx context.Context, id string) (*model.ClassSession, error) {
	entry, err := r.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.session.AvailableSlots <= 0 {
		return nil, classeserrors.ErrNoSlotsAvailable
	}
	entry.session.AvailableSlots--

	s := entry.session
	return &s, nil
}

func (r *inMemoryClassRepository) ReleaseSlot(ctx context.Context, id string) error {
	entry, err := r.lookup(ctx, id)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.session.AvailableSlots < entry.session.TotalSlots {
		entry.session.AvailableSlots++
	}
	return nil
}

func (r *inMemoryClassRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order), nil
}

func (r *inMemoryClassRepository) lookup(ctx context.Context, id string) (*catalogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	entry, ok := r.byID[id]
	r.mu.RUnlock()

	if !ok {
		return nil, classeserrors.ErrNotFound
	}
	return entry, nil
}
