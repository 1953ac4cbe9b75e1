package in_mem

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/addsub/internal/domain"
	"github.com/DjordjeVuckovic/addsub/internal/history"
	"github.com/google/uuid"
)

type InMemStore struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]domain.Evaluation
	order       []uuid.UUID
	now         func() time.Time
}

func NewInMemStore() *InMemStore {
	return &InMemStore{
		storage: make(map[uuid.UUID]domain.Evaluation),
		now:     time.Now,
	}
}

func (s *InMemStore) Save(ctx context.Context, e domain.Evaluation) (uuid.UUID, error) {
	history.Prepare(&e, s.now)

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if _, exists := s.storage[e.ID]; !exists {
		s.order = append(s.order, e.ID)
	}
	s.storage[e.ID] = e

	slog.Debug("Saved evaluation to in-memory history", "id", e.ID, "expression", e.Expression)
	return e.ID, nil
}

func (s *InMemStore) Get(ctx context.Context, id uuid.UUID) (*domain.Evaluation, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	e, ok := s.storage[id]
	if !ok {
		return nil, history.ErrNotFound
	}
	return &e, nil
}

func (s *InMemStore) List(ctx context.Context, limit int) ([]domain.Evaluation, error) {
	limit = history.ClampLimit(limit)

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	out := make([]domain.Evaluation, 0, min(limit, len(s.order)))
	for i := len(s.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.storage[s.order[i]])
	}
	return out, nil
}

var _ history.Store = (*InMemStore)(nil)
