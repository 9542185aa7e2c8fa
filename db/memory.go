package db

import (
	"context"
	"sync"
	"time"

	"github.com/VivekbirN/SDP-project/models"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// MemoryBillStore keeps bills in process memory. Contents are lost on exit.
type MemoryBillStore struct {
	mu    sync.RWMutex
	bills map[string]models.Bill
	now   func() time.Time
}

// MemoryOption configures a MemoryBillStore.
type MemoryOption func(*MemoryBillStore)

// WithClock replaces the clock used for createdAt/updatedAt.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryBillStore) {
		s.now = now
	}
}

// NewMemoryBillStore creates an empty in-memory store.
func NewMemoryBillStore(opts ...MemoryOption) *MemoryBillStore {
	s := &MemoryBillStore{
		bills: make(map[string]models.Bill),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryBillStore) ListAll(_ context.Context, filter models.BillFilter) ([]models.Bill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.matching(filter), nil
}

func (s *MemoryBillStore) FindLatestCreated(_ context.Context, filter models.BillFilter) (*models.Bill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bills := s.matching(filter)
	if len(bills) == 0 {
		return nil, nil
	}
	latest := lo.MaxBy(bills, func(a, b models.Bill) bool { return a.CreatedAt.After(b.CreatedAt) })
	return &latest, nil
}

func (s *MemoryBillStore) Get(_ context.Context, id string) (models.Bill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bills[id]
	if !ok {
		return models.Bill{}, ErrNotFound
	}
	return b, nil
}

func (s *MemoryBillStore) Create(_ context.Context, in models.BillInput) (models.Bill, error) {
	now := s.now()
	b := models.Bill{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	b.Apply(in)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.bills[b.ID] = b
	return b, nil
}

func (s *MemoryBillStore) Update(_ context.Context, id string, in models.BillInput) (models.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bills[id]
	if !ok {
		return models.Bill{}, ErrNotFound
	}
	b.Apply(in)
	b.UpdatedAt = s.now()
	s.bills[id] = b
	return b, nil
}

func (s *MemoryBillStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bills[id]; !ok {
		return ErrNotFound
	}
	delete(s.bills, id)
	return nil
}

func (s *MemoryBillStore) MarkPaid(_ context.Context, id string, paidAt time.Time) (models.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bills[id]
	if !ok {
		return models.Bill{}, ErrNotFound
	}
	b.IsPaid = true
	b.PaymentDate = &paidAt
	b.UpdatedAt = s.now()
	s.bills[id] = b
	return b, nil
}

// matching must be called with s.mu held.
func (s *MemoryBillStore) matching(filter models.BillFilter) []models.Bill {
	return lo.Filter(lo.Values(s.bills), func(b models.Bill, _ int) bool { return filter.Matches(b) })
}
