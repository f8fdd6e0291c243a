package storage

import (
	"context"
	"sort"
	"sync"

	"menuverse/reservation-svc/internal/domain"
)

type MemoryRepository struct {
	mu           sync.RWMutex
	reservations []domain.Reservation
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func clone(res domain.Reservation) domain.Reservation {
	items := make([]domain.PreOrderItem, len(res.PreOrder))
	copy(items, res.PreOrder)
	res.PreOrder = items
	if res.ConfirmedAt != nil {
		confirmedAt := *res.ConfirmedAt
		res.ConfirmedAt = &confirmedAt
	}
	return res
}

func (r *MemoryRepository) CreateReservation(res *domain.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reservations = append(r.reservations, clone(*res))
	return nil
}

func (r *MemoryRepository) GetReservation(id string) (*domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, res := range r.reservations {
		if res.ID == id {
			found := clone(res)
			return &found, nil
		}
	}
	return nil, domain.ErrReservationNotFound
}

// ListReservations returns newest first.
func (r *MemoryRepository) ListReservations(restaurantID string) ([]domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := []domain.Reservation{}
	for _, res := range r.reservations {
		if res.RestaurantID == restaurantID {
			list = append(list, clone(res))
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (r *MemoryRepository) UpdateReservation(res *domain.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.reservations {
		if r.reservations[i].ID == res.ID {
			r.reservations[i] = clone(*res)
			return nil
		}
	}
	return domain.ErrReservationNotFound
}

// MemoryLock is the single-process payment lock used without Redis.
type MemoryLock struct {
	mu   sync.Mutex
	held map[string]bool
}

func NewMemoryLock() *MemoryLock {
	return &MemoryLock{held: make(map[string]bool)}
}

func (l *MemoryLock) Acquire(_ context.Context, reservationID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[reservationID] {
		return false, nil
	}
	l.held[reservationID] = true
	return true, nil
}

func (l *MemoryLock) Release(_ context.Context, reservationID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, reservationID)
	return nil
}
