package service

import (
	"context"

	"menuverse/reservation-svc/internal/domain"
)

type ReservationRepository interface {
	CreateReservation(res *domain.Reservation) error
	GetReservation(id string) (*domain.Reservation, error)
	ListReservations(restaurantID string) ([]domain.Reservation, error)
	UpdateReservation(res *domain.Reservation) error
}

// MenuClient resolves restaurants and pre-order carts from the menu service.
type MenuClient interface {
	Restaurant(ctx context.Context, id string) (*domain.RestaurantInfo, error)
	Cart(ctx context.Context, cartID string) (*domain.CartSnapshot, error)
}

// PaymentLock guards a reservation while its payment is processed.
type PaymentLock interface {
	Acquire(ctx context.Context, reservationID string) (bool, error)
	Release(ctx context.Context, reservationID string) error
}

type ReservationPublisher interface {
	PublishReservation(ctx context.Context, event domain.ReservationEvent) error
}

type ReservationServiceInterface interface {
	Create(ctx context.Context, restaurantID string, req domain.ReservationRequest) (*domain.Reservation, error)
	Pay(ctx context.Context, id string) (*domain.Reservation, error)
	Get(id string) (*domain.Reservation, error)
	ListByRestaurant(restaurantID string) ([]domain.Reservation, error)
	Cancel(id string) (*domain.Reservation, error)
	Options() domain.Options
}

var _ ReservationServiceInterface = (*ReservationService)(nil)
