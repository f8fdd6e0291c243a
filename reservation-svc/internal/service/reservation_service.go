package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"menuverse/reservation-svc/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	EventReservationConfirmed = "reservation_confirmed"

	defaultGuests          = 2
	defaultTablePreference = "any"
)

// RandomFee draws the reservation fee, 10 to 20 rupees inclusive.
func RandomFee() int {
	return rand.Intn(11) + 10
}

type ReservationService struct {
	repo         ReservationRepository
	menu         MenuClient
	lock         PaymentLock
	publisher    ReservationPublisher
	validate     *validator.Validate
	logger       *zap.Logger
	fee          func() int
	paymentDelay time.Duration
	now          func() time.Time
}

type Option func(*ReservationService)

func WithClock(now func() time.Time) Option {
	return func(s *ReservationService) { s.now = now }
}

func WithFee(fee func() int) Option {
	return func(s *ReservationService) { s.fee = fee }
}

func WithPaymentDelay(d time.Duration) Option {
	return func(s *ReservationService) { s.paymentDelay = d }
}

// paymentLockMargin covers the confirm write and event publish that follow
// the simulated gateway delay.
const paymentLockMargin = 30 * time.Second

// PaymentLockTTL is how long a payment lock must live to outlast a payment
// that waits delay before confirming.
func PaymentLockTTL(delay time.Duration) time.Duration {
	return delay + paymentLockMargin
}

func NewReservationService(repo ReservationRepository, menu MenuClient, lock PaymentLock, publisher ReservationPublisher,
	logger *zap.Logger, opts ...Option) *ReservationService {
	s := &ReservationService{
		repo:         repo,
		menu:         menu,
		lock:         lock,
		publisher:    publisher,
		logger:       logger,
		fee:          RandomFee,
		paymentDelay: 2 * time.Second,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.validate = newValidator(func() time.Time { return s.now() })
	return s
}

func (s *ReservationService) Options() domain.Options {
	slots := make([]string, len(domain.TimeSlots))
	copy(slots, domain.TimeSlots)
	prefs := make([]domain.TablePreference, len(domain.TablePreferences))
	copy(prefs, domain.TablePreferences)
	return domain.Options{
		TimeSlots:        slots,
		TablePreferences: prefs,
		MinGuests:        domain.MinGuests,
		MaxGuests:        domain.MaxGuests,
		DefaultGuests:    defaultGuests,
	}
}

// Create validates the form and stores a pending reservation awaiting
// payment. The fee is drawn once here and never recomputed.
func (s *ReservationService) Create(ctx context.Context, restaurantID string, req domain.ReservationRequest) (*domain.Reservation, error) {
	if req.Guests == 0 {
		req.Guests = defaultGuests
	}
	if req.TablePreference == "" {
		req.TablePreference = defaultTablePreference
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	rest, err := s.menu.Restaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	res := &domain.Reservation{
		ID:              "res_" + uuid.NewString(),
		RestaurantID:    rest.ID,
		RestaurantName:  rest.Name,
		CustomerName:    req.CustomerName,
		Email:           req.Email,
		Phone:           req.Phone,
		Date:            req.Date,
		Time:            req.Time,
		Guests:          req.Guests,
		TablePreference: req.TablePreference,
		IncludePreOrder: req.IncludePreOrder,
		PreOrder:        []domain.PreOrderItem{},
		ReservationFee:  s.fee(),
		Status:          domain.StatusPending,
		Step:            domain.StepPayment,
		CreatedAt:       s.now().UTC(),
	}

	if req.IncludePreOrder {
		cart, err := s.menu.Cart(ctx, req.PreOrderCartID)
		if err != nil {
			return nil, err
		}
		if cart.RestaurantID != rest.ID {
			return nil, domain.ErrPreOrderMismatch
		}
		res.PreOrder = append(res.PreOrder, cart.Items...)
		for _, item := range cart.Items {
			res.PreOrderTotal += item.Price * item.Quantity
		}
	}
	res.TotalAmount = res.ReservationFee + res.PreOrderTotal

	if err := s.repo.CreateReservation(res); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}
	s.logger.Info("reservation created",
		zap.String("reservation_id", res.ID),
		zap.String("restaurant_id", res.RestaurantID),
		zap.Int("total_amount", res.TotalAmount))
	return res, nil
}

// Pay simulates the payment step. It always succeeds once the processing
// delay has elapsed unless ctx is cancelled first.
func (s *ReservationService) Pay(ctx context.Context, id string) (*domain.Reservation, error) {
	res, err := s.repo.GetReservation(id)
	if err != nil {
		return nil, err
	}
	if err := payable(res); err != nil {
		return nil, err
	}

	acquired, err := s.lock.Acquire(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("acquire payment lock: %w", err)
	}
	if !acquired {
		return nil, domain.ErrPaymentInProgress
	}
	defer func() {
		if err := s.lock.Release(context.Background(), id); err != nil {
			s.logger.Warn("failed to release payment lock", zap.String("reservation_id", id), zap.Error(err))
		}
	}()

	timer := time.NewTimer(s.paymentDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	// Re-read under the lock so a concurrent cancel is not overwritten.
	res, err = s.repo.GetReservation(id)
	if err != nil {
		return nil, err
	}
	if err := payable(res); err != nil {
		return nil, err
	}

	confirmedAt := s.now().UTC()
	res.Status = domain.StatusConfirmed
	res.Step = domain.StepSuccess
	res.ConfirmedAt = &confirmedAt
	if err := s.repo.UpdateReservation(res); err != nil {
		return nil, fmt.Errorf("confirm reservation: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishReservation(ctx, confirmedEvent(res)); err != nil {
			s.logger.Warn("failed to publish reservation event", zap.String("reservation_id", id), zap.Error(err))
		}
	}
	s.logger.Info("reservation confirmed", zap.String("reservation_id", id), zap.String("phone", res.Phone))
	return res, nil
}

func payable(res *domain.Reservation) error {
	switch res.Status {
	case domain.StatusConfirmed:
		return domain.ErrAlreadyPaid
	case domain.StatusCancelled:
		return domain.ErrReservationCancelled
	}
	return nil
}

func (s *ReservationService) Get(id string) (*domain.Reservation, error) {
	return s.repo.GetReservation(id)
}

func (s *ReservationService) ListByRestaurant(restaurantID string) ([]domain.Reservation, error) {
	return s.repo.ListReservations(restaurantID)
}

func (s *ReservationService) Cancel(id string) (*domain.Reservation, error) {
	res, err := s.repo.GetReservation(id)
	if err != nil {
		return nil, err
	}
	if res.Status == domain.StatusCancelled {
		return nil, domain.ErrReservationCancelled
	}
	res.Status = domain.StatusCancelled
	if err := s.repo.UpdateReservation(res); err != nil {
		return nil, err
	}
	return res, nil
}

func confirmedEvent(res *domain.Reservation) domain.ReservationEvent {
	return domain.ReservationEvent{
		Type:           EventReservationConfirmed,
		ReservationID:  res.ID,
		RestaurantID:   res.RestaurantID,
		RestaurantName: res.RestaurantName,
		CustomerName:   res.CustomerName,
		Phone:          res.Phone,
		Date:           res.Date,
		Time:           res.Time,
		Guests:         res.Guests,
		TotalAmount:    res.TotalAmount,
		Timestamp:      *res.ConfirmedAt,
	}
}
