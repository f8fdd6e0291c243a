package service

import (
	"context"
	"fmt"
	"time"

	"menuverse/menu-svc/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const EventOrderPlaced = "order_placed"

var nextStatus = map[string]string{
	domain.OrderPending:   domain.OrderPreparing,
	domain.OrderPreparing: domain.OrderServed,
	domain.OrderServed:    domain.OrderPaid,
}

type OrderService struct {
	repo      OrderRepository
	carts     CartServiceInterface
	publisher OrderPublisher
	qrEncoder QRGenerator
	baseURL   string
	logger    *zap.Logger
	now       func() time.Time
}

func NewOrderService(repo OrderRepository, carts CartServiceInterface, publisher OrderPublisher, qr QRGenerator, baseURL string, logger *zap.Logger) *OrderService {
	return &OrderService{
		repo:      repo,
		carts:     carts,
		publisher: publisher,
		qrEncoder: qr,
		baseURL:   baseURL,
		logger:    logger,
		now:       time.Now,
	}
}

// Checkout turns the cart into a pending order and empties the cart. Notes
// are keyed by menu item id.
func (s *OrderService) Checkout(ctx context.Context, cartID string, notes map[string]string) (*domain.Order, error) {
	summary, err := s.carts.Summary(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if len(summary.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	order := &domain.Order{
		ID:           "ord_" + uuid.NewString(),
		RestaurantID: summary.RestaurantID,
		TableNumber:  summary.TableNumber,
		Items:        make([]domain.OrderItem, 0, len(summary.Items)),
		Subtotal:     summary.Subtotal,
		DeliveryFee:  summary.DeliveryFee,
		Taxes:        summary.Taxes,
		TotalAmount:  summary.Total,
		Status:       domain.OrderPending,
		Timestamp:    s.now().UTC(),
	}
	for _, item := range summary.Items {
		order.Items = append(order.Items, domain.OrderItem{
			MenuItemID: item.ID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
			Notes:      notes[item.ID],
		})
	}

	if err := s.repo.CreateOrder(order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(s.orderURL(order.ID)); err == nil {
			if err := s.repo.SaveQRCode(order.ID, qr); err != nil {
				s.logger.Warn("failed to store order QR code", zap.String("order_id", order.ID), zap.Error(err))
			}
		}
	}

	if err := s.carts.Clear(ctx, cartID); err != nil {
		s.logger.Warn("failed to clear cart after checkout", zap.String("cart_id", cartID), zap.Error(err))
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrder(ctx, orderEvent(order)); err != nil {
			s.logger.Warn("failed to publish order event", zap.String("order_id", order.ID), zap.Error(err))
		}
	}

	order.QRCode = s.QRLink(order.ID)
	order.Message = fmt.Sprintf("Order placed successfully! Total: ₹%d", order.TotalAmount)
	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("restaurant_id", order.RestaurantID),
		zap.Int("total_amount", order.TotalAmount))
	return order, nil
}

func (s *OrderService) Get(id string) (*domain.Order, error) {
	return s.repo.GetOrder(id)
}

func (s *OrderService) List(restaurantID string) ([]domain.Order, error) {
	return s.repo.ListOrders(restaurantID)
}

// AdvanceStatus moves an order one step along pending → preparing → served → paid.
func (s *OrderService) AdvanceStatus(id, status string) (*domain.Order, error) {
	order, err := s.repo.GetOrder(id)
	if err != nil {
		return nil, err
	}
	if nextStatus[order.Status] != status {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, status)
	}
	if err := s.repo.UpdateOrderStatus(id, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

func (s *OrderService) GetQRCode(id string) ([]byte, error) {
	qr, err := s.repo.GetQRCode(id)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(s.orderURL(id)); err == nil {
			_ = s.repo.SaveQRCode(id, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

func (s *OrderService) QRLink(id string) string {
	return fmt.Sprintf("/api/orders/%s/qrcode", id)
}

func (s *OrderService) orderURL(id string) string {
	return fmt.Sprintf("%s/orders/%s", s.baseURL, id)
}

func orderEvent(order *domain.Order) domain.OrderEvent {
	items := make([]domain.EventItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, domain.EventItem{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			Price:      item.Price,
		})
	}
	return domain.OrderEvent{
		Type:         EventOrderPlaced,
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		TableNumber:  order.TableNumber,
		Items:        items,
		TotalAmount:  order.TotalAmount,
		Timestamp:    order.Timestamp,
	}
}
