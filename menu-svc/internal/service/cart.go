package service

import (
	"context"
	"strconv"

	"menuverse/menu-svc/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CartService struct {
	catalog RestaurantRepository
	store   CartStore
	logger  *zap.Logger
}

func NewCartService(catalog RestaurantRepository, store CartStore, logger *zap.Logger) *CartService {
	return &CartService{catalog: catalog, store: store, logger: logger}
}

func (s *CartService) Open(ctx context.Context, restaurantID string, table int) (*domain.Cart, error) {
	rest, err := s.catalog.GetRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	if table != 0 {
		if _, err := ParseTable(rest, strconv.Itoa(table)); err != nil {
			return nil, err
		}
	}

	cart := &domain.Cart{
		ID:           uuid.NewString(),
		RestaurantID: rest.ID,
		TableNumber:  table,
		Items:        []domain.CartItem{},
	}
	if err := s.store.Create(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Add puts one unit of an item in the cart. Premium items are rejected and
// leave the cart unchanged.
func (s *CartService) Add(ctx context.Context, cartID, itemID string) (*domain.CartSummary, error) {
	if _, err := s.purchasable(ctx, cartID, itemID); err != nil {
		return nil, err
	}
	if _, err := s.store.Increment(ctx, cartID, itemID); err != nil {
		return nil, err
	}
	return s.Summary(ctx, cartID)
}

// RemoveOne takes one unit away; the last unit removes the line.
func (s *CartService) RemoveOne(ctx context.Context, cartID, itemID string) (*domain.CartSummary, error) {
	if _, err := s.store.Decrement(ctx, cartID, itemID); err != nil {
		return nil, err
	}
	return s.Summary(ctx, cartID)
}

func (s *CartService) SetQuantity(ctx context.Context, cartID, itemID string, quantity int) (*domain.CartSummary, error) {
	if quantity > 0 {
		if _, err := s.purchasable(ctx, cartID, itemID); err != nil {
			return nil, err
		}
	}
	if _, err := s.store.SetQuantity(ctx, cartID, itemID, quantity); err != nil {
		return nil, err
	}
	return s.Summary(ctx, cartID)
}

func (s *CartService) Summary(ctx context.Context, cartID string) (*domain.CartSummary, error) {
	cart, err := s.store.Meta(ctx, cartID)
	if err != nil {
		return nil, err
	}
	lines, err := s.store.Lines(ctx, cartID)
	if err != nil {
		return nil, err
	}
	rest, err := s.catalog.GetRestaurant(cart.RestaurantID)
	if err != nil {
		return nil, err
	}

	cart.Items = make([]domain.CartItem, 0, len(lines))
	for _, line := range lines {
		item := rest.Item(line.ItemID)
		if item == nil {
			s.logger.Warn("cart line references a removed menu item",
				zap.String("cart_id", cartID),
				zap.String("item_id", line.ItemID))
			continue
		}
		cart.Items = append(cart.Items, domain.CartItem{MenuItem: *item, Quantity: line.Quantity})
	}
	return Summarize(cart), nil
}

func (s *CartService) Clear(ctx context.Context, cartID string) error {
	return s.store.Clear(ctx, cartID)
}

func (s *CartService) purchasable(ctx context.Context, cartID, itemID string) (*domain.MenuItem, error) {
	cart, err := s.store.Meta(ctx, cartID)
	if err != nil {
		return nil, err
	}
	rest, err := s.catalog.GetRestaurant(cart.RestaurantID)
	if err != nil {
		return nil, err
	}
	item := rest.Item(itemID)
	if item == nil {
		return nil, domain.ErrMenuItemNotFound
	}
	if item.IsPremium {
		return nil, domain.ErrPremiumItem
	}
	return item, nil
}
