package service

import (
	"context"

	"menuverse/menu-svc/internal/domain"
)

type RestaurantRepository interface {
	ListRestaurants() ([]domain.Restaurant, error)
	GetRestaurant(id string) (*domain.Restaurant, error)
	CreateRestaurant(rest *domain.Restaurant) error
	UpdateRestaurant(rest *domain.Restaurant) error
	UpdateRestaurantLogo(id, logo string) error
	AddMenuItem(restaurantID string, item *domain.MenuItem) error
	UpdateMenuItem(restaurantID string, item *domain.MenuItem) error
	DeleteMenuItem(restaurantID, itemID string) (int64, error)
	UpdateMenuItemImage(restaurantID, itemID, image string) error
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(id string) (*domain.Order, error)
	ListOrders(restaurantID string) ([]domain.Order, error)
	UpdateOrderStatus(id, status string) error
	SaveQRCode(orderID string, qr []byte) error
	GetQRCode(orderID string) ([]byte, error)
}

// CartStore keeps cart metadata and quantities. Lines come back in the order
// items were first added.
type CartStore interface {
	Create(ctx context.Context, cart *domain.Cart) error
	Meta(ctx context.Context, cartID string) (*domain.Cart, error)
	Lines(ctx context.Context, cartID string) ([]domain.CartLine, error)
	Increment(ctx context.Context, cartID, itemID string) (int, error)
	Decrement(ctx context.Context, cartID, itemID string) (int, error)
	SetQuantity(ctx context.Context, cartID, itemID string, quantity int) (int, error)
	Clear(ctx context.Context, cartID string) error
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

type CatalogServiceInterface interface {
	List() ([]domain.Restaurant, error)
	Get(id string) (*domain.Restaurant, error)
	Menu(id, table string) (*domain.MenuView, error)
	Create(rest *domain.Restaurant) error
	UpdateSettings(id string, settings domain.RestaurantSettings) (*domain.Restaurant, error)
	UpdateLogo(id, logo string) error
	AddMenuItem(restaurantID string, item *domain.MenuItem) error
	UpdateMenuItem(restaurantID string, item *domain.MenuItem) error
	DeleteMenuItem(restaurantID, itemID string) error
	UpdateMenuItemImage(restaurantID, itemID, image string) error
}

type PremiumServiceInterface interface {
	Features() []domain.PremiumFeature
	Preview(restaurantID, itemID string) (*domain.PremiumPreview, error)
}

type CartServiceInterface interface {
	Open(ctx context.Context, restaurantID string, table int) (*domain.Cart, error)
	Add(ctx context.Context, cartID, itemID string) (*domain.CartSummary, error)
	RemoveOne(ctx context.Context, cartID, itemID string) (*domain.CartSummary, error)
	SetQuantity(ctx context.Context, cartID, itemID string, quantity int) (*domain.CartSummary, error)
	Summary(ctx context.Context, cartID string) (*domain.CartSummary, error)
	Clear(ctx context.Context, cartID string) error
}

type OrderServiceInterface interface {
	Checkout(ctx context.Context, cartID string, notes map[string]string) (*domain.Order, error)
	Get(id string) (*domain.Order, error)
	List(restaurantID string) ([]domain.Order, error)
	AdvanceStatus(id, status string) (*domain.Order, error)
	GetQRCode(id string) ([]byte, error)
	QRLink(id string) string
}

type TableQRServiceInterface interface {
	TableURL(restaurantID string, table int) string
	Codes(restaurantID string) ([]domain.TableCode, error)
	PNG(restaurantID string, table int) ([]byte, error)
	SVG(restaurantID string, table int) ([]byte, error)
}

var (
	_ CatalogServiceInterface = (*CatalogService)(nil)
	_ PremiumServiceInterface = (*PremiumService)(nil)
	_ CartServiceInterface    = (*CartService)(nil)
	_ OrderServiceInterface   = (*OrderService)(nil)
	_ TableQRServiceInterface = (*TableQRService)(nil)
)
