package storage

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"menuverse/menu-svc/internal/domain"
)

// MemoryCatalog holds restaurants for the lifetime of the process.
type MemoryCatalog struct {
	mu          sync.RWMutex
	restaurants []domain.Restaurant
}

func NewMemoryCatalog(seed []domain.Restaurant) *MemoryCatalog {
	return &MemoryCatalog{restaurants: seed}
}

func cloneRestaurant(rest domain.Restaurant) domain.Restaurant {
	menu := make([]domain.MenuItem, len(rest.Menu))
	copy(menu, rest.Menu)
	rest.Menu = menu
	return rest
}

func (c *MemoryCatalog) index(id string) int {
	for i := range c.restaurants {
		if c.restaurants[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *MemoryCatalog) ListRestaurants() ([]domain.Restaurant, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	restaurants := make([]domain.Restaurant, 0, len(c.restaurants))
	for _, rest := range c.restaurants {
		restaurants = append(restaurants, cloneRestaurant(rest))
	}
	return restaurants, nil
}

func (c *MemoryCatalog) GetRestaurant(id string) (*domain.Restaurant, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.index(id)
	if i < 0 {
		return nil, domain.ErrRestaurantNotFound
	}
	rest := cloneRestaurant(c.restaurants[i])
	return &rest, nil
}

func (c *MemoryCatalog) CreateRestaurant(rest *domain.Restaurant) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	base := rest.ID
	for n := 2; c.index(rest.ID) >= 0; n++ {
		rest.ID = base + "-" + strconv.Itoa(n)
	}
	c.restaurants = append(c.restaurants, cloneRestaurant(*rest))
	return nil
}

func (c *MemoryCatalog) UpdateRestaurant(rest *domain.Restaurant) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.index(rest.ID)
	if i < 0 {
		return domain.ErrRestaurantNotFound
	}
	stored := &c.restaurants[i]
	stored.Name = rest.Name
	stored.Cuisine = rest.Cuisine
	stored.ThemeColor = rest.ThemeColor
	stored.Tables = rest.Tables
	stored.Logo = rest.Logo
	return nil
}

func (c *MemoryCatalog) UpdateRestaurantLogo(id, logo string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.index(id)
	if i < 0 {
		return domain.ErrRestaurantNotFound
	}
	c.restaurants[i].Logo = logo
	return nil
}

func (c *MemoryCatalog) AddMenuItem(restaurantID string, item *domain.MenuItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.index(restaurantID)
	if i < 0 {
		return domain.ErrRestaurantNotFound
	}
	if c.restaurants[i].Item(item.ID) != nil {
		return domain.ErrDuplicateMenuItem
	}
	c.restaurants[i].Menu = append(c.restaurants[i].Menu, *item)
	return nil
}

func (c *MemoryCatalog) UpdateMenuItem(restaurantID string, item *domain.MenuItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.index(restaurantID)
	if i < 0 {
		return domain.ErrRestaurantNotFound
	}
	stored := c.restaurants[i].Item(item.ID)
	if stored == nil {
		return domain.ErrMenuItemNotFound
	}
	if item.Image == "" {
		item.Image = stored.Image
	}
	*stored = *item
	return nil
}

func (c *MemoryCatalog) DeleteMenuItem(restaurantID, itemID string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.index(restaurantID)
	if i < 0 {
		return 0, nil
	}
	menu := c.restaurants[i].Menu
	for j := range menu {
		if menu[j].ID == itemID {
			c.restaurants[i].Menu = append(menu[:j:j], menu[j+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (c *MemoryCatalog) UpdateMenuItemImage(restaurantID, itemID, image string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.index(restaurantID)
	if i < 0 {
		return domain.ErrRestaurantNotFound
	}
	item := c.restaurants[i].Item(itemID)
	if item == nil {
		return domain.ErrMenuItemNotFound
	}
	item.Image = image
	return nil
}

// MemoryOrders appends orders to a process-local list.
type MemoryOrders struct {
	mu     sync.RWMutex
	orders []domain.Order
	qr     map[string][]byte
}

func NewMemoryOrders() *MemoryOrders {
	return &MemoryOrders{qr: make(map[string][]byte)}
}

func cloneOrder(order domain.Order) domain.Order {
	items := make([]domain.OrderItem, len(order.Items))
	copy(items, order.Items)
	order.Items = items
	return order
}

func (o *MemoryOrders) CreateOrder(order *domain.Order) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.orders = append(o.orders, cloneOrder(*order))
	return nil
}

func (o *MemoryOrders) GetOrder(id string) (*domain.Order, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	for _, order := range o.orders {
		if order.ID == id {
			found := cloneOrder(order)
			return &found, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

// ListOrders returns newest first. An empty restaurant id lists everything.
func (o *MemoryOrders) ListOrders(restaurantID string) ([]domain.Order, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	orders := []domain.Order{}
	for _, order := range o.orders {
		if restaurantID == "" || order.RestaurantID == restaurantID {
			orders = append(orders, cloneOrder(order))
		}
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Timestamp.After(orders[j].Timestamp)
	})
	return orders, nil
}

func (o *MemoryOrders) UpdateOrderStatus(id, status string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i := range o.orders {
		if o.orders[i].ID == id {
			o.orders[i].Status = status
			return nil
		}
	}
	return domain.ErrOrderNotFound
}

func (o *MemoryOrders) SaveQRCode(orderID string, qr []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.qr[orderID] = qr
	return nil
}

func (o *MemoryOrders) GetQRCode(orderID string) ([]byte, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	for _, order := range o.orders {
		if order.ID == orderID {
			return o.qr[orderID], nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

type memoryCart struct {
	meta  domain.Cart
	lines []domain.CartLine
}

// MemoryCartStore is the cart store used when no Redis is configured.
type MemoryCartStore struct {
	mu    sync.Mutex
	carts map[string]*memoryCart
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string]*memoryCart)}
}

func (s *MemoryCartStore) Create(_ context.Context, cart *domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[cart.ID] = &memoryCart{meta: domain.Cart{
		ID:           cart.ID,
		RestaurantID: cart.RestaurantID,
		TableNumber:  cart.TableNumber,
	}}
	return nil
}

func (s *MemoryCartStore) Meta(_ context.Context, cartID string) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[cartID]
	if !ok {
		return nil, domain.ErrCartNotFound
	}
	meta := cart.meta
	return &meta, nil
}

func (s *MemoryCartStore) Lines(_ context.Context, cartID string) ([]domain.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[cartID]
	if !ok {
		return nil, domain.ErrCartNotFound
	}
	lines := make([]domain.CartLine, len(cart.lines))
	copy(lines, cart.lines)
	return lines, nil
}

func (s *MemoryCartStore) Increment(_ context.Context, cartID, itemID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[cartID]
	if !ok {
		return 0, domain.ErrCartNotFound
	}
	for i := range cart.lines {
		if cart.lines[i].ItemID == itemID {
			cart.lines[i].Quantity++
			return cart.lines[i].Quantity, nil
		}
	}
	cart.lines = append(cart.lines, domain.CartLine{ItemID: itemID, Quantity: 1})
	return 1, nil
}

func (s *MemoryCartStore) Decrement(_ context.Context, cartID, itemID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[cartID]
	if !ok {
		return 0, domain.ErrCartNotFound
	}
	for i := range cart.lines {
		if cart.lines[i].ItemID != itemID {
			continue
		}
		if cart.lines[i].Quantity > 1 {
			cart.lines[i].Quantity--
			return cart.lines[i].Quantity, nil
		}
		cart.lines = append(cart.lines[:i], cart.lines[i+1:]...)
		return 0, nil
	}
	return 0, nil
}

func (s *MemoryCartStore) SetQuantity(_ context.Context, cartID, itemID string, quantity int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[cartID]
	if !ok {
		return 0, domain.ErrCartNotFound
	}
	for i := range cart.lines {
		if cart.lines[i].ItemID != itemID {
			continue
		}
		if quantity <= 0 {
			cart.lines = append(cart.lines[:i], cart.lines[i+1:]...)
			return 0, nil
		}
		cart.lines[i].Quantity = quantity
		return quantity, nil
	}
	if quantity <= 0 {
		return 0, nil
	}
	cart.lines = append(cart.lines, domain.CartLine{ItemID: itemID, Quantity: quantity})
	return quantity, nil
}

func (s *MemoryCartStore) Clear(_ context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[cartID]
	if !ok {
		return domain.ErrCartNotFound
	}
	cart.lines = nil
	return nil
}
