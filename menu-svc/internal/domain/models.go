package domain

import "time"

type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Image       string `json:"image"`
	IsPremium   bool   `json:"is_premium"`
}

type Restaurant struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Cuisine    string     `json:"cuisine"`
	ThemeColor string     `json:"theme_color"`
	Tables     int        `json:"tables"`
	Logo       string     `json:"logo"`
	Menu       []MenuItem `json:"menu"`
}

// Item returns the menu item with the given id, or nil.
func (r *Restaurant) Item(itemID string) *MenuItem {
	for i := range r.Menu {
		if r.Menu[i].ID == itemID {
			return &r.Menu[i]
		}
	}
	return nil
}

// RestaurantSettings is the editable part of a restaurant from the dashboard.
type RestaurantSettings struct {
	Name       string `json:"name"`
	Cuisine    string `json:"cuisine"`
	ThemeColor string `json:"theme_color"`
	Tables     int    `json:"tables"`
	Logo       string `json:"logo"`
}

type MenuView struct {
	Restaurant  *Restaurant `json:"restaurant"`
	TableNumber int         `json:"table_number,omitempty"`
	Banner      string      `json:"banner,omitempty"`
	ScannedAt   *time.Time  `json:"scanned_at,omitempty"`
}

type CartItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}

type Cart struct {
	ID           string     `json:"id"`
	RestaurantID string     `json:"restaurant_id"`
	TableNumber  int        `json:"table_number,omitempty"`
	Items        []CartItem `json:"items"`
}

// CartLine is what cart storage keeps per menu item.
type CartLine struct {
	ItemID   string
	Quantity int
}

type CartSummary struct {
	CartID       string     `json:"cart_id"`
	RestaurantID string     `json:"restaurant_id"`
	TableNumber  int        `json:"table_number,omitempty"`
	Items        []CartItem `json:"items"`
	ItemsCount   int        `json:"items_count"`
	Subtotal     int        `json:"subtotal"`
	DeliveryFee  int        `json:"delivery_fee"`
	Taxes        int        `json:"taxes"`
	Total        int        `json:"total"`
}

const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderServed    = "served"
	OrderPaid      = "paid"
)

type OrderItem struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Price      int    `json:"price"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes,omitempty"`
}

type Order struct {
	ID           string      `json:"id"`
	RestaurantID string      `json:"restaurant_id"`
	TableNumber  int         `json:"table_number,omitempty"`
	Items        []OrderItem `json:"items"`
	Subtotal     int         `json:"subtotal"`
	DeliveryFee  int         `json:"delivery_fee"`
	Taxes        int         `json:"taxes"`
	TotalAmount  int         `json:"total_amount"`
	Status       string      `json:"status"`
	QRCode       string      `json:"qr_code,omitempty"`
	Message      string      `json:"message,omitempty"`
	Timestamp    time.Time   `json:"timestamp"`
}

type TableCode struct {
	Table  int    `json:"table"`
	URL    string `json:"url"`
	PNGURL string `json:"png_url"`
	SVGURL string `json:"svg_url"`
}

type PremiumFeature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type PremiumPreview struct {
	Item      MenuItem         `json:"item"`
	Features  []PremiumFeature `json:"features"`
	Available bool             `json:"available"`
	Message   string           `json:"message"`
}

type EventItem struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	Price      int    `json:"price"`
}

type OrderEvent struct {
	Type         string      `json:"type"`
	OrderID      string      `json:"order_id"`
	RestaurantID string      `json:"restaurant_id"`
	TableNumber  int         `json:"table_number,omitempty"`
	Items        []EventItem `json:"items"`
	TotalAmount  int         `json:"total_amount"`
	Timestamp    time.Time   `json:"timestamp"`
}
