package domain

import "time"

const (
	EventOrderPlaced          = "order_placed"
	EventReservationConfirmed = "reservation_confirmed"
)

type EventItem struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	Price      int    `json:"price"`
}

// Event is the union of everything published on the orders and reservations
// topics. Only the fields relevant to Type are populated.
type Event struct {
	Type          string      `json:"type"`
	RestaurantID  string      `json:"restaurant_id"`
	OrderID       string      `json:"order_id,omitempty"`
	TableNumber   int         `json:"table_number,omitempty"`
	Items         []EventItem `json:"items,omitempty"`
	ReservationID string      `json:"reservation_id,omitempty"`
	CustomerName  string      `json:"customer_name,omitempty"`
	Phone         string      `json:"phone,omitempty"`
	Date          string      `json:"date,omitempty"`
	Time          string      `json:"time,omitempty"`
	Guests        int         `json:"guests,omitempty"`
	TotalAmount   int         `json:"total_amount"`
	Timestamp     time.Time   `json:"timestamp"`
}

type Notification struct {
	ReservationID string    `json:"reservation_id"`
	RestaurantID  string    `json:"restaurant_id"`
	Channel       string    `json:"channel"`
	Phone         string    `json:"phone"`
	Message       string    `json:"message"`
	SentAt        time.Time `json:"sent_at"`
}
