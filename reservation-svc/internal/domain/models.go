package domain

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

const (
	StepForm    = "form"
	StepPayment = "payment"
	StepSuccess = "success"
)

const (
	MinGuests = 1
	MaxGuests = 8
)

var TimeSlots = []string{
	"12:00 PM", "12:30 PM", "1:00 PM", "1:30 PM", "2:00 PM",
	"6:00 PM", "6:30 PM", "7:00 PM", "7:30 PM", "8:00 PM",
	"8:30 PM", "9:00 PM", "9:30 PM",
}

type TablePreference struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var TablePreferences = []TablePreference{
	{Value: "any", Label: "Any Available"},
	{Value: "window", Label: "Window Seat"},
	{Value: "corner", Label: "Corner Table"},
	{Value: "center", Label: "Center Area"},
}

// ReservationRequest is the form a guest submits from the restaurant page.
type ReservationRequest struct {
	CustomerName    string `json:"customer_name" validate:"required"`
	Email           string `json:"email" validate:"omitempty,email"`
	Phone           string `json:"phone" validate:"required"`
	Date            string `json:"date" validate:"required,datetime=2006-01-02,notpast"`
	Time            string `json:"time" validate:"required,timeslot"`
	Guests          int    `json:"guests" validate:"min=1,max=8"`
	TablePreference string `json:"table_preference" validate:"omitempty,oneof=any window corner center"`
	IncludePreOrder bool   `json:"include_pre_order"`
	PreOrderCartID  string `json:"pre_order_cart_id" validate:"required_if=IncludePreOrder true"`
}

type PreOrderItem struct {
	MenuItemID string `json:"id"`
	Name       string `json:"name"`
	Price      int    `json:"price"`
	Quantity   int    `json:"quantity"`
}

type Reservation struct {
	ID              string         `json:"id"`
	RestaurantID    string         `json:"restaurant_id"`
	RestaurantName  string         `json:"restaurant_name"`
	CustomerName    string         `json:"customer_name"`
	Email           string         `json:"email,omitempty"`
	Phone           string         `json:"phone"`
	Date            string         `json:"date"`
	Time            string         `json:"time"`
	Guests          int            `json:"guests"`
	TablePreference string         `json:"table_preference"`
	IncludePreOrder bool           `json:"include_pre_order"`
	PreOrder        []PreOrderItem `json:"pre_order"`
	PreOrderTotal   int            `json:"pre_order_total"`
	ReservationFee  int            `json:"reservation_fee"`
	TotalAmount     int            `json:"total_amount"`
	Status          string         `json:"status"`
	Step            string         `json:"step"`
	CreatedAt       time.Time      `json:"created_at"`
	ConfirmedAt     *time.Time     `json:"confirmed_at,omitempty"`
}

type Options struct {
	TimeSlots        []string          `json:"time_slots"`
	TablePreferences []TablePreference `json:"table_preferences"`
	MinGuests        int               `json:"min_guests"`
	MaxGuests        int               `json:"max_guests"`
	DefaultGuests    int               `json:"default_guests"`
}

// RestaurantInfo is the part of a menu-svc restaurant a reservation needs.
type RestaurantInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ThemeColor string `json:"theme_color"`
}

// CartSnapshot mirrors the menu-svc cart summary used as a pre-order.
type CartSnapshot struct {
	CartID       string         `json:"cart_id"`
	RestaurantID string         `json:"restaurant_id"`
	Items        []PreOrderItem `json:"items"`
	Subtotal     int            `json:"subtotal"`
}

type ReservationEvent struct {
	Type           string    `json:"type"`
	ReservationID  string    `json:"reservation_id"`
	RestaurantID   string    `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	CustomerName   string    `json:"customer_name"`
	Phone          string    `json:"phone"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Guests         int       `json:"guests"`
	TotalAmount    int       `json:"total_amount"`
	Timestamp      time.Time `json:"timestamp"`
}
