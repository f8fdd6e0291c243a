package domain

import (
	"errors"
	"time"
)

const (
	PeriodToday = "today"
	PeriodAll   = "all"
)

var ErrInvalidPeriod = errors.New("period must be today or all")

type ItemScore struct {
	MenuItemID   string `json:"menu_item_id"`
	RestaurantID string `json:"restaurant_id"`
	Quantity     int    `json:"quantity"`
}

type Notification struct {
	ReservationID string    `json:"reservation_id"`
	RestaurantID  string    `json:"restaurant_id"`
	Channel       string    `json:"channel"`
	Phone         string    `json:"phone"`
	Message       string    `json:"message"`
	SentAt        time.Time `json:"sent_at"`
}

type Overview struct {
	RestaurantID        string         `json:"restaurant_id"`
	TotalOrders         int            `json:"total_orders"`
	Revenue             int            `json:"revenue"`
	Reservations        int            `json:"reservations"`
	MostPopularToday    *ItemScore     `json:"most_popular_today,omitempty"`
	TopItems            []ItemScore    `json:"top_items"`
	RecentNotifications []Notification `json:"recent_notifications"`
}
