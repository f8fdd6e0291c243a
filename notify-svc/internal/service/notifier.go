package service

import (
	"context"
	"fmt"

	"menuverse/notify-svc/internal/domain"

	"go.uber.org/zap"
)

const ChannelWhatsApp = "whatsapp"

// WhatsAppNotifier simulates the WhatsApp gateway. Messages are only logged.
type WhatsAppNotifier struct {
	Logger *zap.Logger
}

func NewWhatsAppNotifier(logger *zap.Logger) *WhatsAppNotifier {
	return &WhatsAppNotifier{Logger: logger}
}

func (n *WhatsAppNotifier) Send(_ context.Context, notification domain.Notification) error {
	if notification.Phone == "" {
		return fmt.Errorf("reservation %s: no phone number", notification.ReservationID)
	}
	n.Logger.Info(notification.Message,
		zap.String("channel", notification.Channel),
		zap.String("reservation_id", notification.ReservationID),
		zap.String("restaurant_id", notification.RestaurantID))
	return nil
}

func ConfirmationMessage(phone, date, time string) string {
	return fmt.Sprintf("WhatsApp notification sent to %s\nReservation confirmed for %s at %s", phone, date, time)
}
