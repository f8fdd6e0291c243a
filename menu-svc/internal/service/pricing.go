package service

import "menuverse/menu-svc/internal/domain"

const (
	DeliveryFee = 40
	taxPercent  = 5
)

// Taxes is 5% of the subtotal rounded half up.
func Taxes(subtotal int) int {
	return (subtotal*taxPercent + 50) / 100
}

// Summarize prices a cart. Delivery is only charged for a non-empty cart.
func Summarize(cart *domain.Cart) *domain.CartSummary {
	summary := &domain.CartSummary{
		CartID:       cart.ID,
		RestaurantID: cart.RestaurantID,
		TableNumber:  cart.TableNumber,
		Items:        cart.Items,
	}
	if summary.Items == nil {
		summary.Items = []domain.CartItem{}
	}

	for _, item := range summary.Items {
		summary.ItemsCount += item.Quantity
		summary.Subtotal += item.Price * item.Quantity
	}
	if summary.ItemsCount > 0 {
		summary.DeliveryFee = DeliveryFee
	}
	summary.Taxes = Taxes(summary.Subtotal)
	summary.Total = summary.Subtotal + summary.DeliveryFee + summary.Taxes
	return summary
}
