package domain

import "errors"

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrDuplicateMenuItem  = errors.New("menu item already exists")
	ErrInvalidTable       = errors.New("invalid table number")
	ErrCartNotFound       = errors.New("cart not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrPremiumItem        = errors.New("premium items are preview only")
	ErrNotPremium         = errors.New("menu item has no premium preview")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidTransition  = errors.New("invalid order status transition")
)

// ValidationError reports a rejected field in a request payload.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}
