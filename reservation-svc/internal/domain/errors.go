package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrRestaurantNotFound   = errors.New("restaurant not found")
	ErrCartNotFound         = errors.New("pre-order cart not found")
	ErrPreOrderMismatch     = errors.New("pre-order cart belongs to another restaurant")
	ErrAlreadyPaid          = errors.New("reservation is already confirmed")
	ErrReservationCancelled = errors.New("reservation has been cancelled")
	ErrPaymentInProgress    = errors.New("payment is already being processed")
)

// ValidationError carries one message per rejected form field.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e.Fields[name])
	}
	return "invalid reservation: " + strings.Join(parts, "; ")
}
