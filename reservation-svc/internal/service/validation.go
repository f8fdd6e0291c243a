package service

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"menuverse/reservation-svc/internal/domain"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

func newValidator(now func() time.Time) *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
		return IsTimeSlot(fl.Field().String())
	})
	_ = v.RegisterValidation("notpast", func(fl validator.FieldLevel) bool {
		date, err := time.Parse(dateLayout, fl.Field().String())
		if err != nil {
			return false
		}
		return !date.Before(today(now()))
	})
	return v
}

func today(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func IsTimeSlot(slot string) bool {
	for _, s := range domain.TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := &domain.ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		verr.Fields[fe.Field()] = reason(fe)
	}
	return verr
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_if":
		return "is required when include_pre_order is set"
	case "email":
		return "must be a valid email address"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "notpast":
		return "cannot be in the past"
	case "timeslot":
		return "must be one of the available time slots"
	case "min", "max":
		return "must be between 1 and 8"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}
