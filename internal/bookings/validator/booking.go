package validator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"roomly/pkg/logger"
	"roomly/pkg/model"
	"roomly/pkg/timeslot"

	bookingerrors "roomly/internal/bookings/errors"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v := validator.New()

	if err := v.RegisterValidation("time_slot", validateTimeSlot); err != nil {
		log.Fatal("Failed to register 'time_slot' validator",
			"error", err,
		)
	}

	log.Info("Booking validator initialized successfully")

	return &BookingValidator{
		validate: v,
		logger:   log,
	}
}

func validateTimeSlot(fl validator.FieldLevel) bool {
	return timeslot.IsValid(fl.Field().String())
}

// Validate checks a submitted booking's field-level constraints.
// Stay-window rules need resolved instants and the room's tariff, so
// they live in ValidateStayWindow and run later in the service.
func (v *BookingValidator) Validate(booking *model.Booking) error {
	if err := v.validate.Struct(booking); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	return nil
}

// ValidateQuote checks a single-room quote request.
func (v *BookingValidator) ValidateQuote(req *model.QuoteRequest) error {
	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	return nil
}

// ValidateRoomQuote checks a facility-wide quote request.
func (v *BookingValidator) ValidateRoomQuote(req *model.RoomQuoteRequest) error {
	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	return nil
}

// ValidateStayWindow enforces the stay-window rules on resolved
// instants. Cross-day stays are always acceptable, whatever their
// clock times. Same-day stays must last at least minStay. A checkout
// calendar day before the checkin day cannot be produced by the
// wizard, so it is reported as a contract violation rather than a
// guest-facing validation error.
func (v *BookingValidator) ValidateStayWindow(window model.StayWindow, minStay time.Duration) error {
	if window.SameDay() {
		if window.Duration() < minStay {
			return ValidationErrors{
				ValidationError{
					Field:   "CheckoutSlot",
					Message: fmt.Sprintf("same-day checkout must be at least %s after checkin", formatStay(minStay)),
				},
			}
		}
		return nil
	}

	if window.Checkout.Before(window.Checkin) {
		return fmt.Errorf("checkin %s, checkout %s: %w",
			window.Checkin.Format("2006-01-02"),
			window.Checkout.Format("2006-01-02"),
			bookingerrors.ErrWindowInverted,
		)
	}

	return nil
}

func formatStay(d time.Duration) string {
	if d%time.Hour == 0 {
		hours := int(d / time.Hour)
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	return d.String()
}

func (v *BookingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "datetime":
			message = fmt.Sprintf("%s must be a date in YYYY-MM-DD format", err.Field())
		case "time_slot":
			message = fmt.Sprintf("%s must be a half-hour slot such as \"2:00 PM\"", err.Field())
		case "e164":
			message = fmt.Sprintf("%s must be in E.164 format (e.g., +84912345678)", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
