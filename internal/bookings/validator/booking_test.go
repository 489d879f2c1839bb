package validator

import (
	"errors"
	"testing"
	"time"

	"roomly/pkg/logger"
	"roomly/pkg/model"

	bookingerrors "roomly/internal/bookings/errors"
)

func newTestValidator(t *testing.T) *BookingValidator {
	t.Helper()
	log := logger.New(logger.Config{
		Level:     "info",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
	return NewBookingValidator(log)
}

func window(t *testing.T, checkin, checkout string) model.StayWindow {
	t.Helper()
	ci, err := time.Parse("2006-01-02 15:04", checkin)
	if err != nil {
		t.Fatalf("bad checkin %q: %v", checkin, err)
	}
	co, err := time.Parse("2006-01-02 15:04", checkout)
	if err != nil {
		t.Fatalf("bad checkout %q: %v", checkout, err)
	}
	return model.StayWindow{Checkin: ci, Checkout: co}
}

func TestValidateStayWindow(t *testing.T) {
	v := newTestValidator(t)
	minStay := 2 * time.Hour

	tests := []struct {
		name      string
		checkin   string
		checkout  string
		wantError bool
	}{
		{
			name:      "same day exactly minimum",
			checkin:   "2025-03-10 14:00",
			checkout:  "2025-03-10 16:00",
			wantError: false,
		},
		{
			name:      "same day above minimum",
			checkin:   "2025-03-10 09:00",
			checkout:  "2025-03-10 17:30",
			wantError: false,
		},
		{
			name:      "same day half hour short",
			checkin:   "2025-03-10 14:00",
			checkout:  "2025-03-10 15:30",
			wantError: true,
		},
		{
			name:      "same day single slot",
			checkin:   "2025-03-10 14:00",
			checkout:  "2025-03-10 14:30",
			wantError: true,
		},
		{
			name:      "same day checkout before checkin",
			checkin:   "2025-03-10 14:00",
			checkout:  "2025-03-10 11:00",
			wantError: true,
		},
		{
			name:      "overnight with earlier clock time",
			checkin:   "2025-03-10 22:00",
			checkout:  "2025-03-11 08:00",
			wantError: false,
		},
		{
			name:      "next day short clock span",
			checkin:   "2025-03-10 23:30",
			checkout:  "2025-03-11 00:30",
			wantError: false,
		},
		{
			name:      "multi-day stay",
			checkin:   "2025-03-10 14:00",
			checkout:  "2025-03-14 10:00",
			wantError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStayWindow(window(t, tt.checkin, tt.checkout), minStay)
			if tt.wantError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStayWindowShortStayIsValidationError(t *testing.T) {
	v := newTestValidator(t)

	err := v.ValidateStayWindow(window(t, "2025-03-10 14:00", "2025-03-10 15:00"), 2*time.Hour)

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T: %v", err, err)
	}
	if verrs[0].Field != "CheckoutSlot" {
		t.Errorf("error field = %q, want CheckoutSlot", verrs[0].Field)
	}
}

func TestValidateStayWindowInvertedDatesIsContractError(t *testing.T) {
	v := newTestValidator(t)

	err := v.ValidateStayWindow(window(t, "2025-03-10 14:00", "2025-03-09 16:00"), 2*time.Hour)

	if !errors.Is(err, bookingerrors.ErrWindowInverted) {
		t.Fatalf("expected ErrWindowInverted, got %v", err)
	}

	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		t.Error("inverted dates must not surface as guest-facing validation errors")
	}
}

func TestValidateBookingFields(t *testing.T) {
	v := newTestValidator(t)

	valid := func() *model.Booking {
		return &model.Booking{
			FacilityID:   1,
			RoomID:       3,
			CheckinDate:  "2025-03-10",
			CheckinSlot:  "2:00 PM",
			CheckoutDate: "2025-03-10",
			CheckoutSlot: "5:00 PM",
			Guests:       2,
			GuestName:    "Trần Văn An",
			GuestPhone:   "+84912345678",
		}
	}

	if err := v.Validate(valid()); err != nil {
		t.Fatalf("valid booking rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*model.Booking)
	}{
		{
			name:   "missing facility",
			mutate: func(b *model.Booking) { b.FacilityID = 0 },
		},
		{
			name:   "bad date layout",
			mutate: func(b *model.Booking) { b.CheckinDate = "10/03/2025" },
		},
		{
			name:   "off-grid slot",
			mutate: func(b *model.Booking) { b.CheckinSlot = "2:15 PM" },
		},
		{
			name:   "zero guests",
			mutate: func(b *model.Booking) { b.Guests = 0 },
		},
		{
			name:   "phone not E.164",
			mutate: func(b *model.Booking) { b.GuestPhone = "0912345678" },
		},
		{
			name:   "name too short",
			mutate: func(b *model.Booking) { b.GuestName = "A" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid()
			tt.mutate(b)
			if err := v.Validate(b); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
