// Package pricing computes the total charge for a stay from the
// room's tariff. Calculations are pure: the same tariff, window and
// guest count always produce the same total.
package pricing

import (
	"fmt"
	"math"

	"roomly/pkg/model"
	"roomly/pkg/timeslot"

	bookingerrors "roomly/internal/bookings/errors"
)

// BillableHours returns the hours the guest is charged for. Stays
// shorter than the tariff's base duration still pay for the full base
// block; longer stays are billed on elapsed time, fractional half
// hours included.
func BillableHours(tariff model.RoomTariff, window model.StayWindow) float64 {
	elapsed := window.Duration().Hours()
	base := float64(tariff.BaseDurationHours)
	return math.Max(base, elapsed)
}

// WeekendRate reports whether the stay is billed at the weekend
// extra-hour rate. Only the checkin instant decides; a Friday checkin
// running into Saturday stays on the weekday rate, and a Sunday
// checkin running into Monday stays on the weekend rate.
func WeekendRate(window model.StayWindow) bool {
	return timeslot.IsWeekend(window.Checkin)
}

// Total prices a stay for the given guest count.
//
//	total = base price
//	      + (billable hours - base duration) * extra hour rate
//	      + max(0, guests - included capacity) * extra person price
//
// The stay window must already have passed ValidateStayWindow; Total
// only guards against inputs no caller should produce.
func Total(tariff model.RoomTariff, window model.StayWindow, guests int) (int64, error) {
	if guests < 1 {
		return 0, fmt.Errorf("guests=%d: %w", guests, bookingerrors.ErrInvalidGuestCount)
	}
	if window.Checkout.Before(window.Checkin) {
		return 0, fmt.Errorf("checkin %s after checkout %s: %w",
			window.Checkin.Format("2006-01-02 15:04"),
			window.Checkout.Format("2006-01-02 15:04"),
			bookingerrors.ErrWindowInverted,
		)
	}

	hours := BillableHours(tariff, window)
	total := float64(tariff.BasePrice)

	if extra := hours - float64(tariff.BaseDurationHours); extra > 0 {
		rate := tariff.ExtraHourPrice
		if WeekendRate(window) {
			rate = tariff.ExtraHourWeekendPrice
		}
		total += extra * float64(rate)
	}

	if surcharged := guests - tariff.CapacityBeforeSurcharge; surcharged > 0 {
		total += float64(surcharged) * float64(tariff.ExtraPersonPrice)
	}

	return int64(math.Round(total)), nil
}
