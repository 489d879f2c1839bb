package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomly/pkg/model"

	bookingerrors "roomly/internal/bookings/errors"
)

// standardTariff matches the tariff every room currently carries.
var standardTariff = model.RoomTariff{
	BasePrice:               150000,
	BaseDurationHours:       2,
	ExtraHourPrice:          50000,
	ExtraHourWeekendPrice:   80000,
	ExtraPersonPrice:        100000,
	CapacityBeforeSurcharge: 2,
}

func stay(t *testing.T, checkin, checkout string) model.StayWindow {
	t.Helper()
	ci, err := time.Parse("2006-01-02 15:04", checkin)
	require.NoError(t, err)
	co, err := time.Parse("2006-01-02 15:04", checkout)
	require.NoError(t, err)
	return model.StayWindow{Checkin: ci, Checkout: co}
}

func TestTotal(t *testing.T) {
	// 2025-03-10 is a Monday, 2025-03-15 a Saturday, 2025-03-16 a Sunday.
	tests := []struct {
		name     string
		checkin  string
		checkout string
		guests   int
		want     int64
	}{
		{
			name:     "weekday base block two guests",
			checkin:  "2025-03-10 14:00",
			checkout: "2025-03-10 16:00",
			guests:   2,
			want:     150000,
		},
		{
			name:     "weekday three hours",
			checkin:  "2025-03-10 10:00",
			checkout: "2025-03-10 13:00",
			guests:   2,
			want:     200000, // 150000 + 1h * 50000
		},
		{
			name:     "saturday four hours four guests",
			checkin:  "2025-03-15 10:00",
			checkout: "2025-03-15 14:00",
			guests:   4,
			want:     510000, // 150000 + 2h * 80000 + 2 * 100000
		},
		{
			name:     "monday evening into tuesday morning",
			checkin:  "2025-03-10 20:00",
			checkout: "2025-03-11 07:00",
			guests:   2,
			want:     600000, // 150000 + 9h * 50000
		},
		{
			name:     "weekday five hours",
			checkin:  "2025-03-10 14:00",
			checkout: "2025-03-10 19:00",
			guests:   2,
			want:     300000, // 150000 + 3h * 50000
		},
		{
			name:     "weekend checkin extra hours with third guest",
			checkin:  "2025-03-15 14:00",
			checkout: "2025-03-15 17:00",
			guests:   3,
			want:     330000, // 150000 + 1h * 80000 + 1 * 100000
		},
		{
			name:     "fractional half hour billed",
			checkin:  "2025-03-10 14:00",
			checkout: "2025-03-10 16:30",
			guests:   2,
			want:     175000, // 150000 + 0.5h * 50000
		},
		{
			name:     "single guest pays base",
			checkin:  "2025-03-10 14:00",
			checkout: "2025-03-10 16:00",
			guests:   1,
			want:     150000,
		},
		{
			name:     "five guests add three surcharges",
			checkin:  "2025-03-10 14:00",
			checkout: "2025-03-10 16:00",
			guests:   5,
			want:     450000, // 150000 + 3 * 100000
		},
		{
			name:     "overnight billed on elapsed hours",
			checkin:  "2025-03-10 22:00",
			checkout: "2025-03-11 08:00",
			guests:   2,
			want:     550000, // 150000 + 8h * 50000
		},
		{
			name:     "friday checkin into saturday keeps weekday rate",
			checkin:  "2025-03-14 22:00",
			checkout: "2025-03-15 02:00",
			guests:   2,
			want:     250000, // 150000 + 2h * 50000
		},
		{
			name:     "sunday checkin into monday keeps weekend rate",
			checkin:  "2025-03-16 22:00",
			checkout: "2025-03-17 02:00",
			guests:   2,
			want:     310000, // 150000 + 2h * 80000
		},
		{
			name:     "full day stay",
			checkin:  "2025-03-10 14:00",
			checkout: "2025-03-11 14:00",
			guests:   2,
			want:     1250000, // 150000 + 22h * 50000
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Total(standardTariff, stay(t, tt.checkin, tt.checkout), tt.guests)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTotalZeroDurationPaysBase(t *testing.T) {
	// Degenerate but not inverted: checkin equals checkout. The base
	// block still applies.
	got, err := Total(standardTariff, stay(t, "2025-03-10 14:00", "2025-03-10 14:00"), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(150000), got)
}

func TestTotalGuards(t *testing.T) {
	t.Run("zero guests", func(t *testing.T) {
		_, err := Total(standardTariff, stay(t, "2025-03-10 14:00", "2025-03-10 16:00"), 0)
		assert.ErrorIs(t, err, bookingerrors.ErrInvalidGuestCount)
	})

	t.Run("negative guests", func(t *testing.T) {
		_, err := Total(standardTariff, stay(t, "2025-03-10 14:00", "2025-03-10 16:00"), -3)
		assert.ErrorIs(t, err, bookingerrors.ErrInvalidGuestCount)
	})

	t.Run("inverted window", func(t *testing.T) {
		_, err := Total(standardTariff, stay(t, "2025-03-11 14:00", "2025-03-10 16:00"), 2)
		assert.ErrorIs(t, err, bookingerrors.ErrWindowInverted)
	})
}

func TestTotalMonotonicInDuration(t *testing.T) {
	checkin := "2025-03-10 14:00"
	checkouts := []string{
		"2025-03-10 15:00",
		"2025-03-10 16:00",
		"2025-03-10 16:30",
		"2025-03-10 19:00",
		"2025-03-11 14:00",
	}

	var prev int64
	for _, checkout := range checkouts {
		got, err := Total(standardTariff, stay(t, checkin, checkout), 2)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, prev, "longer stay %s priced below shorter one", checkout)
		prev = got
	}
}

func TestBillableHours(t *testing.T) {
	tests := []struct {
		name     string
		checkin  string
		checkout string
		want     float64
	}{
		{
			name:     "short stay floors at base duration",
			checkin:  "2025-03-10 14:00",
			checkout: "2025-03-10 15:00",
			want:     2,
		},
		{
			name:     "exact base block",
			checkin:  "2025-03-10 14:00",
			checkout: "2025-03-10 16:00",
			want:     2,
		},
		{
			name:     "half hour over",
			checkin:  "2025-03-10 14:00",
			checkout: "2025-03-10 16:30",
			want:     2.5,
		},
		{
			name:     "overnight",
			checkin:  "2025-03-10 22:00",
			checkout: "2025-03-11 08:00",
			want:     10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BillableHours(standardTariff, stay(t, tt.checkin, tt.checkout))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeekendRate(t *testing.T) {
	assert.False(t, WeekendRate(stay(t, "2025-03-14 22:00", "2025-03-15 02:00")), "friday checkin")
	assert.True(t, WeekendRate(stay(t, "2025-03-15 10:00", "2025-03-15 12:00")), "saturday checkin")
	assert.True(t, WeekendRate(stay(t, "2025-03-16 22:00", "2025-03-17 02:00")), "sunday checkin")
	assert.False(t, WeekendRate(stay(t, "2025-03-10 10:00", "2025-03-10 12:00")), "monday checkin")
}
