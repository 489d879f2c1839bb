// Package timeslot models the half-hour booking grid. A day has 48
// slots labelled in 12-hour clock form, "12:00 AM" through "11:30 PM",
// matching what the reservation wizard shows guests.
package timeslot

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SlotsPerDay is the number of half-hour slots in one calendar day.
const SlotsPerDay = 48

var grid = buildGrid()

func buildGrid() []string {
	labels := make([]string, 0, SlotsPerDay)
	for hour := 0; hour < 24; hour++ {
		display := hour % 12
		if display == 0 {
			display = 12
		}
		period := "AM"
		if hour >= 12 {
			period = "PM"
		}
		labels = append(labels, fmt.Sprintf("%d:00 %s", display, period))
		labels = append(labels, fmt.Sprintf("%d:30 %s", display, period))
	}
	return labels
}

// Grid returns all slot labels in chronological order. The returned
// slice is a copy; callers may modify it.
func Grid() []string {
	out := make([]string, len(grid))
	copy(out, grid)
	return out
}

// IsValid reports whether label is one of the 48 grid labels.
func IsValid(label string) bool {
	_, _, err := Parse(label)
	return err == nil
}

// Parse converts a slot label into its 24-hour clock components.
// Labels outside the grid return an error; bookings only ever carry
// grid labels, so a failure here means a broken integration.
func Parse(label string) (hour, minute int, err error) {
	parts := strings.Split(label, " ")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed time slot %q", label)
	}

	clock, period := parts[0], parts[1]
	if period != "AM" && period != "PM" {
		return 0, 0, fmt.Errorf("malformed time slot %q", label)
	}

	hm := strings.Split(clock, ":")
	if len(hm) != 2 {
		return 0, 0, fmt.Errorf("malformed time slot %q", label)
	}

	hour, err = strconv.Atoi(hm[0])
	if err != nil || hour < 1 || hour > 12 {
		return 0, 0, fmt.Errorf("time slot %q has hour outside 1-12", label)
	}

	minute, err = strconv.Atoi(hm[1])
	if err != nil || (minute != 0 && minute != 30) {
		return 0, 0, fmt.Errorf("time slot %q is not on a half-hour boundary", label)
	}

	if period == "PM" && hour != 12 {
		hour += 12
	}
	if period == "AM" && hour == 12 {
		hour = 0
	}

	return hour, minute, nil
}

// Combine anchors a slot label on a calendar date in loc, producing
// the instant a stay begins or ends.
func Combine(date time.Time, label string, loc *time.Location) (time.Time, error) {
	hour, minute, err := Parse(label)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, loc), nil
}

// IsWeekend reports whether t falls on a Saturday or Sunday. Pricing
// picks the weekend rate from the checkin instant alone.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
