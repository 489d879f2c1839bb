package model

import (
	"time"
)

// StayWindow is a resolved checkin/checkout pair in the facility's
// local timezone. Callers construct it from a calendar date plus a
// half-hour slot label; see pkg/timeslot.
type StayWindow struct {
	Checkin  time.Time `json:"checkin"`
	Checkout time.Time `json:"checkout"`
}

// Duration returns the elapsed stay time. Negative when the window is
// inverted, which callers treat as a contract violation.
func (w StayWindow) Duration() time.Duration {
	return w.Checkout.Sub(w.Checkin)
}

// SameDay reports whether checkin and checkout fall on the same
// calendar day in the checkin's location.
func (w StayWindow) SameDay() bool {
	y1, m1, d1 := w.Checkin.Date()
	y2, m2, d2 := w.Checkout.In(w.Checkin.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// QuoteRequest asks for the price of a stay. Dates use the 2006-01-02
// layout; slots are half-hour labels such as "2:00 PM".
type QuoteRequest struct {
	FacilityID   int    `json:"facility_id" bson:"facility_id" validate:"required,min=1"`
	RoomID       int    `json:"room_id" bson:"room_id" validate:"required,min=1"`
	CheckinDate  string `json:"checkin_date" bson:"checkin_date" validate:"required,datetime=2006-01-02"`
	CheckinSlot  string `json:"checkin_slot" bson:"checkin_slot" validate:"required,time_slot"`
	CheckoutDate string `json:"checkout_date" bson:"checkout_date" validate:"required,datetime=2006-01-02"`
	CheckoutSlot string `json:"checkout_slot" bson:"checkout_slot" validate:"required,time_slot"`
	Guests       int    `json:"guests" bson:"guests" validate:"required,min=1,max=50"`
}

// RoomQuoteRequest asks for per-room prices across a whole facility,
// so guests can compare rooms before picking one.
type RoomQuoteRequest struct {
	FacilityID   int    `json:"facility_id" validate:"required,min=1"`
	CheckinDate  string `json:"checkin_date" validate:"required,datetime=2006-01-02"`
	CheckinSlot  string `json:"checkin_slot" validate:"required,time_slot"`
	CheckoutDate string `json:"checkout_date" validate:"required,datetime=2006-01-02"`
	CheckoutSlot string `json:"checkout_slot" validate:"required,time_slot"`
	Guests       int    `json:"guests" validate:"required,min=1,max=50"`
}

// Quote is a priced stay for a single room.
type Quote struct {
	FacilityID    int       `json:"facility_id"`
	RoomID        int       `json:"room_id"`
	RoomName      string    `json:"room_name"`
	Checkin       time.Time `json:"checkin"`
	Checkout      time.Time `json:"checkout"`
	BillableHours float64   `json:"billable_hours"`
	WeekendRate   bool      `json:"weekend_rate"`
	Total         int64     `json:"total"`
	TotalDisplay  string    `json:"total_display"`
}

// RoomQuote pairs a room with its price for a requested stay.
type RoomQuote struct {
	Room         *Room  `json:"room"`
	Total        int64  `json:"total"`
	TotalDisplay string `json:"total_display"`
}

// Booking is a guest's reservation request as submitted through the
// wizard. It carries the stay fields of a QuoteRequest plus contact
// details; GuestPhone is normalized to E.164 before validation.
type Booking struct {
	FacilityID   int    `json:"facility_id" bson:"facility_id" validate:"required,min=1"`
	RoomID       int    `json:"room_id" bson:"room_id" validate:"required,min=1"`
	CheckinDate  string `json:"checkin_date" bson:"checkin_date" validate:"required,datetime=2006-01-02"`
	CheckinSlot  string `json:"checkin_slot" bson:"checkin_slot" validate:"required,time_slot"`
	CheckoutDate string `json:"checkout_date" bson:"checkout_date" validate:"required,datetime=2006-01-02"`
	CheckoutSlot string `json:"checkout_slot" bson:"checkout_slot" validate:"required,time_slot"`
	Guests       int    `json:"guests" bson:"guests" validate:"required,min=1,max=50"`
	GuestName    string `json:"guest_name" bson:"guest_name" validate:"required,min=2,max=100"`
	GuestPhone   string `json:"guest_phone" bson:"guest_phone" validate:"required,e164"`
	Notes        string `json:"notes,omitempty" bson:"notes,omitempty" validate:"omitempty,max=500"`
}

// QuoteRequest projects the pricing-relevant fields of a booking.
func (b *Booking) QuoteRequest() *QuoteRequest {
	return &QuoteRequest{
		FacilityID:   b.FacilityID,
		RoomID:       b.RoomID,
		CheckinDate:  b.CheckinDate,
		CheckinSlot:  b.CheckinSlot,
		CheckoutDate: b.CheckoutDate,
		CheckoutSlot: b.CheckoutSlot,
		Guests:       b.Guests,
	}
}

// Confirmation is returned to the guest after a booking is accepted
// into the submission pipeline.
type Confirmation struct {
	Reference    string    `json:"reference"`
	ManageToken  string    `json:"manage_token,omitempty"`
	FacilityName string    `json:"facility_name"`
	RoomName     string    `json:"room_name"`
	Checkin      time.Time `json:"checkin"`
	Checkout     time.Time `json:"checkout"`
	Guests       int       `json:"guests"`
	Total        int64     `json:"total"`
	TotalDisplay string    `json:"total_display"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// BookingSubmitted is the event published for every accepted booking.
// Downstream consumers (confirmation dispatch, reporting) key off it.
type BookingSubmitted struct {
	Reference    string    `json:"reference"`
	FacilityID   int       `json:"facility_id"`
	FacilityName string    `json:"facility_name"`
	RoomID       int       `json:"room_id"`
	RoomName     string    `json:"room_name"`
	Checkin      time.Time `json:"checkin"`
	Checkout     time.Time `json:"checkout"`
	Guests       int       `json:"guests"`
	GuestName    string    `json:"guest_name"`
	GuestPhone   string    `json:"guest_phone"`
	Notes        string    `json:"notes,omitempty"`
	Total        int64     `json:"total"`
	TotalDisplay string    `json:"total_display"`
	SubmittedAt  time.Time `json:"submitted_at"`
}
