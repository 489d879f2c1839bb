package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/kafka"
	"roomly/pkg/logger"
	"roomly/pkg/model"
	"roomly/pkg/sealer"

	"roomly/internal/bookings/validator"
	"roomly/internal/catalog/repository"
)

type mockPublisher struct {
	published []kafka.Message
	err       error
}

func (m *mockPublisher) Publish(ctx context.Context, msg kafka.Message) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, msg)
	return nil
}

func newTestService(t *testing.T, publisher Publisher) BookingService {
	t.Helper()

	log := logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})

	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)

	cfg := &config.Config{
		Log:           log,
		Location:      loc,
		MinStayHours:  2,
		BookingsTopic: "bookings.submitted",
	}

	return NewBookingService(
		repository.NewSeededCatalogRepository(),
		validator.NewBookingValidator(log),
		publisher,
		cfg,
	)
}

func validBooking() *model.Booking {
	return &model.Booking{
		FacilityID:   1,
		RoomID:       1,
		CheckinDate:  "2025-03-10", // Monday
		CheckinSlot:  "2:00 PM",
		CheckoutDate: "2025-03-10",
		CheckoutSlot: "7:00 PM",
		Guests:       2,
		GuestName:    "Trần Văn An",
		GuestPhone:   "0912345678",
		Notes:        "  cần chỗ  đỗ xe  ",
	}
}

func TestFacilitiesAndRooms(t *testing.T) {
	svc := newTestService(t, &mockPublisher{})
	ctx := context.Background()

	facilities, err := svc.Facilities(ctx)
	require.NoError(t, err)
	assert.Len(t, facilities, 3)

	rooms, err := svc.Rooms(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, rooms, 9)

	_, err = svc.Rooms(ctx, 42)
	appErr := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestQuoteWeekdayStay(t *testing.T) {
	svc := newTestService(t, &mockPublisher{})

	quote, err := svc.Quote(context.Background(), &model.QuoteRequest{
		FacilityID:   1,
		RoomID:       1,
		CheckinDate:  "2025-03-10",
		CheckinSlot:  "2:00 PM",
		CheckoutDate: "2025-03-10",
		CheckoutSlot: "7:00 PM",
		Guests:       2,
	})
	require.NoError(t, err)

	assert.Equal(t, "Aurora", quote.RoomName)
	assert.Equal(t, int64(300000), quote.Total) // 150000 + 3h * 50000
	assert.Equal(t, "300.000 ₫", quote.TotalDisplay)
	assert.Equal(t, 5.0, quote.BillableHours)
	assert.False(t, quote.WeekendRate)
}

func TestQuoteWeekendCheckinWithExtraGuest(t *testing.T) {
	svc := newTestService(t, &mockPublisher{})

	quote, err := svc.Quote(context.Background(), &model.QuoteRequest{
		FacilityID:   2,
		RoomID:       4,
		CheckinDate:  "2025-03-15", // Saturday
		CheckinSlot:  "2:00 PM",
		CheckoutDate: "2025-03-15",
		CheckoutSlot: "5:00 PM",
		Guests:       3,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(330000), quote.Total) // 150000 + 1h * 80000 + 100000
	assert.True(t, quote.WeekendRate)
}

func TestQuoteShortSameDayStay(t *testing.T) {
	svc := newTestService(t, &mockPublisher{})

	_, err := svc.Quote(context.Background(), &model.QuoteRequest{
		FacilityID:   1,
		RoomID:       1,
		CheckinDate:  "2025-03-10",
		CheckinSlot:  "2:00 PM",
		CheckoutDate: "2025-03-10",
		CheckoutSlot: "3:30 PM",
		Guests:       2,
	})

	appErr := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeInvalidWindow, appErr.Code)
}

func TestQuoteOvernightShortClockSpan(t *testing.T) {
	svc := newTestService(t, &mockPublisher{})

	quote, err := svc.Quote(context.Background(), &model.QuoteRequest{
		FacilityID:   1,
		RoomID:       1,
		CheckinDate:  "2025-03-10",
		CheckinSlot:  "11:30 PM",
		CheckoutDate: "2025-03-11",
		CheckoutSlot: "12:30 AM",
		Guests:       2,
	})
	require.NoError(t, err)

	// One elapsed hour still pays the base block.
	assert.Equal(t, int64(150000), quote.Total)
}

func TestQuoteInvertedDatesIsContractError(t *testing.T) {
	svc := newTestService(t, &mockPublisher{})

	_, err := svc.Quote(context.Background(), &model.QuoteRequest{
		FacilityID:   1,
		RoomID:       1,
		CheckinDate:  "2025-03-10",
		CheckinSlot:  "2:00 PM",
		CheckoutDate: "2025-03-09",
		CheckoutSlot: "5:00 PM",
		Guests:       2,
	})

	appErr := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeContract, appErr.Code)
}

func TestQuoteRooms(t *testing.T) {
	svc := newTestService(t, &mockPublisher{})

	quotes, err := svc.QuoteRooms(context.Background(), &model.RoomQuoteRequest{
		FacilityID:   2,
		CheckinDate:  "2025-03-10",
		CheckinSlot:  "2:00 PM",
		CheckoutDate: "2025-03-10",
		CheckoutSlot: "4:00 PM",
		Guests:       2,
	})
	require.NoError(t, err)
	require.Len(t, quotes, 6)

	for _, q := range quotes {
		assert.Equal(t, int64(150000), q.Total)
		assert.Equal(t, "150.000 ₫", q.TotalDisplay)
		assert.Equal(t, 2, q.Room.FacilityID)
	}
}

func TestSubmitPublishesEvent(t *testing.T) {
	pub := &mockPublisher{}
	svc := newTestService(t, pub)

	confirmation, err := svc.Submit(context.Background(), validBooking())
	require.NoError(t, err)

	assert.NotEmpty(t, confirmation.Reference)
	reference, phone, err := sealer.ParseManageToken(confirmation.ManageToken)
	require.NoError(t, err)
	assert.Equal(t, confirmation.Reference, reference)
	assert.Equal(t, "+84912345678", phone)
	assert.Equal(t, "Ngọc Thụy", confirmation.FacilityName)
	assert.Equal(t, "Aurora", confirmation.RoomName)
	assert.Equal(t, int64(300000), confirmation.Total)

	require.Len(t, pub.published, 1)
	msg := pub.published[0]
	assert.Equal(t, "bookings.submitted", msg.Topic)
	assert.Equal(t, kafka.EventBookingSubmitted, msg.GetEventType())
	assert.Equal(t, "+84912345678", msg.Key, "partition key is the normalized guest phone")

	var event model.BookingSubmitted
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, confirmation.Reference, event.Reference)
	assert.Equal(t, "cần chỗ đỗ xe", event.Notes, "notes are whitespace-collapsed")
	assert.Equal(t, "+84912345678", event.GuestPhone)
	assert.Equal(t, int64(300000), event.Total)
}

func TestSubmitValidationFailure(t *testing.T) {
	pub := &mockPublisher{}
	svc := newTestService(t, pub)

	booking := validBooking()
	booking.GuestPhone = "not a phone"

	_, err := svc.Submit(context.Background(), booking)

	appErr := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
	assert.Empty(t, pub.published, "nothing may reach the pipeline on validation failure")
}

func TestSubmitUnknownRoom(t *testing.T) {
	svc := newTestService(t, &mockPublisher{})

	booking := validBooking()
	booking.RoomID = 99

	_, err := svc.Submit(context.Background(), booking)

	appErr := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestSubmitPublishFailure(t *testing.T) {
	pub := &mockPublisher{err: assert.AnError}
	svc := newTestService(t, pub)

	_, err := svc.Submit(context.Background(), validBooking())

	appErr := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeInternal, appErr.Code)
}
