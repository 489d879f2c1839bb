package notifier

import (
	"context"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"roomly/pkg/kafka"
	"roomly/pkg/logger"
	"roomly/pkg/model"
)

func testNotifier() *Notifier {
	return New(logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	}))
}

func sampleEvent() *model.BookingSubmitted {
	return &model.BookingSubmitted{
		Reference:    "ref-123",
		FacilityName: "Ngọc Thụy",
		RoomName:     "Aurora",
		Checkin:      time.Date(2025, time.March, 10, 14, 0, 0, 0, time.UTC),
		Checkout:     time.Date(2025, time.March, 10, 19, 0, 0, 0, time.UTC),
		Guests:       2,
		GuestPhone:   "+84912345678",
		TotalDisplay: "300.000 ₫",
	}
}

func TestHandleDecodesAndDispatches(t *testing.T) {
	msg := kafka.NewMessage().
		WithKey("+84912345678").
		WithValue(sampleEvent()).
		WithEventType(kafka.EventBookingSubmitted).
		Build()

	if err := testNotifier().Handle(context.Background(), msg); err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
}

func TestHandleSkipsUnknownEventType(t *testing.T) {
	msg := kafka.NewMessage().
		WithRawValue([]byte("{}")).
		WithEventType("schedule.updated").
		Build()

	if err := testNotifier().Handle(context.Background(), msg); err != nil {
		t.Fatalf("unknown event types must be skipped, got error: %v", err)
	}
}

func TestHandleMalformedPayload(t *testing.T) {
	msg := kafka.NewMessage().
		WithRawValue([]byte("{not json")).
		WithEventType(kafka.EventBookingSubmitted).
		Build()

	if err := testNotifier().Handle(context.Background(), msg); err == nil {
		t.Fatal("malformed payload must surface an error for retry")
	}
}

func TestConfirmationMessage(t *testing.T) {
	event := sampleEvent()

	vi := ConfirmationMessage(event, language.Vietnamese)
	if !strings.Contains(vi, "Đã nhận đặt phòng Aurora") || !strings.Contains(vi, "300.000 ₫") {
		t.Errorf("unexpected Vietnamese message: %s", vi)
	}

	en := ConfirmationMessage(event, language.English)
	if !strings.Contains(en, "Booking received for room Aurora") || !strings.Contains(en, "ref-123") {
		t.Errorf("unexpected English message: %s", en)
	}
}
