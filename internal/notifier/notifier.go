// Package notifier consumes accepted bookings and dispatches guest
// confirmations. Delivery is a log line for now; the SMS gateway
// integration slots in behind Dispatch once an account exists.
package notifier

import (
	"context"
	"fmt"

	"golang.org/x/text/language"

	"roomly/pkg/kafka"
	"roomly/pkg/locale"
	"roomly/pkg/logger"
	"roomly/pkg/model"
)

type Notifier struct {
	log *logger.Logger
}

func New(log *logger.Logger) *Notifier {
	return &Notifier{log: log}
}

// Handle processes one booking event. Returning an error lets the
// consumer retry and eventually dead-letter the message.
func (n *Notifier) Handle(ctx context.Context, msg kafka.Message) error {
	if eventType := msg.GetEventType(); eventType != kafka.EventBookingSubmitted {
		n.log.Warn("Skipping unexpected event type",
			"event_type", eventType,
			"event_id", msg.GetEventID(),
			"topic", msg.Topic,
		)
		return nil
	}

	var event model.BookingSubmitted
	if err := msg.DecodeValue(&event); err != nil {
		return fmt.Errorf("failed to decode booking event %s: %w", msg.GetEventID(), err)
	}

	return n.Dispatch(ctx, &event)
}

// Dispatch sends the confirmation for one booking, in the language
// inferred from the guest's phone prefix.
func (n *Notifier) Dispatch(ctx context.Context, event *model.BookingSubmitted) error {
	lang := locale.InferLanguageFromPhone(event.GuestPhone)

	n.log.Info("Dispatching booking confirmation",
		"reference", event.Reference,
		"guest_phone", event.GuestPhone,
		"language", lang.String(),
		"message", ConfirmationMessage(event, lang),
	)
	return nil
}

// ConfirmationMessage renders the text sent to the guest.
func ConfirmationMessage(event *model.BookingSubmitted, lang language.Tag) string {
	const layout = "15:04 02/01/2006"

	if lang == language.Vietnamese {
		return fmt.Sprintf(
			"Đã nhận đặt phòng %s tại %s. Nhận phòng %s, trả phòng %s, %d khách. Tổng cộng: %s. Mã đặt phòng: %s",
			event.RoomName,
			event.FacilityName,
			event.Checkin.Format(layout),
			event.Checkout.Format(layout),
			event.Guests,
			event.TotalDisplay,
			event.Reference,
		)
	}

	return fmt.Sprintf(
		"Booking received for room %s at %s. Check-in %s, check-out %s, %d guest(s). Total: %s. Reference: %s",
		event.RoomName,
		event.FacilityName,
		event.Checkin.Format(layout),
		event.Checkout.Format(layout),
		event.Guests,
		event.TotalDisplay,
		event.Reference,
	)
}
