package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"roomly/pkg/config"
	"roomly/pkg/currency"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/kafka"
	"roomly/pkg/model"
	"roomly/pkg/sanitizer"
	"roomly/pkg/sealer"
	"roomly/pkg/timeslot"

	bookingerrors "roomly/internal/bookings/errors"
	"roomly/internal/bookings/pricing"
	"roomly/internal/bookings/validator"
	catalogerrors "roomly/internal/catalog/errors"
	"roomly/internal/catalog/repository"

	"github.com/google/uuid"
)

// Publisher hands accepted bookings to the event pipeline. Satisfied
// by *kafka.Producer.
type Publisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type BookingService interface {
	Facilities(ctx context.Context) ([]*model.Facility, error)
	Rooms(ctx context.Context, facilityID int) ([]*model.Room, error)
	TimeSlots() []string
	Quote(ctx context.Context, req *model.QuoteRequest) (*model.Quote, error)
	QuoteRooms(ctx context.Context, req *model.RoomQuoteRequest) ([]*model.RoomQuote, error)
	Submit(ctx context.Context, booking *model.Booking) (*model.Confirmation, error)
}

type bookingService struct {
	catalog   repository.CatalogRepository
	validator *validator.BookingValidator
	publisher Publisher
	cfg       *config.Config
}

func NewBookingService(
	catalog repository.CatalogRepository,
	validator *validator.BookingValidator,
	publisher Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		catalog:   catalog,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *bookingService) Facilities(ctx context.Context) ([]*model.Facility, error) {
	facilities, err := s.catalog.FindFacilities(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list facilities", "error", err)
		return nil, apperrors.Internal("Failed to retrieve facilities", err)
	}
	return facilities, nil
}

func (s *bookingService) Rooms(ctx context.Context, facilityID int) ([]*model.Room, error) {
	if facilityID <= 0 {
		return nil, apperrors.InvalidInput("Facility ID must be positive")
	}

	rooms, err := s.catalog.FindRoomsByFacility(ctx, facilityID)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrFacilityNotFound) {
			return nil, apperrors.NotFoundWithID("Facility", fmt.Sprintf("%d", facilityID))
		}
		s.cfg.Log.Error("Failed to list rooms",
			"facility_id", facilityID,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to retrieve rooms", err)
	}
	return rooms, nil
}

// TimeSlots returns the half-hour labels guests pick from.
func (s *bookingService) TimeSlots() []string {
	return timeslot.Grid()
}

func (s *bookingService) Quote(ctx context.Context, req *model.QuoteRequest) (*model.Quote, error) {
	if err := s.validator.ValidateQuote(req); err != nil {
		return nil, apperrors.Validation("Quote request validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	room, err := s.resolveRoom(ctx, req.FacilityID, req.RoomID)
	if err != nil {
		return nil, err
	}

	window, err := s.stayWindow(req.CheckinDate, req.CheckinSlot, req.CheckoutDate, req.CheckoutSlot)
	if err != nil {
		return nil, err
	}

	if err := s.checkStayWindow(window, room.Tariff); err != nil {
		return nil, err
	}

	total, err := pricing.Total(room.Tariff, window, req.Guests)
	if err != nil {
		return nil, s.contractViolation("pricing rejected a validated request", err)
	}

	return &model.Quote{
		FacilityID:    req.FacilityID,
		RoomID:        room.ID,
		RoomName:      room.Name,
		Checkin:       window.Checkin,
		Checkout:      window.Checkout,
		BillableHours: pricing.BillableHours(room.Tariff, window),
		WeekendRate:   pricing.WeekendRate(window),
		Total:         total,
		TotalDisplay:  currency.FormatVND(total),
	}, nil
}

// QuoteRooms prices the requested stay against every room of a
// facility so the wizard can annotate its room cards. Rooms are
// priced concurrently; tariffs may diverge per room in the future.
func (s *bookingService) QuoteRooms(ctx context.Context, req *model.RoomQuoteRequest) ([]*model.RoomQuote, error) {
	if err := s.validator.ValidateRoomQuote(req); err != nil {
		return nil, apperrors.Validation("Room quote request validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	rooms, err := s.Rooms(ctx, req.FacilityID)
	if err != nil {
		return nil, err
	}

	window, err := s.stayWindow(req.CheckinDate, req.CheckinSlot, req.CheckoutDate, req.CheckoutSlot)
	if err != nil {
		return nil, err
	}

	quotes := make([]*model.RoomQuote, len(rooms))
	errs := make([]error, len(rooms))

	var wg sync.WaitGroup
	for i, room := range rooms {
		wg.Add(1)
		go func(i int, room *model.Room) {
			defer wg.Done()

			if err := s.checkStayWindow(window, room.Tariff); err != nil {
				errs[i] = err
				return
			}

			total, err := pricing.Total(room.Tariff, window, req.Guests)
			if err != nil {
				errs[i] = s.contractViolation("pricing rejected a validated request", err)
				return
			}

			quotes[i] = &model.RoomQuote{
				Room:         room,
				Total:        total,
				TotalDisplay: currency.FormatVND(total),
			}
		}(i, room)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return quotes, nil
}

func (s *bookingService) Submit(ctx context.Context, booking *model.Booking) (*model.Confirmation, error) {
	s.sanitize(booking)

	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed",
			"facility_id", booking.FacilityID,
			"room_id", booking.RoomID,
			"error", err,
		)
		return nil, apperrors.Validation("Booking validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	facility, err := s.resolveFacility(ctx, booking.FacilityID)
	if err != nil {
		return nil, err
	}

	room, err := s.resolveRoom(ctx, booking.FacilityID, booking.RoomID)
	if err != nil {
		return nil, err
	}

	window, err := s.stayWindow(booking.CheckinDate, booking.CheckinSlot, booking.CheckoutDate, booking.CheckoutSlot)
	if err != nil {
		return nil, err
	}

	if err := s.checkStayWindow(window, room.Tariff); err != nil {
		return nil, err
	}

	total, err := pricing.Total(room.Tariff, window, booking.Guests)
	if err != nil {
		return nil, s.contractViolation("pricing rejected a validated booking", err)
	}

	reference := uuid.New().String()
	submittedAt := time.Now().UTC().Truncate(time.Millisecond)

	manageToken, err := sealer.CreateManageToken(reference, booking.GuestPhone)
	if err != nil {
		s.cfg.Log.Error("Failed to seal manage token",
			"reference", reference,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to submit booking", err)
	}

	event := &model.BookingSubmitted{
		Reference:    reference,
		FacilityID:   facility.ID,
		FacilityName: facility.Name,
		RoomID:       room.ID,
		RoomName:     room.Name,
		Checkin:      window.Checkin,
		Checkout:     window.Checkout,
		Guests:       booking.Guests,
		GuestName:    booking.GuestName,
		GuestPhone:   booking.GuestPhone,
		Notes:        booking.Notes,
		Total:        total,
		TotalDisplay: currency.FormatVND(total),
		SubmittedAt:  submittedAt,
	}

	msg := kafka.NewMessage().
		WithKey(booking.GuestPhone).
		WithValue(event).
		WithEventType(kafka.EventBookingSubmitted).
		WithSource("roomly-bookings").
		WithSchemaVersion("1").
		Build()
	msg.Topic = s.cfg.BookingsTopic

	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.cfg.Log.Error("Failed to publish booking",
			"reference", reference,
			"topic", s.cfg.BookingsTopic,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to submit booking", bookingerrors.ErrSubmissionFailed)
	}

	s.cfg.Log.Info("Booking submitted",
		"reference", reference,
		"facility", facility.Name,
		"room", room.Name,
		"checkin", window.Checkin,
		"checkout", window.Checkout,
		"guests", booking.Guests,
		"total", total,
	)

	return &model.Confirmation{
		Reference:    reference,
		ManageToken:  manageToken,
		FacilityName: facility.Name,
		RoomName:     room.Name,
		Checkin:      window.Checkin,
		Checkout:     window.Checkout,
		Guests:       booking.Guests,
		Total:        total,
		TotalDisplay: currency.FormatVND(total),
		SubmittedAt:  submittedAt,
	}, nil
}

func (s *bookingService) sanitize(booking *model.Booking) {
	booking.GuestName = sanitizer.NormalizeName(booking.GuestName)
	booking.GuestPhone = sanitizer.NormalizePhone(booking.GuestPhone)
	booking.Notes = sanitizer.NormalizeNotes(booking.Notes)
}

func (s *bookingService) resolveFacility(ctx context.Context, facilityID int) (*model.Facility, error) {
	facility, err := s.catalog.FindFacilityByID(ctx, facilityID)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrFacilityNotFound) {
			return nil, apperrors.NotFoundWithID("Facility", fmt.Sprintf("%d", facilityID))
		}
		s.cfg.Log.Error("Failed to resolve facility",
			"facility_id", facilityID,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to retrieve facility", err)
	}
	return facility, nil
}

func (s *bookingService) resolveRoom(ctx context.Context, facilityID, roomID int) (*model.Room, error) {
	room, err := s.catalog.FindRoom(ctx, facilityID, roomID)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrRoomNotFound) {
			return nil, apperrors.NotFoundWithID("Room", fmt.Sprintf("%d", roomID))
		}
		s.cfg.Log.Error("Failed to resolve room",
			"facility_id", facilityID,
			"room_id", roomID,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to retrieve room", err)
	}
	return room, nil
}

// stayWindow resolves date strings and slot labels into instants in
// the configured timezone. Field formats were already validated, so a
// failure here is an integration bug, not guest input.
func (s *bookingService) stayWindow(checkinDate, checkinSlot, checkoutDate, checkoutSlot string) (model.StayWindow, error) {
	loc := s.cfg.Location

	ciDate, err := time.ParseInLocation("2006-01-02", checkinDate, loc)
	if err != nil {
		return model.StayWindow{}, s.contractViolation("checkin date failed to parse after validation", err)
	}
	coDate, err := time.ParseInLocation("2006-01-02", checkoutDate, loc)
	if err != nil {
		return model.StayWindow{}, s.contractViolation("checkout date failed to parse after validation", err)
	}

	checkin, err := timeslot.Combine(ciDate, checkinSlot, loc)
	if err != nil {
		return model.StayWindow{}, s.contractViolation("checkin slot failed to parse after validation", err)
	}
	checkout, err := timeslot.Combine(coDate, checkoutSlot, loc)
	if err != nil {
		return model.StayWindow{}, s.contractViolation("checkout slot failed to parse after validation", err)
	}

	return model.StayWindow{Checkin: checkin, Checkout: checkout}, nil
}

// checkStayWindow applies the stay-window rules using the room's base
// duration as the same-day minimum, falling back to the configured
// floor.
func (s *bookingService) checkStayWindow(window model.StayWindow, tariff model.RoomTariff) error {
	minStay := time.Duration(tariff.BaseDurationHours) * time.Hour
	if minStay <= 0 {
		minStay = time.Duration(s.cfg.MinStayHours) * time.Hour
	}

	err := s.validator.ValidateStayWindow(window, minStay)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.InvalidWindow(verrs[0].Message, map[string]any{
			"field":    verrs[0].Field,
			"checkin":  window.Checkin,
			"checkout": window.Checkout,
		})
	}

	if errors.Is(err, bookingerrors.ErrWindowInverted) {
		return s.contractViolation("stay window arrived with inverted dates", err)
	}

	return apperrors.Internal("Failed to validate stay window", err)
}

func (s *bookingService) contractViolation(msg string, err error) error {
	s.cfg.Log.Error("Booking contract violation",
		"detail", msg,
		"error", err,
	)
	return apperrors.Contract(msg, err)
}
