package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"roomly/internal/bookings/service"
	apperrors "roomly/pkg/errors"
	httputil "roomly/pkg/http"
	"roomly/pkg/logger"
	"roomly/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

func (h *BookingHandler) Facilities(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	facilities, err := h.service.Facilities(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Facilities", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, facilities); err != nil {
		h.log.Error("failed to write success response", "handler", "Facilities", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) Rooms(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	idStr := ps.ByName("id")
	facilityID, err := strconv.Atoi(idStr)
	if err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput(fmt.Sprintf("invalid facility id: %s", idStr))); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Rooms", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	rooms, err := h.service.Rooms(r.Context(), facilityID)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Rooms", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, rooms); err != nil {
		h.log.Error("failed to write success response", "handler", "Rooms", "operation", "WriteSuccess", "error", err)
	}
}

// TimeSlots serves the half-hour grid the wizard renders in its
// checkin and checkout pickers.
func (h *BookingHandler) TimeSlots(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, h.service.TimeSlots()); err != nil {
		h.log.Error("failed to write success response", "handler", "TimeSlots", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Quote", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	quote, err := h.service.Quote(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Quote", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, quote); err != nil {
		h.log.Error("failed to write success response", "handler", "Quote", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) QuoteRooms(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.RoomQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "QuoteRooms", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	quotes, err := h.service.QuoteRooms(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "QuoteRooms", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, quotes); err != nil {
		h.log.Error("failed to write success response", "handler", "QuoteRooms", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var booking model.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Submit", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	confirmation, err := h.service.Submit(r.Context(), &booking)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Submit", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, confirmation); err != nil {
		h.log.Error("failed to write created response", "handler", "Submit", "operation", "WriteCreated", "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/facilities", h.Facilities)
	router.GET("/api/v1/facilities/:id/rooms", h.Rooms)
	router.GET("/api/v1/time-slots", h.TimeSlots)
	router.POST("/api/v1/quotes", h.Quote)
	router.POST("/api/v1/quotes/rooms", h.QuoteRooms)
	router.POST("/api/v1/bookings", h.Submit)
}
