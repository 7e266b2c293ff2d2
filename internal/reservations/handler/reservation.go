package handler

import (
	"encoding/json"
	"net/http"

	"concierge/internal/reservations/engine"
	"concierge/internal/reservations/validator"
	apperrors "concierge/pkg/errors"
	httputil "concierge/pkg/http"
	"concierge/pkg/logger"
	"concierge/pkg/model"

	"github.com/julienschmidt/httprouter"
)

const msgMissingParameters = "Missing parameters"

type ReservationHandler struct {
	engine    engine.ReservationEngine
	validator *validator.ReservationValidator
	log       *logger.Logger
}

func NewReservationHandler(engine engine.ReservationEngine, validator *validator.ReservationValidator, log *logger.Logger) *ReservationHandler {
	return &ReservationHandler{
		engine:    engine,
		validator: validator,
		log:       log,
	}
}

// CheckAvailability answers whether a room type has a free unit on a date.
// A missing field is a request-shape error; an unknown type or malformed
// date is a normal negative result in a 200 body.
func (h *ReservationHandler) CheckAvailability(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req, ok := h.decodeRequest(w, r, "CheckAvailability")
	if !ok {
		return
	}

	result := h.engine.CheckAvailability(r.Context(), req.RoomType, req.Date)
	if err := httputil.WriteJSON(w, http.StatusOK, result); err != nil {
		h.log.Error("failed to write availability response", "handler", "CheckAvailability", "error", err)
	}
}

// Book commits a booking, or explains in the body why it could not.
func (h *ReservationHandler) Book(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req, ok := h.decodeRequest(w, r, "Book")
	if !ok {
		return
	}

	result := h.engine.Book(r.Context(), req.RoomType, req.Date)

	status := http.StatusOK
	if result.Success {
		status = http.StatusCreated
	}
	if err := httputil.WriteJSON(w, status, result); err != nil {
		h.log.Error("failed to write booking response", "handler", "Book", "error", err)
	}
}

func (h *ReservationHandler) decodeRequest(w http.ResponseWriter, r *http.Request, op string) (*model.ReservationRequest, bool) {
	var req model.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", op, "error", writeErr)
		}
		return nil, false
	}

	if err := h.validator.Validate(&req); err != nil {
		h.log.Warn("Reservation request validation failed", "handler", op, "error", err)
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput(msgMissingParameters)); writeErr != nil {
			h.log.Error("failed to write error response", "handler", op, "error", writeErr)
		}
		return nil, false
	}

	return &req, true
}

func (h *ReservationHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/availability", h.CheckAvailability)
	router.POST("/api/v1/bookings", h.Book)
}
