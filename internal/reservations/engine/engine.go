package engine

import (
	"context"
	"errors"

	"concierge/internal/reservations/catalog"
	reservationserrors "concierge/internal/reservations/errors"
	"concierge/internal/reservations/ledger"
	"concierge/internal/reservations/validator"
	"concierge/pkg/config"
	"concierge/pkg/model"
)

// Wire messages shared with the fulfillment layer.
const (
	MsgInvalidRoomType   = "Invalid room type"
	MsgInvalidDateFormat = "Invalid date format. Use YYYY-MM-DD"
	MsgNoRoomsAvailable  = "No rooms available"
	MsgBooked            = "Room booked successfully"
)

// BookedPublisher receives committed bookings for side-effect fan-out.
// Publishing happens after the commit, outside any ledger critical
// section, and its failure never affects the booking result.
type BookedPublisher interface {
	PublishBooked(ctx context.Context, booking *model.Booking) error
}

type ReservationEngine interface {
	CheckAvailability(ctx context.Context, roomType, date string) *model.AvailabilityResponse
	Book(ctx context.Context, roomType, date string) *model.BookingResponse
}

// Engine owns the ledger exclusively; no other component mutates it.
type Engine struct {
	catalog   *catalog.Catalog
	ledger    *ledger.Ledger
	publisher BookedPublisher
	cfg       *config.Config
}

func NewEngine(catalog *catalog.Catalog, ledger *ledger.Ledger, publisher BookedPublisher, cfg *config.Config) *Engine {
	return &Engine{
		catalog:   catalog,
		ledger:    ledger,
		publisher: publisher,
		cfg:       cfg,
	}
}

// CheckAvailability reports whether a unit of roomType is free on date.
// Unknown room types and malformed dates are normal negative results, not
// errors. The answer is a snapshot: a true result is not a booking
// guarantee under concurrent load.
func (e *Engine) CheckAvailability(ctx context.Context, roomType, date string) *model.AvailabilityResponse {
	capacity, canonicalDate, negative := e.resolve(roomType, date)
	if negative != "" {
		return &model.AvailabilityResponse{Available: false, Message: negative}
	}

	available := e.ledger.CountFor(roomType, canonicalDate) < capacity
	return &model.AvailabilityResponse{Available: available}
}

// Book commits one unit of roomType on date, or reports why it could not.
// The capacity check and the ledger append are indivisible per
// (room type, date) slot, so racing calls for the last unit produce
// exactly one winner.
func (e *Engine) Book(ctx context.Context, roomType, date string) *model.BookingResponse {
	capacity, canonicalDate, negative := e.resolve(roomType, date)
	if negative != "" {
		return &model.BookingResponse{Success: false, Message: negative}
	}

	booking, err := e.ledger.Commit(roomType, canonicalDate, capacity)
	if err != nil {
		if errors.Is(err, reservationserrors.ErrNoRoomsAvailable) {
			return &model.BookingResponse{Success: false, Message: MsgNoRoomsAvailable}
		}
		e.cfg.Log.Error("Ledger commit failed", "room_type", roomType, "date", canonicalDate, "error", err)
		return &model.BookingResponse{Success: false, Message: MsgNoRoomsAvailable}
	}

	e.cfg.Log.Info("Booking committed",
		"booking_id", booking.ID,
		"room_type", booking.RoomType,
		"date", booking.Date,
	)

	e.publishBooked(ctx, booking)

	return &model.BookingResponse{
		Success:   true,
		Message:   MsgBooked,
		BookingID: booking.ID,
	}
}

// resolve validates the inputs against the catalog and the strict date
// format. It returns the capacity and canonical date, or a negative-result
// message when a value is unacceptable.
func (e *Engine) resolve(roomType, date string) (int, string, string) {
	capacity, err := e.catalog.Capacity(roomType)
	if err != nil {
		return 0, "", MsgInvalidRoomType
	}

	canonicalDate, err := validator.ParseDate(date)
	if err != nil {
		return 0, "", MsgInvalidDateFormat
	}

	return capacity, canonicalDate, ""
}

func (e *Engine) publishBooked(ctx context.Context, booking *model.Booking) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.PublishBooked(ctx, booking); err != nil {
		e.cfg.Log.Warn("Failed to publish booking event",
			"booking_id", booking.ID,
			"error", err,
		)
	}
}
