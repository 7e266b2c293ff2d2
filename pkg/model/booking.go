package model

import "time"

// Booking is a committed reservation of one unit of a room type on a
// calendar day. Bookings are immutable once created and are never removed
// from the ledger.
type Booking struct {
	ID        int64     `json:"id"`
	RoomType  string    `json:"room_type"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

type ReservationRequest struct {
	RoomType string `json:"room_type" validate:"required"`
	Date     string `json:"date" validate:"required"`
}

type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message,omitempty"`
}

type BookingResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	BookingID int64  `json:"booking_id,omitempty"`
}

// BookingCommittedEvent is published after a booking is committed to the
// ledger. Publishing is best effort and never affects the booking outcome.
type BookingCommittedEvent struct {
	BookingID   int64     `json:"booking_id"`
	RoomType    string    `json:"room_type"`
	Date        string    `json:"date"`
	CommittedAt time.Time `json:"committed_at"`
}
