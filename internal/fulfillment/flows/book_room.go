package flows

import (
	"fmt"

	"concierge/internal/fulfillment/core"
)

// Intent parameter names as delivered by the assistant.
const (
	ParamRoomType = "room-type"
	ParamDate     = "date"
)

// BookRoom checks availability, books the room, then performs the
// calendar and payment side effects. Both side effects run strictly after
// the booking is committed; their failure only changes the reply text.
func BookRoom(ctx *core.FlowContext) error {
	roomType := ctx.ExtractString(ParamRoomType)
	date := ctx.ExtractString(ParamDate)

	if core.IsMissing(roomType) || core.IsMissing(date) {
		ctx.Reply("Please provide the type of room and the booking date.")
		return nil
	}

	availability, err := ctx.Client.Reservations.CheckAvailability(ctx.Ctx, roomType, date)
	if err != nil {
		return err
	}
	if !availability.Available {
		ctx.Reply(fmt.Sprintf("Sorry, no %s rooms are available on %s.", roomType, date))
		return nil
	}

	booking, err := ctx.Client.Reservations.Book(ctx.Ctx, roomType, date)
	if err != nil {
		return err
	}
	if !booking.Success {
		// Availability was a snapshot; another caller may have taken the
		// last unit between the check and the book.
		ctx.Reply("Sorry, booking failed on backend.")
		return nil
	}

	ctx.Process["booking_id"] = booking.BookingID

	if ctx.Calendar != nil {
		if calErr := ctx.Calendar.CreateBookingEvent(ctx.Ctx, roomType, date); calErr != nil {
			ctx.Log.Warn("Failed to create calendar event",
				"booking_id", booking.BookingID,
				"error", calErr,
			)
		}
	}

	if payErr := ctx.Payment.Confirm(ctx.Ctx, booking.BookingID); payErr != nil {
		ctx.Log.Warn("Payment confirmation failed",
			"booking_id", booking.BookingID,
			"error", payErr,
		)
		ctx.Reply(fmt.Sprintf("Your %s room is booked for %s, but payment failed. Please complete payment promptly.", roomType, date))
		return nil
	}

	ctx.Reply(fmt.Sprintf("Your %s room is booked for %s successfully. Payment processed and confirmation sent.", roomType, date))
	return nil
}
