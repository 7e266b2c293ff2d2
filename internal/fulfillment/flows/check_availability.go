package flows

import (
	"fmt"

	"concierge/internal/fulfillment/core"
)

func CheckAvailability(ctx *core.FlowContext) error {
	roomType := ctx.ExtractString(ParamRoomType)
	date := ctx.ExtractString(ParamDate)

	if core.IsMissing(roomType) || core.IsMissing(date) {
		ctx.Reply("Please provide the room type and date to check availability.")
		return nil
	}

	availability, err := ctx.Client.Reservations.CheckAvailability(ctx.Ctx, roomType, date)
	if err != nil {
		ctx.Reply("Backend service is unavailable, please try again later.")
		return nil
	}

	if availability.Available {
		ctx.Reply(fmt.Sprintf("The %s room is available on %s.", roomType, date))
	} else {
		ctx.Reply(fmt.Sprintf("Sorry, the %s room is not available on %s.", roomType, date))
	}
	return nil
}
