package flows

import "concierge/internal/fulfillment/core"

// CancelBooking is a documented no-op: the ledger is append-only and the
// reservation core exposes no cancellation operation. The intent only
// acknowledges the request.
func CancelBooking(ctx *core.FlowContext) error {
	ctx.Reply("Booking cancellation service will be available soon.")
	return nil
}
