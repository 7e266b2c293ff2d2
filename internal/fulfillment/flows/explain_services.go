package flows

import "concierge/internal/fulfillment/core"

const servicesText = "Our hotel offers the following services:\n" +
	"- Room bookings: single, double, and suites\n" +
	"- Spa and wellness facilities\n" +
	"- Gym access\n" +
	"- Fine dining and room service\n" +
	"- Event and conference facilities"

func ExplainServices(ctx *core.FlowContext) error {
	ctx.Reply(servicesText)
	return nil
}
