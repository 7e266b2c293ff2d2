package core

import (
	"context"

	"concierge/pkg/client"
	"concierge/pkg/logger"
)

// CalendarService creates calendar entries for committed bookings. Calls
// happen only after the reservation is committed; failures are reported
// to the flow but never unwind the booking.
type CalendarService interface {
	CreateBookingEvent(ctx context.Context, roomType, date string) error
}

// PaymentProcessor confirms payment for a committed booking.
type PaymentProcessor interface {
	Confirm(ctx context.Context, bookingID int64) error
}

// FlowContext carries one intent through its flow. Input holds the intent
// parameters, Process holds intermediate state between steps, Output holds
// the reply for the assistant.
type FlowContext struct {
	Ctx     context.Context
	Input   map[string]any
	Process map[string]any
	Output  map[string]any

	Client   *client.Client
	Calendar CalendarService
	Payment  PaymentProcessor
	Log      *logger.Logger
}

func NewFlowContext(ctx context.Context, input map[string]any, client *client.Client, calendar CalendarService, payment PaymentProcessor, log *logger.Logger) *FlowContext {
	return &FlowContext{
		Ctx:      ctx,
		Input:    input,
		Process:  make(map[string]any),
		Output:   make(map[string]any),
		Client:   client,
		Calendar: calendar,
		Payment:  payment,
		Log:      log,
	}
}

// ExtractString returns the input parameter as a string, or "" when it is
// absent or not a string.
func (c *FlowContext) ExtractString(key string) string {
	value, ok := c.Input[key]
	if !ok {
		return ""
	}
	str, _ := value.(string)
	return str
}

func (c *FlowContext) Reply(text string) {
	c.Output[OutputFulfillmentText] = text
}

const OutputFulfillmentText = "fulfillment_text"

func IsMissing(str string) bool {
	return len(str) == 0
}
