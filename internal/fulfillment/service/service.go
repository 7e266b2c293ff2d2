package service

import (
	"context"

	"concierge/internal/fulfillment/core"
	"concierge/internal/fulfillment/flows"
	"concierge/pkg/client"
	"concierge/pkg/logger"

	"github.com/google/uuid"
)

// Intent names as delivered by the assistant.
const (
	IntentBookRoom          = "BookRoom"
	IntentCheckAvailability = "CheckAvailability"
	IntentExplainServices   = "ExplainServices"
	IntentCancelBooking     = "CancelBooking"
)

const fallbackReply = "Sorry, I did not understand your request."

type IntentHandler func(ctx *core.FlowContext) error

var intentRegistry = map[string]IntentHandler{
	IntentBookRoom:          flows.BookRoom,
	IntentCheckAvailability: flows.CheckAvailability,
	IntentExplainServices:   flows.ExplainServices,
	IntentCancelBooking:     flows.CancelBooking,
}

type FulfillmentService struct {
	client   *client.Client
	calendar core.CalendarService
	payment  core.PaymentProcessor
	log      *logger.Logger
}

func NewFulfillmentService(client *client.Client, calendar core.CalendarService, payment core.PaymentProcessor, log *logger.Logger) *FulfillmentService {
	return &FulfillmentService{
		client:   client,
		calendar: calendar,
		payment:  payment,
		log:      log,
	}
}

// ExecuteIntent runs the flow registered for the intent and returns the
// reply text for the assistant. Unrecognized intents get the fallback
// reply rather than an error.
func (s *FulfillmentService) ExecuteIntent(ctx context.Context, intent string, params map[string]any) (string, error) {
	handler, exists := intentRegistry[intent]
	if !exists {
		s.log.Warn("Unrecognized intent", "intent", intent)
		return fallbackReply, nil
	}

	correlationID := uuid.New().String()
	s.log.Info("Executing intent flow", "intent", intent, "correlation_id", correlationID)

	flowCtx := core.NewFlowContext(ctx, params, s.client, s.calendar, s.payment, s.log)
	if err := handler(flowCtx); err != nil {
		s.log.Error("Intent flow failed", "intent", intent, "correlation_id", correlationID, "error", err)
		return "", err
	}

	reply, _ := flowCtx.Output[core.OutputFulfillmentText].(string)
	if reply == "" {
		reply = fallbackReply
	}
	return reply, nil
}

func (s *FulfillmentService) AvailableIntents() []string {
	intents := make([]string, 0, len(intentRegistry))
	for intent := range intentRegistry {
		intents = append(intents, intent)
	}
	return intents
}
