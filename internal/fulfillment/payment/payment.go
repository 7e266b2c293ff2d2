package payment

import (
	"context"

	"concierge/pkg/logger"
)

// Processor confirms payment for a committed booking.
type Processor interface {
	Confirm(ctx context.Context, bookingID int64) error
}

// MockProcessor simulates a payment provider that always succeeds. The
// real provider integration is a planned replacement behind the same
// interface.
type MockProcessor struct {
	log *logger.Logger
}

func NewMockProcessor(log *logger.Logger) *MockProcessor {
	return &MockProcessor{log: log}
}

func (p *MockProcessor) Confirm(ctx context.Context, bookingID int64) error {
	p.log.Info("Processing payment (mock)", "booking_id", bookingID)
	return nil
}
