package events

import (
	"context"
	"fmt"

	"concierge/pkg/kafka"
	"concierge/pkg/logger"
	"concierge/pkg/middleware"
	"concierge/pkg/model"
)

const EventTypeBookingCommitted = "booking.committed"

// MessageProducer is the producer surface the publisher needs.
type MessageProducer interface {
	Publish(ctx context.Context, msg kafka.Message) error
	Close() error
}

// Publisher fans committed bookings out to Kafka. It sits strictly
// outside the engine's success contract; callers log and continue when
// publishing fails.
type Publisher struct {
	producer MessageProducer
	log      *logger.Logger
}

func NewPublisher(producer MessageProducer, log *logger.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		log:      log,
	}
}

func (p *Publisher) PublishBooked(ctx context.Context, booking *model.Booking) error {
	event := model.BookingCommittedEvent{
		BookingID:   booking.ID,
		RoomType:    booking.RoomType,
		Date:        booking.Date,
		CommittedAt: booking.CreatedAt,
	}

	builder := kafka.NewMessage().
		WithKey(fmt.Sprintf("%s:%s", booking.RoomType, booking.Date)).
		WithValue(event).
		WithEventType(EventTypeBookingCommitted).
		WithSource("reservations")

	// Carry the inbound request id so the event can be traced back to the
	// booking request that produced it.
	if rid := middleware.RequestID(ctx); rid != "" {
		builder = builder.WithCorrelationID(rid)
	}

	return p.producer.Publish(ctx, builder.Build())
}

func (p *Publisher) Close() {
	if err := p.producer.Close(); err != nil {
		p.log.Warn("Failed to close booking event producer", "error", err)
	}
}
