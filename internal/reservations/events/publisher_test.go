package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"concierge/pkg/kafka"
	"concierge/pkg/logger"
	"concierge/pkg/middleware"
	"concierge/pkg/model"
)

type captureProducer struct {
	messages []kafka.Message
	err      error
}

func (c *captureProducer) Publish(ctx context.Context, msg kafka.Message) error {
	if c.err != nil {
		return c.err
	}
	c.messages = append(c.messages, msg)
	return nil
}

func (c *captureProducer) Close() error {
	return nil
}

func testBooking() *model.Booking {
	return &model.Booking{
		ID:        42,
		RoomType:  "suite",
		Date:      "2024-07-01",
		CreatedAt: time.Now().UTC(),
	}
}

func TestPublishBooked_MessageShape(t *testing.T) {
	producer := &captureProducer{}
	p := NewPublisher(producer, logger.New(logger.Config{Level: logger.ERROR, Service: "test"}))

	if err := p.PublishBooked(context.Background(), testBooking()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(producer.messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(producer.messages))
	}

	msg := producer.messages[0]
	if msg.Key != "suite:2024-07-01" {
		t.Errorf("expected slot partition key, got %q", msg.Key)
	}
	if msg.Headers[kafka.HeaderEventType] != EventTypeBookingCommitted {
		t.Errorf("expected event type %q, got %q", EventTypeBookingCommitted, msg.Headers[kafka.HeaderEventType])
	}
	if msg.Headers[kafka.HeaderSource] != "reservations" {
		t.Errorf("expected source reservations, got %q", msg.Headers[kafka.HeaderSource])
	}
	if msg.Headers[kafka.HeaderEventID] == "" {
		t.Error("expected a generated event id")
	}

	var event model.BookingCommittedEvent
	if err := msg.DecodeValue(&event); err != nil {
		t.Fatalf("failed to decode event payload: %v", err)
	}
	if event.BookingID != 42 || event.RoomType != "suite" || event.Date != "2024-07-01" {
		t.Errorf("unexpected event payload: %+v", event)
	}
}

func TestPublishBooked_CorrelationIDFromRequestContext(t *testing.T) {
	producer := &captureProducer{}
	p := NewPublisher(producer, logger.New(logger.Config{Level: logger.ERROR, Service: "test"}))

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-abc123")
	if err := p.PublishBooked(ctx, testBooking()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := producer.messages[0].Headers[kafka.HeaderCorrelationID]; got != "req-abc123" {
		t.Errorf("expected correlation id %q, got %q", "req-abc123", got)
	}
}

func TestPublishBooked_NoCorrelationIDWithoutRequestContext(t *testing.T) {
	producer := &captureProducer{}
	p := NewPublisher(producer, logger.New(logger.Config{Level: logger.ERROR, Service: "test"}))

	if err := p.PublishBooked(context.Background(), testBooking()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, present := producer.messages[0].Headers[kafka.HeaderCorrelationID]; present {
		t.Error("expected no correlation id header outside a request context")
	}
}

func TestPublishBooked_ProducerErrorPropagates(t *testing.T) {
	producer := &captureProducer{err: errors.New("broker unreachable")}
	p := NewPublisher(producer, logger.New(logger.Config{Level: logger.ERROR, Service: "test"}))

	if err := p.PublishBooked(context.Background(), testBooking()); err == nil {
		t.Error("expected producer error to propagate to the caller")
	}
}
