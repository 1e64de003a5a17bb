package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"classbook/pkg/kafka"
	"classbook/pkg/logger"
	"classbook/pkg/middleware"
	"classbook/pkg/model"
)

type mockProducer struct {
	published []kafka.Message
	err       error
}

func (m *mockProducer) Publish(ctx context.Context, msg kafka.Message) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, msg)
	return nil
}

func testBooking() *model.Booking {
	return &model.Booking{
		ID:          "b-1",
		ClassID:     "yoga",
		ClientName:  "Jane",
		ClientEmail: "jane@example.com",
		BookedAt:    time.Date(2025, 6, 20, 10, 15, 0, 0, time.FixedZone("IST", 5*3600+1800)),
	}
}

func TestKafkaPublisher_BookingCreated(t *testing.T) {
	producer := &mockProducer{}
	pub := NewKafkaPublisher(producer, logger.Discard())

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-42")
	if err := pub.BookingCreated(ctx, testBooking()); err != nil {
		t.Fatalf("BookingCreated failed: %v", err)
	}

	if len(producer.published) != 1 {
		t.Fatalf("expected 1 message, got %d", len(producer.published))
	}
	msg := producer.published[0]

	checks := map[string]string{
		"key":            msg.Key,
		"event type":     msg.GetEventType(),
		"event id":       msg.GetEventID(),
		"correlation id": msg.GetCorrelationID(),
		"schema version": msg.Headers[kafka.HeaderSchemaVersion],
		"source":         msg.Headers[kafka.HeaderSource],
	}
	want := map[string]string{
		"key":            "yoga",
		"event type":     EventBookingCreated,
		"event id":       "b-1",
		"correlation id": "req-42",
		"schema version": SchemaVersion,
		"source":         Source,
	}
	for k, w := range want {
		if checks[k] != w {
			t.Errorf("%s: expected %q, got %q", k, w, checks[k])
		}
	}

	var payload map[string]any
	if err := msg.DecodeValue(&payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload["booked_at"] != "2025-06-20T10:15:00+05:30" || payload["client_email"] != "jane@example.com" {
		t.Errorf("unexpected payload %v", payload)
	}
}

func TestKafkaPublisher_PropagatesFailure(t *testing.T) {
	boom := errors.New("broker down")
	pub := NewKafkaPublisher(&mockProducer{err: boom}, logger.Discard())

	if err := pub.BookingCreated(context.Background(), testBooking()); !errors.Is(err, boom) {
		t.Errorf("expected wrapped producer error, got %v", err)
	}
}

func TestNoopPublisher(t *testing.T) {
	if err := NewNoopPublisher().BookingCreated(context.Background(), testBooking()); err != nil {
		t.Errorf("noop publisher returned %v", err)
	}
}
