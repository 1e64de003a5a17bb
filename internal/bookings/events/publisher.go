package events

import (
	"context"
	"fmt"

	"classbook/pkg/kafka"
	"classbook/pkg/logger"
	"classbook/pkg/middleware"
	"classbook/pkg/model"
)

const (
	EventBookingCreated = "booking.created"
	SchemaVersion       = "1"
	Source              = "classbook"
)

// Publisher announces ledger changes to other systems.
type Publisher interface {
	BookingCreated(ctx context.Context, booking *model.Booking) error
}

type MessagePublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type kafkaPublisher struct {
	producer MessagePublisher
	log      *logger.Logger
}

func NewKafkaPublisher(producer MessagePublisher, log *logger.Logger) Publisher {
	return &kafkaPublisher{
		producer: producer,
		log:      log,
	}
}

// BookingCreated keys the event by class id so every booking for a session
// lands on the same partition.
func (p *kafkaPublisher) BookingCreated(ctx context.Context, booking *model.Booking) error {
	builder := kafka.NewMessage().
		WithKey(booking.ClassID).
		WithValue(booking).
		WithTimestamp(booking.BookedAt).
		WithEventID(booking.ID).
		WithEventType(EventBookingCreated).
		WithSchemaVersion(SchemaVersion).
		WithSource(Source).
		WithCorrelationID(middleware.RequestIDFromContext(ctx))
	if err := builder.Err(); err != nil {
		return fmt.Errorf("encode %s event: %w", EventBookingCreated, err)
	}

	if err := p.producer.Publish(ctx, builder.Build()); err != nil {
		return fmt.Errorf("publish %s event: %w", EventBookingCreated, err)
	}
	return nil
}

type noopPublisher struct{}

func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) BookingCreated(context.Context, *model.Booking) error {
	return nil
}
