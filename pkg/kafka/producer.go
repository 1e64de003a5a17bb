package kafka

import (
	"context"
	"fmt"
	"sync"

	kafka_config "classbook/pkg/kafka/config"
	"classbook/pkg/logger"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
	Stats() kafka.WriterStats
}

// Producer wraps a kafka-go writer bound to a single topic.
type Producer struct {
	writer     messageWriter
	topic      string
	middleware []ProducerMiddleware
	closed     bool
	mu         sync.RWMutex
}

type ProducerMiddleware func(ctx context.Context, msg Message, next func(ctx context.Context, msg Message) error) error

func NewProducer(cfg *kafka_config.Config, topic string, log *logger.Logger) (*Producer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: requiredAcks(cfg.ProducerRequireAcks),
		Compression:  compression(cfg.ProducerCompression),
		MaxAttempts:  cfg.ProducerMaxAttempts,
		BatchTimeout: cfg.ProducerBatchTimeout,
		WriteTimeout: cfg.WriteTimeout,
		Async:        cfg.ProducerAsync,
		Logger:       kafka.LoggerFunc(func(msg string, args ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error("Kafka writer error", "topic", topic, "detail", fmt.Sprintf(msg, args...))
		}),
	}

	return newProducer(writer, topic), nil
}

func newProducer(writer messageWriter, topic string) *Producer {
	return &Producer{
		writer:     writer,
		topic:      topic,
		middleware: make([]ProducerMiddleware, 0),
	}
}

func compression(name string) compress.Compression {
	switch name {
	case "gzip":
		return compress.Gzip
	case "snappy":
		return compress.Snappy
	case "lz4":
		return compress.Lz4
	case "zstd":
		return compress.Zstd
	default:
		return 0
	}
}

func requiredAcks(acks int) kafka.RequiredAcks {
	switch acks {
	case 0:
		return kafka.RequireNone
	case 1:
		return kafka.RequireOne
	default:
		return kafka.RequireAll
	}
}

func (p *Producer) Topic() string {
	return p.topic
}

func (p *Producer) Use(middleware ProducerMiddleware) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.middleware = append(p.middleware, middleware)
}

func (p *Producer) Publish(ctx context.Context, msg Message) error {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return ErrProducerClosed
	}
	chain := append([]ProducerMiddleware(nil), p.middleware...)
	p.mu.RUnlock()

	if msg.Key == "" {
		return ErrEmptyKey
	}
	if len(msg.Value) == 0 {
		return ErrEmptyValue
	}
	msg.Topic = p.topic

	handler := p.write
	for i := len(chain) - 1; i >= 0; i-- {
		mw := chain[i]
		next := handler
		handler = func(ctx context.Context, m Message) error {
			return mw(ctx, m, next)
		}
	}

	return handler(ctx, msg)
}

func (p *Producer) write(ctx context.Context, msg Message) error {
	kafkaMsg := kafka.Message{
		Key:   []byte(msg.Key),
		Value: msg.Value,
		Time:  msg.Timestamp,
	}

	for k, v := range msg.Headers {
		kafkaMsg.Headers = append(kafkaMsg.Headers, kafka.Header{
			Key:   k,
			Value: []byte(v),
		})
	}

	if err := p.writer.WriteMessages(ctx, kafkaMsg); err != nil {
		return fmt.Errorf("write to %s: %w", p.topic, err)
	}
	return nil
}

func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	return p.writer.Close()
}

func (p *Producer) Stats() kafka.WriterStats {
	return p.writer.Stats()
}
