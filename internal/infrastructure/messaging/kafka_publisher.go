package messaging

import (
	"context"
	"fmt"
	"sync"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/acquiropay/gateway/internal/domain/event"
	"github.com/acquiropay/gateway/internal/domain/port"
)

// Compile-time interface checks.
var (
	_ port.EventPublisher = (*KafkaPublisher)(nil)
	_ port.EventPublisher = NoopPublisher{}
)

// KafkaPublisher publishes domain events to Kafka, one lazily created writer
// per topic.
type KafkaPublisher struct {
	mu      sync.Mutex
	writers map[string]*kafkago.Writer
	brokers []string
}

// NewKafkaPublisher creates a publisher for the given brokers.
func NewKafkaPublisher(brokers []string) *KafkaPublisher {
	return &KafkaPublisher{
		writers: make(map[string]*kafkago.Writer),
		brokers: brokers,
	}
}

// Publish writes the events to the topic, keyed by payment id so all events
// for one payment land on the same partition. The event payload already
// excludes sensitive card data; only masked fragments cross this boundary.
func (p *KafkaPublisher) Publish(ctx context.Context, topic string, events ...event.DomainEvent) error {
	messages := make([]kafkago.Message, 0, len(events))
	for _, evt := range events {
		messages = append(messages, kafkago.Message{
			Key:   []byte(evt.PaymentID().String()),
			Value: evt.Payload(),
			Headers: []kafkago.Header{
				{Key: "event_type", Value: []byte(evt.EventType())},
				{Key: "event_id", Value: []byte(evt.EventID().String())},
			},
		})
	}

	w := p.getOrCreateWriter(topic)
	if err := w.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("kafka publish to %s: %w", topic, err)
	}
	return nil
}

// Close closes all writers.
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for topic, w := range p.writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing writer for topic %s: %w", topic, err)
		}
	}
	p.writers = make(map[string]*kafkago.Writer)
	return firstErr
}

func (p *KafkaPublisher) getOrCreateWriter(topic string) *kafkago.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if w, ok := p.writers[topic]; ok {
		return w
	}

	w := &kafkago.Writer{
		Addr:         kafkago.TCP(p.brokers...),
		Topic:        topic,
		Balancer:     &kafkago.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafkago.RequireAll,
	}
	p.writers[topic] = w
	return w
}

// NoopPublisher discards events. Used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, ...event.DomainEvent) error {
	return nil
}
