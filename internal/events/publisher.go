package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/logging"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/models"
)

// EventType represents the type of invoice event.
type EventType string

const (
	EventTypeInvoiceCreated EventType = "invoice.created"
)

// InvoiceEvent is the envelope written to the invoices topic.
type InvoiceEvent struct {
	ID        string          `json:"id"`
	Type      EventType       `json:"type"`
	InvoiceID string          `json:"invoice_id"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// Publisher announces invoice lifecycle events.
type Publisher interface {
	PublishInvoiceCreated(ctx context.Context, inv *models.Invoice) error
}

var (
	_ Publisher = (*KafkaPublisher)(nil)
	_ Publisher = (*MockEventPublisher)(nil)
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher publishes invoice events to Kafka.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
	logger *logging.LoggerV2
}

// NewKafkaPublisher creates a new Kafka-based event publisher.
func NewKafkaPublisher(cfg config.KafkaConfig, logger *logging.LoggerV2) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.InvoicesTopic,
		Balancer:     &kafka.Hash{},
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
	}

	return &KafkaPublisher{
		writer: writer,
		topic:  cfg.InvoicesTopic,
		logger: logger,
	}
}

// PublishInvoiceCreated publishes an invoice created event keyed by invoice ID.
func (p *KafkaPublisher) PublishInvoiceCreated(ctx context.Context, inv *models.Invoice) error {
	event, err := newEvent(EventTypeInvoiceCreated, inv)
	if err != nil {
		return err
	}
	return p.publish(ctx, event)
}

func newEvent(eventType EventType, inv *models.Invoice) (*InvoiceEvent, error) {
	data, err := json.Marshal(inv)
	if err != nil {
		return nil, err
	}
	return &InvoiceEvent{
		ID:        "evt_" + uuid.NewString(),
		Type:      eventType,
		InvoiceID: inv.ID,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}, nil
}

func (p *KafkaPublisher) publish(ctx context.Context, event *InvoiceEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.InvoiceID),
		Value: eventData,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "event_id", Value: []byte(event.ID)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish event", logging.Fields{
			"event_id":   event.ID,
			"event_type": event.Type,
			"invoice_id": event.InvoiceID,
			"error":      err.Error(),
		})
		return err
	}

	p.logger.Info("Event published", logging.Fields{
		"event_id":   event.ID,
		"event_type": event.Type,
		"invoice_id": event.InvoiceID,
		"topic":      p.topic,
	})
	return nil
}

// Close closes the Kafka writer.
func (p *KafkaPublisher) Close() error {
	p.logger.Info("Closing Kafka publisher")
	return p.writer.Close()
}

// MockEventPublisher records events in memory for tests and for running
// without a broker.
type MockEventPublisher struct {
	mu     sync.Mutex
	Events []*InvoiceEvent
	Err    error
}

func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{
		Events: make([]*InvoiceEvent, 0),
	}
}

func (m *MockEventPublisher) PublishInvoiceCreated(ctx context.Context, inv *models.Invoice) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	event, err := newEvent(EventTypeInvoiceCreated, inv)
	if err != nil {
		return err
	}
	m.Events = append(m.Events, event)
	return nil
}

// SetError makes subsequent publishes fail with err; nil restores success.
func (m *MockEventPublisher) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Err = err
}

// Published returns a snapshot of the recorded events.
func (m *MockEventPublisher) Published() []*InvoiceEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*InvoiceEvent(nil), m.Events...)
}
