// Package kafka publishes audit events to a Kafka-compatible broker.
//
// Compliance events are produced synchronously (fail-closed); operations
// events are produced asynchronously and failures are only logged.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"filings-gateway/pkg/platform/audit"
)

const (
	TopicCompliance = "filings.audit.compliance"
	TopicOperations = "filings.audit.operations"
)

// wireEvent is the JSON shape written to the topic.
type wireEvent struct {
	Category   string    `json:"category"`
	Timestamp  time.Time `json:"timestamp"`
	BusinessID string    `json:"business_id"`
	Action     string    `json:"action"`
	Decision   string    `json:"decision,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	RequestID  string    `json:"request_id,omitempty"`
	ActorID    string    `json:"actor_id,omitempty"`
	ActorRoles []string  `json:"actor_roles,omitempty"`
	ClientIP   string    `json:"client_ip,omitempty"`
	Device     string    `json:"device,omitempty"`
}

// Publisher writes audit events to Kafka using franz-go.
type Publisher struct {
	client *kgo.Client
	logger *slog.Logger
}

// Option configures the Publisher.
type Option func(*Publisher)

// WithLogger sets a logger for async produce failures.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// New creates a Kafka audit publisher for the given brokers.
func New(brokers []string, opts ...Option) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
		kgo.AllowAutoTopicCreation(),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	p := &Publisher{client: client}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Emit publishes an audit event.
//
// Compliance events block until the broker acknowledges the write and return
// any produce error so the caller can fail closed. Operations events are
// fire-and-forget.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	record, err := p.record(event)
	if err != nil {
		return err
	}

	if event.Category == audit.CategoryCompliance {
		if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
			return fmt.Errorf("produce compliance audit event: %w", err)
		}
		return nil
	}

	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil && p.logger != nil {
			p.logger.Error("operations audit event dropped",
				"action", event.Action,
				"business_id", event.BusinessID,
				"error", err,
			)
		}
	})
	return nil
}

// Close flushes buffered records and releases the client.
func (p *Publisher) Close(ctx context.Context) error {
	if err := p.client.Flush(ctx); err != nil {
		p.client.Close()
		return fmt.Errorf("flush kafka producer: %w", err)
	}
	p.client.Close()
	return nil
}

func (p *Publisher) record(event audit.Event) (*kgo.Record, error) {
	topic := TopicOperations
	if event.Category == audit.CategoryCompliance {
		topic = TopicCompliance
	}

	payload, err := json.Marshal(wireEvent{
		Category:   string(event.Category),
		Timestamp:  event.Timestamp,
		BusinessID: event.BusinessID,
		Action:     event.Action,
		Decision:   event.Decision,
		Reason:     event.Reason,
		RequestID:  event.RequestID,
		ActorID:    event.ActorID,
		ActorRoles: event.ActorRoles,
		ClientIP:   event.ClientIP,
		Device:     event.Device,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal audit event: %w", err)
	}

	// Key by business so all events for one business stay ordered.
	return &kgo.Record{
		Topic: topic,
		Key:   []byte(event.BusinessID),
		Value: payload,
	}, nil
}
