package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fintrellis/fx_engine_app/internal/core/domain"
	"github.com/segmentio/kafka-go"
)

const defaultWriteTimeout = 5 * time.Second

// KafkaRecorder publishes audit events to a Kafka topic. Writes are bounded
// by a timeout so a slow broker cannot stall the originating request; the
// caller treats failures as log-and-continue.
type KafkaRecorder struct {
	writer       *kafka.Writer
	writeTimeout time.Duration
}

// NewKafkaRecorder creates a KafkaRecorder publishing to topic via brokers.
func NewKafkaRecorder(brokers []string, topic string) *KafkaRecorder {
	return &KafkaRecorder{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
		writeTimeout: defaultWriteTimeout,
	}
}

// Record publishes the event as a JSON message keyed by action.
func (r *KafkaRecorder) Record(ctx context.Context, event domain.AuditEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal audit event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	err = r.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Action),
		Value: value,
		Time:  event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("failed to publish audit event: %w", err)
	}
	return nil
}

// Close releases the underlying Kafka writer.
func (r *KafkaRecorder) Close() error {
	return r.writer.Close()
}
