package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"fieldtrack/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

type kafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewKafkaPublisher writes events synchronously, keyed by user so one user's events share a partition.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) service.EventPublisher {
	return &kafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Compression:  kafka.Snappy,
		},
		logger: logger,
	}
}

func (p *kafkaPublisher) PublishVisitEvent(ctx context.Context, event *service.VisitEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	attributes := eventAttributes(event)
	headers := make([]kafka.Header, 0, len(attributes))
	for k, v := range attributes {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(event.UserID),
		Value:   value,
		Headers: headers,
		Time:    time.Now().UTC(),
	}); err != nil {
		return errors.Wrap(err, "kafka write")
	}

	p.logger.DebugContext(ctx, "[Kafka] Event published",
		slog.String("type", string(event.Type)),
		slog.String("event_id", event.EventID),
	)

	return nil
}

func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
