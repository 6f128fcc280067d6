package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/shopwell/storefront/pkg/logger"
)

// Publisher wraps a Kafka sync producer for storefront domain events.
type Publisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewPublisher creates a new Kafka publisher.
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return &Publisher{producer: producer, brokers: brokers}, nil
}

// PublishOrderPlaced publishes an order placed event with tracing.
func (p *Publisher) PublishOrderPlaced(ctx context.Context, event OrderPlacedEvent) error {
	event.EventType = EventTypeOrderPlaced
	key := fmt.Sprintf("order_%d", event.OrderID)

	attrs := []attribute.KeyValue{
		attribute.Int64("order.id", int64(event.OrderID)),
		attribute.String("order.number", event.OrderNumber),
		attribute.Float64("order.total", event.TotalAmount),
	}

	return p.publish(ctx, TopicOrderPlaced, key, &event.EventID, event.EventType, event, attrs)
}

// PublishReviewReported publishes a review escalation event with tracing.
func (p *Publisher) PublishReviewReported(ctx context.Context, event ReviewReportedEvent) error {
	event.EventType = EventTypeReviewReported
	key := fmt.Sprintf("review_%d", event.ReviewID)

	attrs := []attribute.KeyValue{
		attribute.Int64("review.id", int64(event.ReviewID)),
		attribute.Int64("product.id", int64(event.ProductID)),
		attribute.Int("review.report_count", event.ReportCount),
	}

	return p.publish(ctx, TopicReviewReported, key, &event.EventID, event.EventType, event, attrs)
}

func (p *Publisher) publish(ctx context.Context, topic, key string, eventID *string, eventType string, event interface{}, attrs []attribute.KeyValue) error {
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish."+eventType,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(append(attrs,
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", topic),
			attribute.String("event.type", eventType),
		)...),
	)
	defer span.End()

	if *eventID == "" {
		*eventID = fmt.Sprintf("evt_%s", uuid.New().String())
	}
	span.SetAttributes(attribute.String("event.id", *eventID))

	// Events carry their own timestamp; keep the marshalled payload current.
	eventBytes, err := json.Marshal(withTimestamp(event))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Inject trace context into Kafka headers
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(eventType)},
		{Key: []byte("event_id"), Value: []byte(*eventID)},
	}
	for k, v := range carrier {
		headers = append(headers, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}

	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Logger.Error().
			Err(err).
			Str("topic", topic).
			Str("event_type", eventType).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	span.SetStatus(codes.Ok, "Event published")

	logger.Logger.Info().
		Str("event_id", *eventID).
		Str("event_type", eventType).
		Str("topic", topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("Event published")

	return nil
}

func withTimestamp(event interface{}) interface{} {
	now := time.Now()
	switch e := event.(type) {
	case OrderPlacedEvent:
		e.Timestamp = now
		return e
	case ReviewReportedEvent:
		e.Timestamp = now
		return e
	default:
		return event
	}
}

// Close closes the Kafka producer.
func (p *Publisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
