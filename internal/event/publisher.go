package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// UnlockPublisher publishes unlock events to RabbitMQ
type UnlockPublisher struct {
	conn              *RabbitMQConnection
	messagesPublished int64
	messagesFailed    int64
	lastPublishTime   time.Time
}

// NewUnlockPublisher creates a new unlock event publisher
func NewUnlockPublisher(conn *RabbitMQConnection) *UnlockPublisher {
	return &UnlockPublisher{
		conn:            conn,
		lastPublishTime: time.Now(),
	}
}

// PublishEvent publishes an unlock event to the unlock_events queue
func (p *UnlockPublisher) PublishEvent(ctx context.Context, event UnlockEvent) error {
	// Ensure the queue exists
	_, err := p.conn.Channel.QueueDeclare(
		UnlockQueue, // queue name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		p.messagesFailed++
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.messagesFailed++
		return fmt.Errorf("failed to marshal unlock event: %w", err)
	}

	err = p.conn.Channel.PublishWithContext(
		ctx,
		"",          // exchange
		UnlockQueue, // routing key (queue name)
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		p.messagesFailed++
		return fmt.Errorf("failed to publish unlock event: %w", err)
	}

	p.messagesPublished++
	p.lastPublishTime = time.Now()

	slog.Info("Unlock event published",
		"queue", UnlockQueue,
		"user_id", event.UserID,
		"fish_id", event.FishID,
	)

	return nil
}

// GetMetrics returns publisher metrics
func (p *UnlockPublisher) GetMetrics() map[string]any {
	return map[string]any{
		"messages_published": p.messagesPublished,
		"messages_failed":    p.messagesFailed,
		"last_publish_time":  p.lastPublishTime,
		"queue":              UnlockQueue,
	}
}
