package queue

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
)

const notificationQueue = "notification_events"

// Publisher publishes notification events for downstream consumers
// (push gateway, analytics). Delivery to end users still goes through
// the email channel; this is an additional fan-out.
type Publisher interface {
	Publish(eventType string, payload any) error
	Close() error
}

type AMQPPublisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		notificationQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &AMQPPublisher{conn: conn, ch: ch}, nil
}

func (p *AMQPPublisher) Publish(eventType string, payload any) error {
	body, err := json.Marshal(map[string]any{
		"event_type": eventType,
		"payload":    payload,
	})
	if err != nil {
		return err
	}

	return p.ch.Publish(
		"",                // default exchange
		notificationQueue, // routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

func (p *AMQPPublisher) Close() error {
	if p.ch != nil {
		p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
