package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"blog-api/pkg/config"
	"blog-api/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventsExchange  = "blog.events"
	EventsQueueName = "blog_events_queue"

	DefaultPriority = 1
	MaxPriority     = 10
)

// RoutingKeys lists the event types bound to the events queue.
var RoutingKeys = []string{
	"user_registered",
	"post_created",
	"comment_created",
	"like_created",
	"verification_requested",
}

// Message is the envelope written to the exchange.
type Message struct {
	Type       string                 `json:"type"`
	Payload    map[string]interface{} `json:"payload"`
	OccurredAt time.Time              `json:"occurred_at"`
}

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

// URL builds the AMQP connection string.
func URL(cfg *config.Config) string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	if cfg.RabbitMQHost == "" {
		return nil, fmt.Errorf("RabbitMQ host not configured")
	}

	conn, err := amqp.Dial(URL(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		EventsExchange, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		EventsQueueName, // name
		true,            // durable
		false,           // delete when unused
		false,           // exclusive
		false,           // no-wait
		amqp.Table{
			"x-max-priority": MaxPriority,
		},
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	for _, key := range RoutingKeys {
		if err := channel.QueueBind(EventsQueueName, key, EventsExchange, false, nil); err != nil {
			channel.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to bind queue to %s: %w", key, err)
		}
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// PublishEvent writes one event to the exchange, routed by its type.
func (c *Client) PublishEvent(ctx context.Context, eventType string, payload map[string]interface{}) error {
	publishing, err := NewPublishing(eventType, payload, time.Now())
	if err != nil {
		return err
	}

	if err := c.channel.PublishWithContext(ctx, EventsExchange, eventType, false, false, publishing); err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish message to exchange=%s, routing_key=%s: %v", EventsExchange, eventType, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Debug("[RABBITMQ] Published %s to exchange=%s: %s", eventType, EventsExchange, string(publishing.Body))
	return nil
}

// NewPublishing encodes an event. A "priority" int in the payload is clamped to 0-10.
func NewPublishing(eventType string, payload map[string]interface{}, now time.Time) (amqp.Publishing, error) {
	priority := DefaultPriority
	if p, ok := payload["priority"].(int); ok {
		priority = p
		if priority < 0 {
			priority = 0
		}
		if priority > MaxPriority {
			priority = MaxPriority
		}
	}

	body, err := json.Marshal(Message{Type: eventType, Payload: payload, OccurredAt: now.UTC()})
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal event: %w", err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		Type:         eventType,
		Body:         body,
		Priority:     uint8(priority),
		DeliveryMode: amqp.Persistent,
		Timestamp:    now,
	}, nil
}

// ConsumeEvents hands each decoded event to handler. Failed handlers requeue the message.
func (c *Client) ConsumeEvents(handler func(msg Message) error) error {
	msgs, err := c.channel.Consume(
		EventsQueueName, // queue
		"",              // consumer
		false,           // auto-ack
		false,           // exclusive
		false,           // no-local
		false,           // no-wait
		nil,             // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info("[RABBITMQ] Started consuming from queue: %s", EventsQueueName)

	go func() {
		for delivery := range msgs {
			var msg Message
			if err := json.Unmarshal(delivery.Body, &msg); err != nil {
				c.logger.Error("[RABBITMQ] Failed to unmarshal event: %v, body=%s", err, string(delivery.Body))
				delivery.Nack(false, false)
				continue
			}

			if err := handler(msg); err != nil {
				c.logger.Error("[RABBITMQ] Handler failed to process %s: %v", msg.Type, err)
				delivery.Nack(false, true)
				continue
			}

			delivery.Ack(false)
		}
	}()

	return nil
}

// QueueLength returns the number of messages waiting in the events queue.
func (c *Client) QueueLength() (int, error) {
	queue, err := c.channel.QueueInspect(EventsQueueName)
	if err != nil {
		return 0, err
	}
	return queue.Messages, nil
}
