package events

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/streadway/amqp"
)

// Routing keys for blog lifecycle events published to the blog_events queue.
const (
	BlogCreatedKey = "blog.created"
	BlogDeletedKey = "blog.deleted"

	queueName = "blog_events"
)

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient creates a new RabbitMQ client. It connects to RabbitMQ, sets up
// a channel and declares the blog_events queue.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close() // Close connection if channel creation fails
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable (persists messages across broker restarts)
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s queue: %w", queueName, err)
	}

	log.Printf("RabbitMQ client connected and %s queue declared.", queueName)

	return &Client{
		conn:    conn,
		channel: ch,
	}, nil
}

// Close closes the RabbitMQ connection and channel.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// Publish marshals the payload to JSON and publishes it to the blog_events
// queue with the given routing key carried as the message type.
func (c *Client) Publish(routingKey string, payload interface{}) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload to JSON: %w", err)
	}

	err = c.channel.Publish(
		"",        // exchange: default exchange
		queueName, // routing key: the queue name
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Type:         routingKey,
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	log.Printf(" [x] Sent %s event: %s", routingKey, body)
	return nil
}

// ConsumeBlogEvents registers a consumer on the blog_events queue and feeds
// each delivery to the handler in a background goroutine. Handler errors
// nack the message back onto the queue.
func (c *Client) ConsumeBlogEvents(messageHandler func(msg amqp.Delivery) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	queue, err := c.channel.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue for consuming: %w", err)
	}

	msgs, err := c.channel.Consume(
		queue.Name, // queue
		"",         // consumer tag
		false,      // auto-ack: set to false to manually acknowledge messages
		false,      // exclusive
		false,      // no-local
		false,      // no-wait
		nil,        // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			if err := messageHandler(msg); err != nil {
				log.Printf("Error processing message %d: %v", msg.DeliveryTag, err)
				if requeueErr := msg.Nack(false, true); requeueErr != nil {
					log.Printf("Error nacking message %d: %v", msg.DeliveryTag, requeueErr)
				}
			} else {
				if ackErr := msg.Ack(false); ackErr != nil {
					log.Printf("Error acking message %d: %v", msg.DeliveryTag, ackErr)
				}
			}
		}
	}()

	return nil
}
