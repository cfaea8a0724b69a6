// Package amqp publishes finalized campaigns to RabbitMQ so the reporting
// service can start collecting their performance counters.
package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"campaign-wizard/internal/config/configs"
	"campaign-wizard/internal/core/domain"
)

// LaunchMessage is the body of a launch notification.
type LaunchMessage struct {
	Session  string          `json:"session"`
	Campaign domain.Campaign `json:"campaign"`
}

// Notifier implements port.LaunchNotifier over a topic exchange. A lost
// connection is logged when the broker drops it and re-dialled on the next
// publish.
type Notifier struct {
	cfg configs.AMQP
	log *slog.Logger

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	closed  chan *amqp.Error
}

// Dial connects to the broker and declares the exchange.
func Dial(cfg configs.AMQP, log *slog.Logger) (*Notifier, error) {
	n := &Notifier{cfg: cfg, log: log}
	if err := n.connect(); err != nil {
		return nil, err
	}
	log.Info("rabbitmq notifier ready", "exchange", cfg.Exchange, "routing_key", cfg.RoutingKey)
	return n, nil
}

// connect dials the broker, opens a channel and declares the exchange.
// The caller holds mu or has exclusive access.
func (n *Notifier) connect() error {
	conn, err := amqp.Dial(n.cfg.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}
	err = channel.ExchangeDeclare(
		n.cfg.Exchange, // name
		"topic",        // kind
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	n.conn = conn
	n.channel = channel
	n.closed = channel.NotifyClose(make(chan *amqp.Error, 1))
	go n.watch(conn.NotifyClose(make(chan *amqp.Error, 1)))
	return nil
}

// watch logs the broker closing the connection. A graceful Close closes
// the channel without an error and ends the goroutine silently.
func (n *Notifier) watch(closed <-chan *amqp.Error) {
	if err, ok := <-closed; ok && err != nil {
		n.log.Error("rabbitmq connection lost, launches will not be published until it is re-dialled",
			"exchange", n.cfg.Exchange, "code", err.Code, "reason", err.Reason)
	}
}

// alive reports whether the current channel is still open. Any delivery
// on the close notification means it is not.
func (n *Notifier) alive() bool {
	select {
	case <-n.closed:
		return false
	default:
		return true
	}
}

func (n *Notifier) CampaignLaunched(ctx context.Context, session string, c domain.Campaign) error {
	msg, err := NewPublishing(session, c)
	if err != nil {
		return err
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.alive() {
		n.log.WarnContext(ctx, "re-dialling rabbitmq", "exchange", n.cfg.Exchange)
		if n.conn != nil {
			_ = n.conn.Close()
		}
		if err = n.connect(); err != nil {
			return fmt.Errorf("reconnect: %w", err)
		}
	}
	if err = n.channel.PublishWithContext(ctx, n.cfg.Exchange, n.cfg.RoutingKey, false, false, msg); err != nil {
		return fmt.Errorf("failed to publish launch: %w", err)
	}
	n.log.DebugContext(ctx, "launch published", "campaign_id", c.ID)
	return nil
}

// NewPublishing builds the persistent JSON message announcing c.
func NewPublishing(session string, c domain.Campaign) (amqp.Publishing, error) {
	body, err := json.Marshal(LaunchMessage{Session: session, Campaign: c})
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal message: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    c.ID,
		Timestamp:    c.CreatedAt,
		Type:         "campaign.launched",
		Body:         body,
	}, nil
}

// Close closes the channel and the connection.
func (n *Notifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.channel.Close(); err != nil {
		n.log.Warn("error closing channel", "error", err)
	}
	return n.conn.Close()
}
