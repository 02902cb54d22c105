package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"hermes-ido/internal/config/configs"
	"hermes-ido/internal/core/domain"
)

// channel is the subset of *amqp.Channel the publisher uses.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher sends campaign events to a durable topic exchange. The routing
// key is the event type, so consumers can bind to "campaign.*" or to a
// single kind such as "campaign.claimed".
type Publisher struct {
	conn     *amqp.Connection
	exchange string

	mu sync.Mutex
	ch channel
}

// Dial connects to the broker with retries and declares the exchange.
func Dial(ctx context.Context, cfg configs.AMQP, logger *slog.Logger) (*Publisher, error) {
	var (
		conn *amqp.Connection
		err  error
	)
	for i := 0; i < cfg.ConnectRetries; i++ {
		if conn, err = amqp.Dial(cfg.URL); err == nil {
			break
		}
		logger.Warn("amqp dial failed",
			slog.Int("attempt", i+1),
			slog.Int("max", cfg.ConnectRetries),
			slog.Any("error", err))
		if i == cfg.ConnectRetries-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cfg.RetryDelay):
		}
	}
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq after %d attempts: %w", cfg.ConnectRetries, err)
	}
	if conn == nil {
		return nil, fmt.Errorf("connect to rabbitmq: no attempts configured")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	p, err := NewPublisher(ch, cfg.Exchange)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	logger.Info("connected to rabbitmq", slog.String("exchange", cfg.Exchange))
	return p, nil
}

// NewPublisher declares exchange on ch and returns a publisher bound to it.
func NewPublisher(ch channel, exchange string) (*Publisher, error) {
	err := ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &Publisher{ch: ch, exchange: exchange}, nil
}

// Publish implements port.EventPublisher.
func (p *Publisher) Publish(ctx context.Context, evt domain.Event) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.ch.PublishWithContext(ctx,
		p.exchange,
		string(evt.Type),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    evt.ID,
			Timestamp:    evt.OccurredAt,
			Type:         string(evt.Type),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", evt.Type, err)
	}
	return nil
}

// Close closes the channel and, when the publisher dialed it, the
// connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	err := p.ch.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
