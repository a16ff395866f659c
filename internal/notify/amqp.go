package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/business_hub_app/internal/core/domain"
	portssvc "github.com/SscSPs/business_hub_app/internal/core/ports/services"
	"github.com/SscSPs/business_hub_app/internal/middleware"
	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// publisher is the part of *amqp091.Channel the notifier needs.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// AMQPNotifier publishes notifications as persistent JSON messages to a direct exchange.
// Publish failures are logged and never surface to the caller.
type AMQPNotifier struct {
	mu       sync.Mutex
	conn     *amqp091.Connection
	channel  publisher
	closed   chan *amqp091.Error
	exchange string
	queue    string
}

var _ portssvc.Notifier = (*AMQPNotifier)(nil)

// NewAMQPNotifier dials url and declares a durable exchange and queue bound by the queue name.
func NewAMQPNotifier(url, exchange, queue string) (*AMQPNotifier, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declare(ch, exchange, queue); err != nil {
		conn.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return &AMQPNotifier{
		conn:     conn,
		channel:  ch,
		closed:   ch.NotifyClose(make(chan *amqp091.Error, 1)),
		exchange: exchange,
		queue:    queue,
	}, nil
}

// currentChannel returns the channel to publish on, reopening it from the
// connection once the broker has closed the previous one.
func (a *AMQPNotifier) currentChannel() (publisher, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.conn == nil || a.closed == nil {
		return a.channel, nil
	}
	select {
	case <-a.closed:
	default:
		return a.channel, nil
	}

	ch, err := a.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("reopen channel: %w", err)
	}
	if err := declare(ch, a.exchange, a.queue); err != nil {
		ch.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}
	a.channel = ch
	a.closed = ch.NotifyClose(make(chan *amqp091.Error, 1))
	return ch, nil
}

func declare(ch *amqp091.Channel, exchange, queue string) error {
	if err := ch.ExchangeDeclare(exchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	// Routing key is the queue name.
	if err := ch.QueueBind(queue, queue, exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

func (a *AMQPNotifier) Notify(ctx context.Context, n domain.Notification) {
	logger := middleware.GetLoggerFromCtx(ctx)

	body, err := json.Marshal(n)
	if err != nil {
		logger.Error("Failed to marshal notification", slog.String("error", err.Error()))
		return
	}

	// The request may finish before the broker answers.
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	ch, err := a.currentChannel()
	if err != nil {
		logger.Error("Failed to publish notification",
			slog.String("error", err.Error()),
			slog.String("exchange", a.exchange),
			slog.String("action", n.Action))
		return
	}

	// Channels serialise concurrent publishes themselves.
	err = ch.PublishWithContext(pubCtx, a.exchange, a.queue, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    n.At,
		Type:         n.Action,
		Body:         body,
	})
	if err != nil {
		logger.Error("Failed to publish notification",
			slog.String("error", err.Error()),
			slog.String("exchange", a.exchange),
			slog.String("action", n.Action))
	}
}

// Close closes the broker connection.
func (a *AMQPNotifier) Close() error {
	if a.conn == nil {
		return nil
	}
	return a.conn.Close()
}
