package mq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrNoChannel — канал закрыт или не был открыт.
var ErrNoChannel = errors.New("no channel available")

// Connection — AMQP соединение с одним каналом в confirm-режиме.
//
// CLI живёт недолго, поэтому переподключения нет: если брокер
// недоступен, публикация завершается ошибкой.
type Connection struct {
	logger *slog.Logger

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	closed  bool
}

// dialTimeout ограничивает TCP-подключение и AMQP-рукопожатие.
const dialTimeout = 30 * time.Second

// NewConnection подключается к RabbitMQ и открывает канал.
// Отмена ctx прерывает подключение.
func NewConnection(ctx context.Context, url string, logger *slog.Logger) (*Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}

	conn, err := amqp.DialConfig(url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      dialContext(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	// Брокер подтверждает каждую публикацию
	if err := ch.Confirm(false); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("enable confirms: %w", err)
	}

	logger.Debug("connected to RabbitMQ")

	return &Connection{
		logger:  logger,
		conn:    conn,
		channel: ch,
	}, nil
}

// dialContext — функция подключения для amqp.Config, учитывающая ctx.
// Дедлайн на соединении ограничивает рукопожатие; amqp снимает его
// после открытия соединения.
func dialContext(ctx context.Context) func(network, addr string) (net.Conn, error) {
	return func(network, addr string) (net.Conn, error) {
		d := net.Dialer{Timeout: dialTimeout}
		conn, err := d.DialContext(ctx, network, addr)
		if err != nil {
			return nil, err
		}

		deadline := time.Now().Add(dialTimeout)
		if dl, ok := ctx.Deadline(); ok && dl.Before(deadline) {
			deadline = dl
		}
		if err := conn.SetDeadline(deadline); err != nil {
			conn.Close()
			return nil, err
		}
		return conn, nil
	}
}

// WithChannel выполняет функцию с каналом под блокировкой.
func (c *Connection) WithChannel(ctx context.Context, fn func(ch *amqp.Channel) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.channel == nil || c.channel.IsClosed() {
		return ErrNoChannel
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(c.channel)
}

// Close закрывает канал и соединение. Повторный вызов ничего не делает.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	var errs []error

	if c.channel != nil {
		if err := c.channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, fmt.Errorf("close channel: %w", err))
		}
	}

	if c.conn != nil {
		if err := c.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, fmt.Errorf("close connection: %w", err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	c.logger.Debug("RabbitMQ connection closed")
	return nil
}
