package mq

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Exchange — тип для имени обменника.
type Exchange string

// Queue — тип для имени очереди.
type Queue string

// RoutingKey — тип для ключа маршрутизации.
type RoutingKey string

const (
	ExchangeAnalyses Exchange = "starfield.analyses"

	QueueAnalysesCompleted Queue = "analyses.completed"

	RoutingKeyCompleted RoutingKey = "completed"
)

// binding — привязка очереди к обменнику.
type binding struct {
	queue    Queue
	exchange Exchange
	key      RoutingKey
}

var bindings = []binding{
	{QueueAnalysesCompleted, ExchangeAnalyses, RoutingKeyCompleted},
}

// SetupTopology объявляет exchange, очереди и привязки.
// Объявления идемпотентны, вызывать можно при каждом запуске.
func SetupTopology(ctx context.Context, conn *Connection) error {
	return conn.WithChannel(ctx, func(ch *amqp.Channel) error {
		err := ch.ExchangeDeclare(
			string(ExchangeAnalyses), // name
			"direct",                 // type
			true,                     // durable
			false,                    // auto-deleted
			false,                    // internal
			false,                    // no-wait
			nil,
		)
		if err != nil {
			return fmt.Errorf("declare exchange %s: %w", ExchangeAnalyses, err)
		}

		for _, b := range bindings {
			if _, err := ch.QueueDeclare(string(b.queue), true, false, false, false, nil); err != nil {
				return fmt.Errorf("declare queue %s: %w", b.queue, err)
			}
			if err := ch.QueueBind(string(b.queue), string(b.key), string(b.exchange), false, nil); err != nil {
				return fmt.Errorf("bind %s to %s/%s: %w", b.queue, b.exchange, b.key, err)
			}
		}

		return nil
	})
}
