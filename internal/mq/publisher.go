package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/shaiso/Starfield/internal/domain"
)

// MessageType — тип сообщения в очереди.
type MessageType string

const (
	MessageTypeAnalysisCompleted MessageType = "analysis.completed"
)

// Message — конверт публикуемого сообщения.
type Message struct {
	ID        string      `json:"id"`
	Type      MessageType `json:"type"`
	Payload   any         `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// AnalysisCompletedPayload — сводка завершённого анализа.
type AnalysisCompletedPayload struct {
	AnalysisID uuid.UUID             `json:"analysis_id"`
	Source     string                `json:"source"`
	Status     domain.AnalysisStatus `json:"status"`
	Galaxies   int                   `json:"galaxies"`
	Pairs      int                   `json:"pairs"`
	Sum        int                   `json:"sum"`
	Initial    domain.Size           `json:"initial"`
	Expanded   domain.Size           `json:"expanded"`
	DurationMS int64                 `json:"duration_ms"`
	Error      string                `json:"error,omitempty"`
}

// Publisher публикует сообщения в RabbitMQ.
type Publisher struct {
	conn   *Connection
	logger *slog.Logger
}

// NewPublisher создаёт новый Publisher.
func NewPublisher(conn *Connection, logger *slog.Logger) *Publisher {
	return &Publisher{
		conn:   conn,
		logger: logger,
	}
}

// Publish публикует сообщение и ждёт подтверждения брокера.
func (p *Publisher) Publish(ctx context.Context, exchange Exchange, routingKey RoutingKey, msg *Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	return p.conn.WithChannel(ctx, func(ch *amqp.Channel) error {
		confirm, err := ch.PublishWithDeferredConfirmWithContext(
			ctx,
			string(exchange),
			string(routingKey),
			false,
			false,
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				MessageId:    msg.ID,
				Type:         string(msg.Type),
				Timestamp:    msg.Timestamp,
				Body:         body,
			},
		)
		if err != nil {
			return fmt.Errorf("publish to %s/%s: %w", exchange, routingKey, err)
		}

		acked, err := confirm.WaitContext(ctx)
		if err != nil {
			return fmt.Errorf("wait confirm: %w", err)
		}
		if !acked {
			return fmt.Errorf("publish to %s/%s: nacked by broker", exchange, routingKey)
		}

		p.logger.Debug("published message",
			"exchange", exchange,
			"routing_key", routingKey,
			"message_id", msg.ID,
			"type", msg.Type,
		)

		return nil
	})
}

// PublishAnalysisCompleted публикует сводку анализа.
func (p *Publisher) PublishAnalysisCompleted(ctx context.Context, a *domain.Analysis) error {
	return p.Publish(ctx, ExchangeAnalyses, RoutingKeyCompleted, NewAnalysisCompletedMessage(a))
}

// NewAnalysisCompletedMessage собирает сообщение analysis.completed.
func NewAnalysisCompletedMessage(a *domain.Analysis) *Message {
	return &Message{
		ID:   uuid.New().String(),
		Type: MessageTypeAnalysisCompleted,
		Payload: AnalysisCompletedPayload{
			AnalysisID: a.ID,
			Source:     a.Source,
			Status:     a.Status,
			Galaxies:   a.Galaxies,
			Pairs:      a.Pairs,
			Sum:        a.Sum,
			Initial:    a.Initial,
			Expanded:   a.Expanded,
			DurationMS: a.Duration().Milliseconds(),
			Error:      a.Error,
		},
		Timestamp: time.Now(),
	}
}
