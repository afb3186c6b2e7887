// Package tickets publishes finalized-order tickets to the support desk
// queue, in addition to the chat card the notifier sends.
package tickets

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/akozyrev/storepay/internal/adapter/config"
	"github.com/akozyrev/storepay/internal/core/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type AMQPPublisher struct {
	logger *zap.Logger
	conn   *amqp.Connection
	ch     *amqp.Channel
	queue  string
}

func NewAMQPPublisher(cfg *config.Tickets, log *zap.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(cfg.AMQPURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open amqp channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		cfg.Queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &AMQPPublisher{
		logger: log,
		conn:   conn,
		ch:     ch,
		queue:  cfg.Queue,
	}, nil
}

func (p *AMQPPublisher) PublishTicket(ctx context.Context, ticket *domain.Ticket) error {
	body, err := json.Marshal(ticket)
	if err != nil {
		return err
	}

	err = p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Type:        "ticket.created",
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish ticket %s: %w", ticket.ID, err)
	}

	p.logger.Debug("Ticket published", zap.String("ticket", ticket.ID))
	return nil
}

func (p *AMQPPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		return err
	}
	return p.conn.Close()
}
