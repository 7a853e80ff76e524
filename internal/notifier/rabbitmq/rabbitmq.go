package rabbitmq

import (
	"encoding/json"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeName = "bookings"
	exchangeKind = "topic"
	routingKey   = "booking.created"
)

// Notifier публикует события о созданных бронированиях в topic-exchange.
// Доставка best-effort: бронирование уже зафиксировано в базе, поэтому
// ошибка публикации не должна отменять запрос.
type Notifier struct {
	log     *slog.Logger
	conn    *amqp.Connection
	channel *amqp.Channel
}

func New(log *slog.Logger, url string) (*Notifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchangeName, exchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	return &Notifier{log: log, conn: conn, channel: ch}, nil
}

type bookingCreatedEvent struct {
	BookingID string `json:"booking_id"`
	TrainID   int    `json:"train_id"`
	UserID    int    `json:"user_id"`
}

func (n *Notifier) BookingCreated(bookingID string, trainID, userID int) error {
	body, err := json.Marshal(bookingCreatedEvent{
		BookingID: bookingID,
		TrainID:   trainID,
		UserID:    userID,
	})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = n.channel.Publish(
		exchangeName,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	n.log.Debug("booking event published",
		slog.String("booking_id", bookingID),
		slog.Int("train_id", trainID),
	)

	return nil
}

func (n *Notifier) Close() {
	if n.channel != nil {
		n.channel.Close()
	}
	if n.conn != nil {
		n.conn.Close()
	}
}
