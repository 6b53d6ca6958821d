package loyalty

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	model "github.com/fidelia/loyalty/internal/models"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Публикация уведомлений из outbox
type RabbitPublisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

const queue = "notifications"

func NewRabbitPublisher() (rabbit *RabbitPublisher, err error) {
	// config
	rabbiturl := os.Getenv("RABBIT_URL")
	if rabbiturl == "" {
		return nil, fmt.Errorf("env RABBIT_URL is not set")
	}
	rabbitport := os.Getenv("RABBIT_PORT")
	if rabbitport == "" {
		return nil, fmt.Errorf("env RABBIT_PORT is not set")
	}
	rabbituser := os.Getenv("RABBIT_USER")
	if rabbituser == "" {
		return nil, fmt.Errorf("env RABBIT_USER is not set")
	}
	rabbitpass := os.Getenv("RABBIT_PASSWORD")
	if rabbitpass == "" {
		return nil, fmt.Errorf("env RABBIT_PASSWORD is not set")
	}

	rabbitconn := "amqp://" + rabbituser + ":" + rabbitpass + "@" + rabbiturl + ":" + rabbitport + "/loyalty"
	conn, err := amqp.Dial(rabbitconn)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	_, err = ch.QueueDeclare(
		queue, // name
		false, // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &RabbitPublisher{conn, ch}, nil
}

func (r *RabbitPublisher) Close() {
	r.ch.Close()
	r.conn.Close()
}

type NotificationMessage struct {
	User    string    `json:"userId,omitempty"` // пусто - общая рассылка
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
	SentBy  string    `json:"sentBy"`
}

// отправка уведомления
func (r *RabbitPublisher) Publish(ctx context.Context, note model.Notification) error {
	st := &NotificationMessage{
		Message: note.Message,
		Date:    note.Date,
		SentBy:  note.SentBy,
	}
	if note.User != uuid.Nil {
		st.User = note.User.String()
	}
	msg, err := json.Marshal(st)
	if err != nil {
		return err
	}

	err = r.ch.PublishWithContext(ctx,
		"",    // exchange
		queue, // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        []byte(msg),
		})
	if err != nil {
		return err
	}
	return nil
}
