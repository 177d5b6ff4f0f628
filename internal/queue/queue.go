package queue

import (
	"context"
	"fmt"

	"github.com/daralshefa/chatbot/backend/internal/util"
	"github.com/daralshefa/chatbot/backend/pkg/logger"

	"github.com/rabbitmq/amqp091-go"
)

// EventsQueue receives one message per persisted user event, for downstream
// consumers (reporting, CRM sync). Publication is best-effort.
const EventsQueue = "events_queue"

func Init() *amqp091.Connection {
	user := util.GetEnv("RABBITMQ_USER")
	pass := util.GetEnv("RABBITMQ_PASSWORD")
	host := util.GetEnv("RABBITMQ_HOST")
	port := util.GetEnv("RABBITMQ_PORT")

	connURL := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		user,
		pass,
		host,
		port,
	)

	conn, err := amqp091.Dial(connURL)
	if err != nil {
		logger.Fatal("Failed to connect to RabbitMQ", "err", err)
	}

	return conn
}

func Setup(ch *amqp091.Channel) error {
	_, err := ch.QueueDeclare(
		EventsQueue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	return err
}

func Publish(ctx context.Context, ch *amqp091.Channel, queueName string, body []byte) error {
	return util.RetryErrWithContext(ctx, 2, func(ctx context.Context) error {
		return ch.PublishWithContext(ctx,
			"",        // exchange
			queueName, // routing key
			false,     // mandatory
			false,     // immediate
			amqp091.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp091.Persistent,
				Body:         body,
			},
		)
	})
}
