package mailerqueue

import (
	"advice-service/internal/app/contracts"
	"advice-service/internal/pkg/constvars"
	"advice-service/internal/pkg/exceptions"
	"context"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type emailPayload struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	Template string `json:"template"`
	ResetUrl string `json:"reset_url"`
	Sender   string `json:"sender"`
}

type mailerQueueService struct {
	Channel *amqp091.Channel
	Queue   string
	Sender  string
}

func NewMailerQueueService(rabbitMQConnection *amqp091.Connection, queue, sender string) (contracts.MailerQueueService, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &mailerQueueService{
		Channel: channel,
		Queue:   queue,
		Sender:  sender,
	}, nil
}

func (s *mailerQueueService) SendResetPasswordEmail(ctx context.Context, recipient, resetUrl string) error {
	body, err := json.Marshal(emailPayload{
		To:       recipient,
		Subject:  "Reset your password",
		Template: "reset-password",
		ResetUrl: resetUrl,
		Sender:   s.Sender,
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	return nil
}
