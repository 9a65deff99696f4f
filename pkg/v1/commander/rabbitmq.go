package commander

import "context"

//go:generate mockery --name RabbitMQPublisher --filename rabbitmqpublisher.go

// RabbitMQPublisher is RabbitMQ messages publisher.
type RabbitMQPublisher interface {
	PublishRequest(ctx context.Context, routingKey, replyTo, correlationID string, message []byte) error
}

// RabbitMQSender sends RMQ messages to routing key and asks for replies to reply queue.
type RabbitMQSender struct {
	publisher     RabbitMQPublisher
	cmdRoutingKey string
	replyTo       string
}

// NewRabbitMQSender returns new RabbitMQSender using provided publisher for sending messages to provided routing key.
// Replies are sent to replyTo queue.
func NewRabbitMQSender(publisher RabbitMQPublisher, cmdRoutingKey, replyTo string) RabbitMQSender {
	return RabbitMQSender{
		publisher:     publisher,
		cmdRoutingKey: cmdRoutingKey,
		replyTo:       replyTo,
	}
}

// Send sends message to RabbitMQSender's routing key.
func (s RabbitMQSender) Send(ctx context.Context, correlationID string, msg []byte) error {
	return s.publisher.PublishRequest(ctx, s.cmdRoutingKey, s.replyTo, correlationID, msg)
}
