package rabbitmq

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const contentType = "application/json"

// HandlerFunc is function which handles messages.
// Returned reply is published to message's reply-to queue, even if handling failed.
type HandlerFunc func(ctx context.Context, message []byte) (reply []byte, err error)

// Channel is part of amqp channel used by RabbitMQ.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Cancel(consumer string, noWait bool) error
}

// RabbitMQ consumes and publishes amqp messages.
type RabbitMQ struct {
	channel   Channel
	exchange  string
	isRunning chan struct{}
}

// NewRabbitMQ returns new RabbitMQ.
func NewRabbitMQ(connection *amqp.Connection, exchange string) (*RabbitMQ, error) {
	channel, err := connection.Channel()
	if err != nil {
		return nil, fmt.Errorf("can't open channel: %w", err)
	}

	return NewRabbitMQWithChannel(channel, exchange), nil
}

// NewRabbitMQWithChannel returns new RabbitMQ using already opened channel.
func NewRabbitMQWithChannel(channel Channel, exchange string) *RabbitMQ {
	return &RabbitMQ{
		channel:  channel,
		exchange: exchange,
	}
}

// PublishRequest publishes message to routing key, asking for reply to replyTo queue with correlationID.
func (mq *RabbitMQ) PublishRequest(
	ctx context.Context,
	routingKey string,
	replyTo string,
	correlationID string,
	message []byte,
) error {
	msg := amqp.Publishing{
		ContentType:   contentType,
		ReplyTo:       replyTo,
		CorrelationId: correlationID,
		Body:          message,
	}

	return mq.channel.PublishWithContext(ctx, mq.exchange, routingKey, false, false, msg)
}

// Consume consumes messages from queue and passes deliveries to provided handler function.
// It returns channel with errors from handler function and consuming process, closed when consuming ends.
// Function works asynchronously, it consumes messages in background as long as context is not closed.
func (mq *RabbitMQ) Consume(ctx context.Context, queue string, handler HandlerFunc) (<-chan error, error) {
	consumerID, err := uuid.NewUUID()
	if err != nil {
		return nil, fmt.Errorf("can't create consumer ID: %w", err)
	}

	deliveries, err := mq.channel.Consume(
		queue,
		consumerID.String(),
		false, // auto acknowledge
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("can't start consuming: %w", err)
	}

	consumingErrors := make(chan error)
	running := make(chan struct{})
	mq.isRunning = running
	go func() {
		defer close(running)
		defer close(consumingErrors)
		mq.consumeMessages(ctx, deliveries, consumingErrors, handler)
	}()

	// stop deliveries when context is closed, so consuming can finish after in-flight message
	go func() {
		select {
		case <-ctx.Done():
			_ = mq.channel.Cancel(consumerID.String(), false)
		case <-running:
		}
	}()

	return consumingErrors, nil
}

func (mq *RabbitMQ) consumeMessages(
	ctx context.Context,
	deliveries <-chan amqp.Delivery,
	consumingErrors chan error,
	handler HandlerFunc,
) {
	for delivery := range deliveries {
		reply, handlerErr := handler(ctx, delivery.Body)

		var errs []error
		if handlerErr != nil {
			errs = append(errs, handlerErr)
		}
		if err := mq.reply(ctx, &delivery, reply); err != nil {
			errs = append(errs, err)
		}
		if err := settle(&delivery, handlerErr == nil); err != nil {
			errs = append(errs, err)
		}

		for _, err := range errs {
			if pushErr := pushError(ctx, err, consumingErrors); pushErr != nil {
				return
			}
		}

		if ctx.Err() != nil {
			return
		}
	}
}

// reply publishes reply to delivery's reply-to queue through default exchange.
func (mq *RabbitMQ) reply(ctx context.Context, delivery *amqp.Delivery, reply []byte) error {
	if reply == nil || delivery.ReplyTo == "" {
		return nil
	}

	err := mq.channel.PublishWithContext(ctx, "", delivery.ReplyTo, false, false, amqp.Publishing{
		ContentType:   contentType,
		CorrelationId: delivery.CorrelationId,
		Body:          reply,
	})
	if err != nil {
		return fmt.Errorf("can't publish reply: %w", err)
	}

	return nil
}

// settle acks handled delivery and rejects failed one without requeue.
func settle(delivery *amqp.Delivery, handled bool) error {
	if handled {
		if err := delivery.Ack(false); err != nil {
			return fmt.Errorf("can't ack message: %w", err)
		}
		return nil
	}

	if err := delivery.Nack(false, false); err != nil {
		return fmt.Errorf("can't nack message: %w", err)
	}
	return nil
}

// Done returns channel which will be closed when consuming will be finished.
func (mq *RabbitMQ) Done() chan struct{} {
	return mq.isRunning
}

func pushError(ctx context.Context, err error, errChan chan error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case errChan <- err:
	}
	return nil
}
