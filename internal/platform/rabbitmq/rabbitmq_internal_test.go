package rabbitmq

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitConsume(t *testing.T) {
	ack := &fakeAcknowledger{}
	channel := &fakeChannel{deliveries: make(chan amqp.Delivery, 3)}
	channel.deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: []byte("ok"), ReplyTo: "replies", CorrelationId: "c-1"}
	channel.deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 2, Body: []byte("fail"), ReplyTo: "replies", CorrelationId: "c-2"}
	channel.deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 3, Body: []byte("no reply")}
	close(channel.deliveries)

	mq := NewRabbitMQWithChannel(channel, "ex")
	errs, err := mq.Consume(context.Background(), "commands", func(_ context.Context, message []byte) ([]byte, error) {
		reply := append([]byte("re: "), message...)
		if string(message) == "fail" {
			return reply, assert.AnError
		}
		return reply, nil
	})
	require.NoError(t, err, "shouldn't return any error")

	var handlingErrors atomic.Int32
	go func() {
		for err := range errs {
			assert.ErrorIs(t, err, assert.AnError, "should push handler error")
			handlingErrors.Add(1)
		}
	}()

	select {
	case <-mq.Done():
	case <-time.After(time.Second):
		require.FailNow(t, "consuming should finish when deliveries are closed")
	}

	assert.Equal(t, "commands", channel.queue, "should consume from queue")
	assert.Equal(t, []uint64{1, 3}, ack.acked, "should ack handled messages")
	assert.Equal(t, []uint64{2}, ack.nacked, "should nack failed messages")

	require.Len(t, channel.published, 2, "should reply only to messages with reply-to")
	assert.Equal(t, publishing{key: "replies", correlationID: "c-1", body: "re: ok"}, channel.published[0], "should reply to handled message")
	assert.Equal(t, publishing{key: "replies", correlationID: "c-2", body: "re: fail"}, channel.published[1], "should reply to failed message")

	assert.Eventually(t, func() bool { return handlingErrors.Load() == 1 }, time.Second, 10*time.Millisecond,
		"should push handling error")
}

func TestUnitConsumeCancel(t *testing.T) {
	channel := &fakeChannel{deliveries: make(chan amqp.Delivery)}
	ctx, cancel := context.WithCancel(context.Background())

	mq := NewRabbitMQWithChannel(channel, "ex")
	_, err := mq.Consume(ctx, "commands", func(context.Context, []byte) ([]byte, error) {
		return nil, nil
	})
	require.NoError(t, err, "shouldn't return any error")

	cancel()

	select {
	case <-mq.Done():
	case <-time.After(time.Second):
		require.FailNow(t, "consuming should finish when context is closed")
	}
	channel.mu.Lock()
	defer channel.mu.Unlock()
	assert.Len(t, channel.cancelled, 1, "should cancel consumer")
}

func TestUnitPublishRequest(t *testing.T) {
	channel := &fakeChannel{}
	mq := NewRabbitMQWithChannel(channel, "ex")

	err := mq.PublishRequest(context.TODO(), "cmd.convert", "replies", "c-1", []byte("{}"))

	require.NoError(t, err, "shouldn't return any error")
	require.Len(t, channel.published, 1, "should publish message")
	assert.Equal(t, publishing{
		exchange:      "ex",
		key:           "cmd.convert",
		replyTo:       "replies",
		correlationID: "c-1",
		body:          "{}",
	}, channel.published[0], "should publish request with reply-to and correlation id")
}

type publishing struct {
	exchange      string
	key           string
	replyTo       string
	correlationID string
	body          string
}

type fakeChannel struct {
	mu         sync.Mutex
	deliveries chan amqp.Delivery
	queue      string
	published  []publishing
	cancelled  []string
}

func (c *fakeChannel) PublishWithContext(
	_ context.Context,
	exchange, key string,
	_, _ bool,
	msg amqp.Publishing,
) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.published = append(c.published, publishing{
		exchange:      exchange,
		key:           key,
		replyTo:       msg.ReplyTo,
		correlationID: msg.CorrelationId,
		body:          string(msg.Body),
	})
	return nil
}

func (c *fakeChannel) Consume(
	queue, _ string,
	_, _, _, _ bool,
	_ amqp.Table,
) (<-chan amqp.Delivery, error) {
	c.queue = queue
	return c.deliveries, nil
}

func (c *fakeChannel) Cancel(consumer string, _ bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelled = append(c.cancelled, consumer)
	if c.deliveries != nil {
		close(c.deliveries)
	}
	return nil
}

type fakeAcknowledger struct {
	acked  []uint64
	nacked []uint64
}

func (a *fakeAcknowledger) Ack(tag uint64, _ bool) error {
	a.acked = append(a.acked, tag)
	return nil
}

func (a *fakeAcknowledger) Nack(tag uint64, _, _ bool) error {
	a.nacked = append(a.nacked, tag)
	return nil
}

func (a *fakeAcknowledger) Reject(tag uint64, _ bool) error {
	a.nacked = append(a.nacked, tag)
	return nil
}
