//go:build unit

package messaging

import (
	"context"
	"errors"
	"testing"

	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
	amqp "github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingChannel struct {
	declared   []string
	published  []amqp.Publishing
	keys       []string
	declareErr error
	publishErr error
	closed     bool
}

func (c *recordingChannel) QueueDeclare(name string, durable, _, _, _ bool, _ amqp.Table) (amqp.Queue, error) {
	if c.declareErr != nil {
		return amqp.Queue{}, c.declareErr
	}
	if durable {
		c.declared = append(c.declared, name)
	}
	return amqp.Queue{Name: name}, nil
}

func (c *recordingChannel) Publish(_, key string, _, _ bool, msg amqp.Publishing) error {
	if c.publishErr != nil {
		return c.publishErr
	}
	c.keys = append(c.keys, key)
	c.published = append(c.published, msg)
	return nil
}

func (c *recordingChannel) Close() error {
	c.closed = true
	return nil
}

func job() shared.NotificationJob {
	return shared.NotificationJob{
		ID:      uuid.New(),
		Kind:    "email",
		Topic:   "order_confirmed",
		Payload: []byte(`{"order_number":"SO-0001"}`),
	}
}

func TestPublisher_Publish(t *testing.T) {
	ch := &recordingChannel{}
	p, err := newPublisher(ch, "rental_notifications")
	require.NoError(t, err)
	assert.Equal(t, []string{"rental_notifications"}, ch.declared)

	j := job()
	require.NoError(t, p.Publish(context.Background(), j))

	require.Len(t, ch.published, 1)
	msg := ch.published[0]
	assert.Equal(t, "rental_notifications", ch.keys[0])
	assert.Equal(t, j.ID.String(), msg.MessageId)
	assert.Equal(t, "order_confirmed", msg.Type)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, "order_confirmed", msg.Headers["topic"])
	assert.Equal(t, "email", msg.Headers["kind"])
	assert.JSONEq(t, `{"order_number":"SO-0001"}`, string(msg.Body))
}

func TestPublisher_Failures(t *testing.T) {
	t.Run("queue declare", func(t *testing.T) {
		_, err := newPublisher(&recordingChannel{declareErr: errors.New("access refused")}, "q")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to declare queue q")
	})

	t.Run("broker rejects publish", func(t *testing.T) {
		p, err := newPublisher(&recordingChannel{publishErr: errors.New("channel closed")}, "q")
		require.NoError(t, err)
		err = p.Publish(context.Background(), job())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to publish order_confirmed")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ch := &recordingChannel{}
		p, err := newPublisher(ch, "q")
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, p.Publish(ctx, job()), context.Canceled)
		assert.Empty(t, ch.published)
	})

	t.Run("publish after close", func(t *testing.T) {
		ch := &recordingChannel{}
		p, err := newPublisher(ch, "q")
		require.NoError(t, err)
		require.NoError(t, p.Close())
		assert.True(t, ch.closed)

		assert.ErrorIs(t, p.Publish(context.Background(), job()), ErrChannelClosed)
		assert.NoError(t, p.Close())
	})
}

func TestLogPublisher(t *testing.T) {
	assert.NoError(t, LogPublisher{}.Publish(context.Background(), job()))
}
