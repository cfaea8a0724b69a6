package amqp

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-wizard/internal/core/domain"
)

func TestNewPublishing(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	c := domain.NewCampaign("c-1", "Spring Sale", 900, 3, created)

	msg, err := NewPublishing("user-1", c)
	require.NoError(t, err)

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "c-1", msg.MessageId)
	assert.Equal(t, created, msg.Timestamp)

	var body LaunchMessage
	require.NoError(t, json.Unmarshal(msg.Body, &body))
	assert.Equal(t, "user-1", body.Session)
	assert.Equal(t, c, body.Campaign)
}

func TestNotifierNoticesClosedChannel(t *testing.T) {
	n := &Notifier{closed: make(chan *amqp.Error, 1)}
	assert.True(t, n.alive())

	n.closed <- &amqp.Error{Code: amqp.ConnectionForced, Reason: "broker shutdown"}
	assert.False(t, n.alive())

	closed := make(chan *amqp.Error)
	close(closed)
	n.closed = closed
	assert.False(t, n.alive(), "a closed notification channel also means the channel is gone")
}

func TestNotifierLogsLostConnection(t *testing.T) {
	var buf bytes.Buffer
	n := &Notifier{log: slog.New(slog.NewTextHandler(&buf, nil))}

	lost := make(chan *amqp.Error, 1)
	lost <- &amqp.Error{Code: amqp.ConnectionForced, Reason: "broker shutdown"}
	close(lost)
	n.watch(lost)
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "broker shutdown")

	buf.Reset()
	graceful := make(chan *amqp.Error)
	close(graceful)
	n.watch(graceful)
	assert.Empty(t, buf.String())
}
