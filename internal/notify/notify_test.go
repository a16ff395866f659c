package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/business_hub_app/internal/core/domain"
	"github.com/SscSPs/business_hub_app/internal/middleware"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	exchange, key string
	msg           amqp091.Publishing
	err           error
}

func (f *fakePublisher) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp091.Publishing) error {
	f.exchange, f.key, f.msg = exchange, key, msg
	return f.err
}

type captureNotifier struct{ got []domain.Notification }

func (c *captureNotifier) Notify(_ context.Context, n domain.Notification) { c.got = append(c.got, n) }

func loggerCtx(buf *bytes.Buffer) context.Context {
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	return middleware.WithLogger(context.Background(), logger)
}

func TestAMQPNotifier_PublishesJSON(t *testing.T) {
	pub := &fakePublisher{}
	n := &AMQPNotifier{channel: pub, exchange: "businesshub", queue: "businesshub.notifications"}
	at := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	n.Notify(context.Background(), domain.Notification{
		Message: "Client added successfully.", Severity: domain.SeveritySuccess, Action: "client.create", At: at,
	})

	assert.Equal(t, "businesshub", pub.exchange)
	assert.Equal(t, "businesshub.notifications", pub.key)
	assert.Equal(t, "application/json", pub.msg.ContentType)
	assert.Equal(t, amqp091.Persistent, pub.msg.DeliveryMode)
	assert.Equal(t, "client.create", pub.msg.Type)

	var body domain.Notification
	require.NoError(t, json.Unmarshal(pub.msg.Body, &body))
	assert.Equal(t, "Client added successfully.", body.Message)
	assert.Equal(t, domain.SeveritySuccess, body.Severity)
	assert.True(t, at.Equal(body.At))
}

func TestAMQPNotifier_PublishFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	n := &AMQPNotifier{channel: &fakePublisher{err: errors.New("channel closed")}, exchange: "x", queue: "q"}

	n.Notify(loggerCtx(&buf), domain.Notification{Message: "Data exported.", Action: "data.export"})

	assert.Contains(t, buf.String(), "Failed to publish notification")
	assert.Contains(t, buf.String(), "channel closed")
}

func TestLogNotifier_LevelFollowsSeverity(t *testing.T) {
	var buf bytes.Buffer
	ctx := loggerCtx(&buf)

	LogNotifier{}.Notify(ctx, domain.Notification{Message: "Record not found.", Severity: domain.SeverityError, Action: "client.delete"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "Record not found.", entry["message"])
	assert.Equal(t, "client.delete", entry["action"])
}

func TestMulti_FansOutAndSkipsNil(t *testing.T) {
	a, b := &captureNotifier{}, &captureNotifier{}
	m := Multi{a, nil, b}

	m.Notify(context.Background(), domain.Notification{Message: "Data imported."})

	require.Len(t, a.got, 1)
	require.Len(t, b.got, 1)
	assert.Equal(t, "Data imported.", b.got[0].Message)
}
