//go:build unit

package notify

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"locker-hub/internal/domain/locker"
	"locker-hub/internal/pkg/config"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type mockChannel struct {
	mock.Mock
}

func (m *mockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func (m *mockChannel) Close() error {
	return m.Called().Error(0)
}

type mockWriter struct {
	mock.Mock
}

func (m *mockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *mockWriter) Close() error {
	return m.Called().Error(0)
}

func sampleEvent() locker.Event {
	reservationID := uuid.New()
	return locker.Event{
		Type:          locker.EventReserved,
		LockerID:      uuid.New(),
		Status:        locker.StatusOccupied,
		ReservationID: &reservationID,
		OccurredAt:    time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestAMQPPublisher_Publish(t *testing.T) {
	event := sampleEvent()

	t.Run("persistent json message on the queue", func(t *testing.T) {
		ch := new(mockChannel)
		ch.On("PublishWithContext", mock.Anything, "", "locker.status", false, false, mock.MatchedBy(func(msg amqp.Publishing) bool {
			var got locker.Event
			if err := json.Unmarshal(msg.Body, &got); err != nil {
				return false
			}
			return msg.DeliveryMode == amqp.Persistent &&
				msg.ContentType == "application/json" &&
				got.LockerID == event.LockerID &&
				got.Type == locker.EventReserved
		})).Return(nil)

		p := newAMQPPublisher(ch, "locker.status", testLogger)
		require.NoError(t, p.Publish(context.Background(), event))
		ch.AssertExpectations(t)
	})

	t.Run("broker error is returned", func(t *testing.T) {
		ch := new(mockChannel)
		ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(amqp.ErrClosed)

		p := newAMQPPublisher(ch, "locker.status", testLogger)
		err := p.Publish(context.Background(), event)

		assert.ErrorIs(t, err, amqp.ErrClosed)
	})
}

func TestKafkaPublisher_Publish(t *testing.T) {
	event := sampleEvent()

	t.Run("keyed by locker id", func(t *testing.T) {
		w := new(mockWriter)
		w.On("WriteMessages", mock.Anything, mock.MatchedBy(func(msgs []kafka.Message) bool {
			return len(msgs) == 1 && string(msgs[0].Key) == event.LockerID.String()
		})).Return(nil)

		p := newKafkaPublisher(w, "locker.status", testLogger)
		require.NoError(t, p.Publish(context.Background(), event))
		w.AssertExpectations(t)
	})

	t.Run("writer error is returned", func(t *testing.T) {
		w := new(mockWriter)
		w.On("WriteMessages", mock.Anything, mock.Anything).Return(assert.AnError)

		p := newKafkaPublisher(w, "locker.status", testLogger)
		assert.ErrorIs(t, p.Publish(context.Background(), event), assert.AnError)
	})
}

func TestNew(t *testing.T) {
	p, err := New(config.NotifyConfig{Driver: "log"}, testLogger)
	require.NoError(t, err)
	assert.IsType(t, &LogPublisher{}, p)
	assert.NoError(t, p.Publish(context.Background(), sampleEvent()))

	_, err = New(config.NotifyConfig{Driver: "carrier-pigeon"}, testLogger)
	assert.Error(t, err)
}
