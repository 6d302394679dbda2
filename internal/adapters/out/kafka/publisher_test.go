package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func TestBrokers(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, Brokers(" a:9092, ,b:9092 "))
	assert.Empty(t, Brokers(""))
}

func TestNewWriter(t *testing.T) {
	w := NewWriter([]string{"localhost:9092"}, "order-events")

	assert.Equal(t, "order-events", w.Topic)
	assert.Equal(t, kafka.RequireOne, w.RequiredAcks)
	assert.IsType(t, &kafka.Hash{}, w.Balancer)
}

func TestPublisher_Publish(t *testing.T) {
	ctx := t.Context()
	writer := new(MockWriter)
	publisher := NewPublisher(writer)

	orderID := kernel.NewUUID()
	msg := ports.OutboxMessage{
		ID:          kernel.NewUUID(),
		EventName:   order.EventStatusChanged,
		AggregateID: orderID,
		Payload:     []byte(`{"from":"PENDING","to":"PROCESSING"}`),
		CreatedAt:   time.Date(2025, 5, 6, 7, 8, 9, 0, time.UTC),
	}

	writer.On("WriteMessages", ctx, mock.MatchedBy(func(msgs []kafka.Message) bool {
		if len(msgs) != 1 {
			return false
		}
		m := msgs[0]
		return string(m.Key) == orderID.String() &&
			string(m.Value) == string(msg.Payload) &&
			m.Time.Equal(msg.CreatedAt) &&
			len(m.Headers) == 2 &&
			m.Headers[0].Key == EventNameHeader &&
			string(m.Headers[0].Value) == order.EventStatusChanged
	})).Return(nil).Once()

	require.NoError(t, publisher.Publish(ctx, msg))
	writer.AssertExpectations(t)
}

func TestPublisher_PublishNothing(t *testing.T) {
	writer := new(MockWriter)

	require.NoError(t, NewPublisher(writer).Publish(t.Context()))
	writer.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
}

func TestPublisher_WriteError(t *testing.T) {
	ctx := t.Context()
	writer := new(MockWriter)
	failure := errors.New("leader not available")
	writer.On("WriteMessages", ctx, mock.Anything).Return(failure).Once()

	err := NewPublisher(writer).Publish(ctx, ports.OutboxMessage{ID: kernel.NewUUID(), AggregateID: kernel.NewUUID()})
	require.ErrorIs(t, err, failure)
}
