package events_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/book-exchange/exchange/internal/events"
	"github.com/Astemirdum/book-exchange/exchange/internal/model"
	"github.com/Astemirdum/book-exchange/pkg/kafka"
)

func TestKafkaPublisher_Publish(t *testing.T) {
	event := model.ListEvent{
		Type:   model.ListEventAdded,
		List:   model.ListWanted,
		UserID: uuid.New(),
		BookID: uuid.New(),
		At:     time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		require.Equal(t, "lists", msg.Topic)

		key, err := msg.Key.Encode()
		require.NoError(t, err)
		require.Equal(t, event.UserID.String(), string(key))

		value, err := msg.Value.Encode()
		require.NoError(t, err)
		var got model.ListEvent
		require.NoError(t, json.Unmarshal(value, &got))
		require.Equal(t, event, got)
		return nil
	})

	p := events.NewKafkaPublisher(producer, "lists", zap.NewNop())
	require.NoError(t, p.Publish(context.Background(), event))
	require.NoError(t, p.Close())
}

func TestKafkaPublisher_PublishFails(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := events.NewKafkaPublisher(producer, "", zap.NewNop())
	err := p.Publish(context.Background(), model.ListEvent{Type: model.ListEventRemoved, List: model.ListOffered})
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, p.Close())
}

func TestNewPublisher_Disabled(t *testing.T) {
	p, err := events.NewPublisher(kafka.Config{}, zap.NewNop())
	require.NoError(t, err)
	require.IsType(t, events.Noop{}, p)
	require.NoError(t, p.Publish(context.Background(), model.ListEvent{}))
	require.NoError(t, p.Close())
}
