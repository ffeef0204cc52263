package events

import (
	"context"
	"encoding/json"

	"github.com/Astemirdum/book-exchange/exchange/internal/model"
	"github.com/Astemirdum/book-exchange/pkg/kafka"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

type Publisher interface {
	Publish(ctx context.Context, event model.ListEvent) error
	Close() error
}

var (
	_ Publisher = (*KafkaPublisher)(nil)
	_ Publisher = Noop{}
)

// KafkaPublisher sends list change events keyed by user id, so events of
// one user keep their order within a partition.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	log      *zap.Logger
}

func NewKafkaPublisher(producer sarama.SyncProducer, topic string, log *zap.Logger) *KafkaPublisher {
	if topic == "" {
		topic = kafka.BookListTopic
	}
	return &KafkaPublisher{
		producer: producer,
		topic:    topic,
		log:      log.Named("events"),
	}
}

// NewPublisher returns a no-op publisher when no brokers are configured.
func NewPublisher(cfg kafka.Config, log *zap.Logger) (Publisher, error) {
	if !cfg.Enabled() {
		log.Info("kafka brokers are not configured, list events are disabled")
		return Noop{}, nil
	}
	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, err
	}
	return NewKafkaPublisher(producer, cfg.Topic, log), nil
}

func (p *KafkaPublisher) Publish(_ context.Context, event model.ListEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.UserID.String()),
		Value: sarama.ByteEncoder(data),
	}
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return err
	}
	p.log.Debug("published",
		zap.String("type", string(event.Type)),
		zap.String("list", string(event.List)),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
	)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

type Noop struct{}

func (Noop) Publish(context.Context, model.ListEvent) error { return nil }

func (Noop) Close() error { return nil }
