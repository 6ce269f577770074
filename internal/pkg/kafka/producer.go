package kafka

import (
	"context"
	"stackunderflow/internal/api/config"
	"stackunderflow/internal/service"
	"strconv"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// VoteEventProducer 投票事件的同步生产者，按帖子分区保证单帖事件有序
type VoteEventProducer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewVoteEventProducer(cfg *config.Config) (*VoteEventProducer, error) {
	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, newSaramaConfig(cfg.Kafka))
	if err != nil {
		return nil, err
	}
	return &VoteEventProducer{
		producer: producer,
		topic:    cfg.KafkaVoteConsumer.Topic,
	}, nil
}

func (p *VoteEventProducer) PublishVoteChanged(ctx context.Context, event *service.VoteChangedEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	key := event.PostType + ":" + strconv.FormatUint(event.PostID, 10)
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	return err
}

func (p *VoteEventProducer) Close() error {
	return p.producer.Close()
}
