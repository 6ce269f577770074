package kafka

import (
	"context"
	log "log/slog"
	"stackunderflow/internal/api/config"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	voteConsumer sarama.ConsumerGroup
	voteHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager 构造函数
func NewConsumerManager(cfg *config.Config) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	voteConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaVoteConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &ConsumerManager{
		voteConsumer: voteConsumer,
		voteHandler:  NewVoteTallyHandler(),
	}, nil
}

// Start 启动所有消费者，阻塞直至 ctx 取消
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go func() {
		topic := cfg.KafkaVoteConsumer.Topic
		log.Info("Vote consumer started", "topic", topic)
		for {
			if err := m.voteConsumer.Consume(ctx, []string{topic}, m.voteHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.voteConsumer.Close(); err != nil {
		log.Error("Failed to close vote consumer", "err", err)
	}

	return nil
}
