package kafka

import (
	"context"
	log "log/slog"
	"sync"
	"time"

	"github.com/IBM/sarama"
)

const (
	batchSize        = 32
	batchTimeout     = 1 * time.Second
	maxRetryInterval = 5 * time.Second
)

type MessageFunc func(ctx context.Context, msg *sarama.ConsumerMessage) error

// consumeInBatches 攒批消费：攒满或超时即处理，claim 关闭前冲掉残留
func consumeInBatches(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim, handle MessageFunc) error {
	batch := make([]*sarama.ConsumerMessage, 0, batchSize)
	ticker := time.NewTicker(batchTimeout)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		processBatch(session, batch, handle)
		batch = batch[:0]
	}

	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				flush()
				return nil
			}
			batch = append(batch, msg)
			if len(batch) >= batchSize {
				flush()
				ticker.Reset(batchTimeout)
			}
		case <-ticker.C:
			flush()
		case <-session.Context().Done():
			return nil
		}
	}
}

// processBatch 并发处理一批消息；单条失败指数退避重试，整批成功才提交位点
func processBatch(session sarama.ConsumerGroupSession, messages []*sarama.ConsumerMessage, handle MessageFunc) {
	var wg sync.WaitGroup

	for _, msg := range messages {
		wg.Add(1)
		go func(m *sarama.ConsumerMessage) {
			defer wg.Done()
			backoff := 100 * time.Millisecond

			for {
				err := handle(session.Context(), m)
				if err == nil {
					return
				}
				log.Error("消息处理失败，稍后重试",
					"topic", m.Topic, "partition", m.Partition, "offset", m.Offset, "err", err)

				select {
				case <-session.Context().Done():
					return
				case <-time.After(backoff):
				}

				if backoff *= 2; backoff > maxRetryInterval {
					backoff = maxRetryInterval
				}
			}
		}(msg)
	}

	wg.Wait()
	session.MarkMessage(messages[len(messages)-1], "")
}
