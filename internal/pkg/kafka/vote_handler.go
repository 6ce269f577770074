package kafka

import (
	"context"
	log "log/slog"
	"stackunderflow/internal/pkg/consts"
	"stackunderflow/internal/pkg/redis"
	"stackunderflow/internal/service"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const dedupExpiration = 24 * time.Hour

// VoteTallyHandler 消费投票事件，维护缓存中的票数并登记待核对集合
type VoteTallyHandler struct{}

func NewVoteTallyHandler() *VoteTallyHandler {
	return &VoteTallyHandler{}
}

func (s *VoteTallyHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("vote tally consumer setup")
	return nil
}

func (s *VoteTallyHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("vote tally consumer cleanup")
	return nil
}

func (s *VoteTallyHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-vote-changed consume claim")
	err := consumeInBatches(session, claim, s.logic)
	if err != nil {
		log.Error("topic-vote-changed process batch error", "err", err)
		return err
	}
	return nil
}

func (s *VoteTallyHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event service.VoteChangedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		// 坏消息无法重试，记录后跳过
		log.Error("unmarshal vote event error", "err", err)
		return nil
	}
	if event.EventID == "" {
		return nil
	}

	// 事件 ID 去重，重投递的消息只生效一次
	acquired, err := redis.TryLock(ctx, consts.VoteEventDedup+event.EventID, "1", dedupExpiration, 0)
	if err != nil {
		return errors.Wrap(err, "vote event dedup check")
	}
	if !acquired {
		return nil
	}

	suffix := event.PostType + ":" + strconv.FormatUint(event.PostID, 10)
	upKey := consts.VoteUpCountKey + suffix
	downKey := consts.VoteDownCountKey + suffix

	for key, delta := range tallyDeltas(&event, upKey, downKey) {
		if delta == 0 {
			continue
		}
		if err := redis.IncrBy(ctx, key, delta); err != nil {
			return errors.Wrapf(err, "adjust tally key %s", key)
		}
	}

	// 登记到脏集合，定时任务以数据库计数校准缓存
	if err := redis.SAdd(ctx, consts.VoteTallyDirty, suffix); err != nil {
		return errors.Wrap(err, "mark tally dirty")
	}

	log.InfoContext(ctx, "vote event applied",
		"eventID", event.EventID, "transition", event.Transition, "post", suffix)
	return nil
}

// tallyDeltas 状态迁移对应的票数增量
func tallyDeltas(event *service.VoteChangedEvent, upKey string, downKey string) map[string]int64 {
	deltas := map[string]int64{}
	switch event.Transition {
	case service.VoteCreated:
		if event.To == service.VoteDirectionUp {
			deltas[upKey] = 1
		} else {
			deltas[downKey] = 1
		}
	case service.VoteRetracted:
		if event.From == service.VoteDirectionUp {
			deltas[upKey] = -1
		} else {
			deltas[downKey] = -1
		}
	case service.VoteFlipped:
		if event.To == service.VoteDirectionUp {
			deltas[upKey] = 1
			deltas[downKey] = -1
		} else {
			deltas[upKey] = -1
			deltas[downKey] = 1
		}
	}
	return deltas
}
