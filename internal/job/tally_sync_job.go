package job

import (
	"context"
	log "log/slog"
	"stackunderflow/internal/pkg/consts"
	"stackunderflow/internal/pkg/logger"
	"stackunderflow/internal/pkg/redis"
	"stackunderflow/internal/repository"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const tallySyncBatch = 128

// TallySyncJob 用数据库中的投票行校准缓存票数，消除消费端的计数漂移
type TallySyncJob struct {
	voteRepo repository.VoteRepo
}

func NewTallySyncJob(voteRepo repository.VoteRepo) *TallySyncJob {
	return &TallySyncJob{voteRepo: voteRepo}
}

func (s *TallySyncJob) Run() {
	ctx := logger.WithTraceID(context.Background(), "job-tally-"+uuid.NewString())

	if !redis.Ready() {
		return
	}

	members, err := redis.SPopN(ctx, consts.VoteTallyDirty, tallySyncBatch)
	if err != nil {
		log.ErrorContext(ctx, "pop tally dirty set error", "err", err)
		return
	}
	if len(members) == 0 {
		return
	}

	synced := 0
	for _, member := range members {
		postType, postID, ok := parsePostKey(member)
		if !ok {
			log.WarnContext(ctx, "invalid tally dirty member", "member", member)
			continue
		}

		upvotes, downvotes, err := s.voteRepo.CountByPost(ctx, postID, postType)
		if err != nil {
			log.ErrorContext(ctx, "count votes error", "member", member, "err", err)
			// 回灌脏集合，下一轮重试
			_ = redis.SAdd(ctx, consts.VoteTallyDirty, member)
			continue
		}

		_ = redis.SetWithExpiration(ctx, consts.VoteUpCountKey+member, upvotes, 7*24*time.Hour)
		_ = redis.SetWithExpiration(ctx, consts.VoteDownCountKey+member, downvotes, 7*24*time.Hour)
		synced++
	}

	if synced > 0 {
		log.InfoContext(ctx, "tally sync job finished", "synced", synced)
	}
}

// parsePostKey 拆解 "POST_TYPE:post_id" 形式的成员
func parsePostKey(member string) (string, uint64, bool) {
	idx := strings.LastIndex(member, ":")
	if idx <= 0 || idx == len(member)-1 {
		return "", 0, false
	}
	postID, err := strconv.ParseUint(member[idx+1:], 10, 64)
	if err != nil || postID == 0 {
		return "", 0, false
	}
	return member[:idx], postID, true
}
