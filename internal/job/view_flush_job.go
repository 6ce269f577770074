package job

import (
	"context"
	log "log/slog"
	"stackunderflow/internal/pkg/consts"
	"stackunderflow/internal/pkg/logger"
	"stackunderflow/internal/pkg/redis"
	"stackunderflow/internal/repository"
	"strconv"

	"github.com/google/uuid"
)

const viewFlushBatch = 256

// ViewFlushJob 把缓存里累积的浏览计数批量刷回数据库
type ViewFlushJob struct {
	questionRepo repository.QuestionRepo
}

func NewViewFlushJob(questionRepo repository.QuestionRepo) *ViewFlushJob {
	return &ViewFlushJob{questionRepo: questionRepo}
}

func (s *ViewFlushJob) Run() {
	ctx := logger.WithTraceID(context.Background(), "job-view-"+uuid.NewString())

	if !redis.Ready() {
		return
	}

	members, err := redis.SPopN(ctx, consts.QuestionViewDirty, viewFlushBatch)
	if err != nil {
		log.ErrorContext(ctx, "pop view dirty set error", "err", err)
		return
	}
	if len(members) == 0 {
		return
	}

	flushed := 0
	for _, member := range members {
		questionID, err := strconv.ParseUint(member, 10, 64)
		if err != nil || questionID == 0 {
			continue
		}

		delta, err := redis.GetDelInt64(ctx, consts.QuestionViewKey+member)
		if err != nil {
			log.ErrorContext(ctx, "read view counter error", "questionID", questionID, "err", err)
			_ = redis.SAdd(ctx, consts.QuestionViewDirty, member)
			continue
		}
		if delta == 0 {
			continue
		}

		if err := s.questionRepo.AddViewCount(ctx, questionID, delta); err != nil {
			log.ErrorContext(ctx, "flush view count error", "questionID", questionID, "err", err)
			// 数据库失败时把增量放回缓存，避免丢失
			_ = redis.IncrBy(ctx, consts.QuestionViewKey+member, delta)
			_ = redis.SAdd(ctx, consts.QuestionViewDirty, member)
			continue
		}
		flushed++
	}

	if flushed > 0 {
		log.InfoContext(ctx, "view flush job finished", "flushed", flushed)
	}
}
