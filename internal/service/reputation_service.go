package service

import (
	"context"
	log "log/slog"
	"stackunderflow/internal/model"
	"stackunderflow/internal/repository"
)

const ReputationPerVote = 10

const (
	ActionUpvoteReceived    = "UPVOTE_RECEIVED"
	ActionDownvoteReceived  = "DOWNVOTE_RECEIVED"
	ActionUpvoteRetracted   = "UPVOTE_RETRACTED"
	ActionDownvoteRetracted = "DOWNVOTE_RETRACTED"
)

// reputationDelta 单笔声望变更，Clamped 表示该笔变更受零下限保护
type reputationDelta struct {
	Amount  int
	Action  string
	Clamped bool
}

type ReputationService interface {
	React(ctx context.Context, repos *repository.TxRepos, event *VoteChangedEvent) error
}

type reputationServiceImpl struct{}

func NewReputationService() ReputationService {
	return &reputationServiceImpl{}
}

// React 根据投票事件调整帖子作者的声望，须与投票写入处于同一事务
func (s *reputationServiceImpl) React(ctx context.Context, repos *repository.TxRepos, event *VoteChangedEvent) error {
	if event.PostAuthorID == nil {
		return nil
	}
	authorID := *event.PostAuthorID

	deltas := deriveDeltas(event)
	if len(deltas) == 0 {
		return nil
	}

	author, err := repos.Users.GetUserForUpdate(ctx, authorID)
	if err != nil {
		return err
	}
	if author == nil {
		return nil
	}

	running := author.ReputationPoints
	for _, delta := range deltas {
		applied := delta.Amount
		if delta.Clamped && running+applied < 0 {
			log.Warn("reputation clamped at zero",
				"userID", authorID, "action", delta.Action, "eventID", event.EventID)
			applied = 0
		}

		if applied != 0 {
			if err := repos.Users.AddReputation(ctx, authorID, applied); err != nil {
				return err
			}
		}
		running += applied

		if err := repos.ReputationLogs.CreateLog(ctx, &model.ReputationLog{
			UserID:  authorID,
			Amount:  applied,
			Action:  delta.Action,
			EventID: event.EventID,
		}); err != nil {
			return err
		}
	}

	return nil
}

// deriveDeltas 把状态迁移展开为独立的变更笔目，翻转视为撤销加新投两笔
func deriveDeltas(event *VoteChangedEvent) []reputationDelta {
	switch event.Transition {
	case VoteCreated:
		if event.To == VoteDirectionUp {
			return []reputationDelta{{Amount: ReputationPerVote, Action: ActionUpvoteReceived}}
		}
		return []reputationDelta{{Amount: -ReputationPerVote, Action: ActionDownvoteReceived, Clamped: true}}

	case VoteRetracted:
		if event.From == VoteDirectionUp {
			return []reputationDelta{{Amount: -ReputationPerVote, Action: ActionUpvoteRetracted}}
		}
		return []reputationDelta{{Amount: ReputationPerVote, Action: ActionDownvoteRetracted}}

	case VoteFlipped:
		if event.From == VoteDirectionUp {
			return []reputationDelta{
				{Amount: -ReputationPerVote, Action: ActionUpvoteRetracted},
				{Amount: -ReputationPerVote, Action: ActionDownvoteReceived, Clamped: true},
			}
		}
		return []reputationDelta{
			{Amount: ReputationPerVote, Action: ActionDownvoteRetracted},
			{Amount: ReputationPerVote, Action: ActionUpvoteReceived},
		}
	}
	return nil
}
