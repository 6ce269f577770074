package service

import (
	"context"
	"errors"
	log "log/slog"
	"stackunderflow/internal/api/dto"
	"stackunderflow/internal/model"
	"stackunderflow/internal/pkg/consts"
	"stackunderflow/internal/pkg/redis"
	"stackunderflow/internal/repository"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

const tallyCacheExpiration = 7 * 24 * time.Hour

type VoteService interface {
	Vote(ctx context.Context, voterID uint64, ref model.PostRef, direction string) (*VoteOutcome, error)
	GetTally(ctx context.Context, ref model.PostRef) (*dto.VoteTallyDTO, error)
}

// postResolver 按帖子类型解析作者，帖子不存在时返回对应错误
type postResolver func(ctx context.Context, id uint64) (*uint64, error)

type voteServiceImpl struct {
	txManager    repository.TxManager
	userRepo     repository.UserRepo
	questionRepo repository.QuestionRepo
	answerRepo   repository.AnswerRepo
	voteRepo     repository.VoteRepo
	reputation   ReputationService
	publisher    VoteEventPublisher
	resolvers    map[string]postResolver
}

func NewVoteService(
	txManager repository.TxManager,
	userRepo repository.UserRepo,
	questionRepo repository.QuestionRepo,
	answerRepo repository.AnswerRepo,
	voteRepo repository.VoteRepo,
	reputation ReputationService,
	publisher VoteEventPublisher,
) VoteService {
	s := &voteServiceImpl{
		txManager:    txManager,
		userRepo:     userRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		voteRepo:     voteRepo,
		reputation:   reputation,
		publisher:    publisher,
	}
	s.resolvers = map[string]postResolver{
		model.PostTypeQuestion: s.resolveQuestion,
		model.PostTypeAnswer:   s.resolveAnswer,
	}
	return s
}

// Vote 投票状态机入口：无票则投、同向则撤、反向则翻转
func (s *voteServiceImpl) Vote(ctx context.Context, voterID uint64, ref model.PostRef, direction string) (*VoteOutcome, error) {
	if direction != VoteDirectionUp && direction != VoteDirectionDown {
		return nil, ErrParamInvalid
	}
	resolver, ok := s.resolvers[ref.Kind]
	if !ok {
		return nil, ErrParamInvalid
	}

	authorID, err := resolver(ctx, ref.ID)
	if err != nil {
		return nil, err
	}

	voter, err := s.userRepo.GetUserById(ctx, voterID)
	if err != nil {
		return nil, err
	}
	if voter == nil {
		return nil, ErrUserNotFound
	}
	if authorID != nil && *authorID == voterID {
		return nil, ErrSelfVote
	}
	if voter.ReputationPoints <= consts.ReputationThreshold {
		return nil, ErrReputationTooLow
	}

	outcome, event, err := s.applyOnce(ctx, voterID, ref, direction, authorID)
	if isDuplicateError(err) {
		// 并发创建撞上唯一键，重读一次后按翻转或撤销处理
		outcome, event, err = s.applyOnce(ctx, voterID, ref, direction, authorID)
		if isDuplicateError(err) {
			return nil, ErrVoteConflict
		}
	}
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishVoteChanged(ctx, event); err != nil {
			log.Error("publish vote changed failed", "eventID", event.EventID, "err", err)
		}
	}

	return outcome, nil
}

func (s *voteServiceImpl) applyOnce(ctx context.Context, voterID uint64, ref model.PostRef, direction string, authorID *uint64) (*VoteOutcome, *VoteChangedEvent, error) {
	var outcome *VoteOutcome
	var event *VoteChangedEvent

	err := s.txManager.WithinTx(ctx, func(repos *repository.TxRepos) error {
		existing, err := repos.Votes.GetForUpdate(ctx, ref.ID, ref.Kind, voterID)
		if err != nil {
			return err
		}

		switch {
		case existing == nil:
			vote := &model.Vote{
				PostID:   ref.ID,
				PostType: ref.Kind,
				UserID:   voterID,
				Upvote:   direction == VoteDirectionUp,
				Downvote: direction == VoteDirectionDown,
			}
			if err := repos.Votes.CreateVote(ctx, vote); err != nil {
				return err
			}
			outcome = &VoteOutcome{Transition: VoteCreated, To: direction}

		case currentDirection(existing) == direction:
			if err := repos.Votes.DeleteVote(ctx, existing.ID); err != nil {
				return err
			}
			outcome = &VoteOutcome{Transition: VoteRetracted, From: direction}

		default:
			// 更新可能原地改写同一行，先留存原方向
			from := currentDirection(existing)
			up := direction == VoteDirectionUp
			if err := repos.Votes.UpdateDirections(ctx, existing.ID, up, !up); err != nil {
				return err
			}
			outcome = &VoteOutcome{Transition: VoteFlipped, From: from, To: direction}
		}

		event = &VoteChangedEvent{
			EventID:      uuid.NewString(),
			PostID:       ref.ID,
			PostType:     ref.Kind,
			PostAuthorID: authorID,
			VoterID:      voterID,
			Transition:   outcome.Transition,
			From:         outcome.From,
			To:           outcome.To,
			OccurredAt:   time.Now(),
		}

		return s.reputation.React(ctx, repos, event)
	})
	if err != nil {
		return nil, nil, err
	}
	return outcome, event, nil
}

// GetTally 优先读缓存，缓存缺失时回源数据库并回填
func (s *voteServiceImpl) GetTally(ctx context.Context, ref model.PostRef) (*dto.VoteTallyDTO, error) {
	resolver, ok := s.resolvers[ref.Kind]
	if !ok {
		return nil, ErrParamInvalid
	}
	if _, err := resolver(ctx, ref.ID); err != nil {
		return nil, err
	}

	upKey := consts.VoteUpCountKey + ref.Kind + ":" + strconv.FormatUint(ref.ID, 10)
	downKey := consts.VoteDownCountKey + ref.Kind + ":" + strconv.FormatUint(ref.ID, 10)

	if redis.Ready() {
		upvotes, upErr := redis.GetInt64(ctx, upKey)
		downvotes, downErr := redis.GetInt64(ctx, downKey)
		if upErr == nil && downErr == nil {
			return &dto.VoteTallyDTO{
				Upvotes:   upvotes,
				Downvotes: downvotes,
				Score:     upvotes - downvotes,
			}, nil
		}
	}

	upvotes, downvotes, err := s.voteRepo.CountByPost(ctx, ref.ID, ref.Kind)
	if err != nil {
		return nil, err
	}
	if redis.Ready() {
		_ = redis.SetWithExpiration(ctx, upKey, upvotes, tallyCacheExpiration)
		_ = redis.SetWithExpiration(ctx, downKey, downvotes, tallyCacheExpiration)
	}
	return &dto.VoteTallyDTO{
		Upvotes:   upvotes,
		Downvotes: downvotes,
		Score:     upvotes - downvotes,
	}, nil
}

func (s *voteServiceImpl) resolveQuestion(ctx context.Context, id uint64) (*uint64, error) {
	question, err := s.questionRepo.GetQuestionById(ctx, id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}
	return question.AuthorID, nil
}

func (s *voteServiceImpl) resolveAnswer(ctx context.Context, id uint64) (*uint64, error) {
	answer, err := s.answerRepo.GetAnswerById(ctx, id)
	if err != nil {
		return nil, err
	}
	if answer == nil {
		return nil, ErrAnswerNotFound
	}
	authorID := answer.AuthorID
	return &authorID, nil
}

func currentDirection(vote *model.Vote) string {
	if vote.Upvote {
		return VoteDirectionUp
	}
	return VoteDirectionDown
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return false
}
