package service

import (
	"context"
	"stackunderflow/internal/api/dto"
	"stackunderflow/internal/model"
	"stackunderflow/internal/repository"

	"github.com/jinzhu/copier"
)

// answerPatchable PATCH 请求允许出现的字段
var answerPatchable = map[string]bool{
	"answer_body": true,
	"is_accepted": true,
}

type AnswerService interface {
	CreateAnswer(ctx context.Context, authorID uint64, questionID uint64, req *dto.AnswerCreateDTO) (*dto.AnswerDTO, error)
	GetAnswer(ctx context.Context, id uint64) (*dto.AnswerDTO, error)
	ListAnswers(ctx context.Context, questionID uint64) ([]*dto.AnswerDTO, error)
	UpdateAnswer(ctx context.Context, userID uint64, id uint64, fields map[string]interface{}) error
}

type answerServiceImpl struct {
	txManager    repository.TxManager
	answerRepo   repository.AnswerRepo
	questionRepo repository.QuestionRepo
}

func NewAnswerService(
	txManager repository.TxManager,
	answerRepo repository.AnswerRepo,
	questionRepo repository.QuestionRepo,
) AnswerService {
	return &answerServiceImpl{
		txManager:    txManager,
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
	}
}

func (s *answerServiceImpl) CreateAnswer(ctx context.Context, authorID uint64, questionID uint64, req *dto.AnswerCreateDTO) (*dto.AnswerDTO, error) {
	question, err := s.questionRepo.GetQuestionById(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}
	if question.Status == model.QuestionStatusClosed {
		return nil, ErrAnswerOnClosed
	}

	answer := &model.Answer{
		QuestionID: questionID,
		AuthorID:   authorID,
		AnswerBody: req.AnswerBody,
	}
	if err := s.answerRepo.CreateAnswer(ctx, answer); err != nil {
		return nil, err
	}
	return s.GetAnswer(ctx, answer.ID)
}

func (s *answerServiceImpl) GetAnswer(ctx context.Context, id uint64) (*dto.AnswerDTO, error) {
	answer, err := s.answerRepo.GetAnswerById(ctx, id)
	if err != nil {
		return nil, err
	}
	if answer == nil {
		return nil, ErrAnswerNotFound
	}
	return convertAnswerDTO(answer), nil
}

func (s *answerServiceImpl) ListAnswers(ctx context.Context, questionID uint64) ([]*dto.AnswerDTO, error) {
	question, err := s.questionRepo.GetQuestionById(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	answers, err := s.answerRepo.ListByQuestionId(ctx, questionID)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.AnswerDTO, 0, len(answers))
	for _, answer := range answers {
		res = append(res, convertAnswerDTO(answer))
	}
	return res, nil
}

// UpdateAnswer 正文仅作者可改，采纳仅提问者可操作且每个问题至多一次
func (s *answerServiceImpl) UpdateAnswer(ctx context.Context, userID uint64, id uint64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return ErrPayloadEmpty
	}
	for key := range fields {
		if !answerPatchable[key] {
			return ErrFieldImmutable
		}
	}

	var body string
	hasBody := false
	if raw, ok := fields["answer_body"]; ok {
		value, ok := raw.(string)
		if !ok || value == "" {
			return ErrParamInvalid
		}
		body = value
		hasBody = true
	}

	accepting := false
	if raw, ok := fields["is_accepted"]; ok {
		value, ok := raw.(bool)
		if !ok || !value {
			// 采纳不可撤销，false 无意义
			return ErrParamInvalid
		}
		accepting = true
	}

	return s.txManager.WithinTx(ctx, func(repos *repository.TxRepos) error {
		answer, err := repos.Answers.GetAnswerById(ctx, id)
		if err != nil {
			return err
		}
		if answer == nil {
			return ErrAnswerNotFound
		}

		updates := make(map[string]interface{}, 2)

		if hasBody {
			if answer.AuthorID != userID {
				return ErrNotAuthor
			}
			updates["answer_body"] = body
		}

		if accepting {
			// 锁问题行，串行化同一问题上的并发采纳
			question, err := repos.Questions.GetQuestionForUpdate(ctx, answer.QuestionID)
			if err != nil {
				return err
			}
			if question == nil {
				return ErrQuestionNotFound
			}
			if question.AuthorID == nil || *question.AuthorID != userID {
				return ErrNotQuestionAuthor
			}

			accepted, err := repos.Answers.ExistsAcceptedByQuestion(ctx, answer.QuestionID)
			if err != nil {
				return err
			}
			if accepted {
				return ErrAnswerAlreadyAccepted
			}
			updates["is_accepted"] = true
		}

		return repos.Answers.UpdateAnswerFields(ctx, id, updates)
	})
}

func convertAnswerDTO(answer *model.Answer) *dto.AnswerDTO {
	item := &dto.AnswerDTO{}
	_ = copier.Copy(item, answer)
	if answer.Author.ID > 0 {
		item.AuthorName = answer.Author.Username
	}
	item.CreatedAt = answer.CreatedAt.Format("2006-01-02 15:04:05")
	item.UpdatedAt = answer.UpdatedAt.Format("2006-01-02 15:04:05")
	return item
}
