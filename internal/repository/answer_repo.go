package repository

import (
	"context"
	"errors"
	"stackunderflow/internal/model"

	"gorm.io/gorm"
)

type AnswerRepo interface {
	CreateAnswer(ctx context.Context, answer *model.Answer) error
	GetAnswerById(ctx context.Context, id uint64) (*model.Answer, error)
	ListByQuestionId(ctx context.Context, questionID uint64) ([]*model.Answer, error)
	UpdateAnswerFields(ctx context.Context, id uint64, fields map[string]interface{}) error
	ExistsAcceptedByQuestion(ctx context.Context, questionID uint64) (bool, error)
}

type AnswerRepoImpl struct {
	db *gorm.DB
}

func NewAnswerRepo(db *gorm.DB) AnswerRepo {
	return &AnswerRepoImpl{db: db}
}

func (s *AnswerRepoImpl) CreateAnswer(ctx context.Context, answer *model.Answer) error {
	return s.db.WithContext(ctx).Create(answer).Error
}

func (s *AnswerRepoImpl) GetAnswerById(ctx context.Context, id uint64) (*model.Answer, error) {
	answer := &model.Answer{}
	result := s.db.WithContext(ctx).
		Preload("Author").
		First(answer, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return answer, nil
}

func (s *AnswerRepoImpl) ListByQuestionId(ctx context.Context, questionID uint64) ([]*model.Answer, error) {
	answers := make([]*model.Answer, 0)
	result := s.db.WithContext(ctx).
		Preload("Author").
		Where("question_id = ?", questionID).
		Order("is_accepted DESC, id ASC").
		Find(&answers)
	if result.Error != nil {
		return nil, result.Error
	}
	return answers, nil
}

func (s *AnswerRepoImpl) UpdateAnswerFields(ctx context.Context, id uint64, fields map[string]interface{}) error {
	return s.db.WithContext(ctx).
		Model(&model.Answer{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (s *AnswerRepoImpl) ExistsAcceptedByQuestion(ctx context.Context, questionID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.Answer{}).
		Where("question_id = ? AND is_accepted = ?", questionID, true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
