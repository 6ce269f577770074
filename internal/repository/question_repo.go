package repository

import (
	"context"
	"errors"
	"stackunderflow/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuestionRepo interface {
	CreateQuestion(ctx context.Context, question *model.Question) error
	GetQuestionById(ctx context.Context, id uint64) (*model.Question, error)
	GetQuestionForUpdate(ctx context.Context, id uint64) (*model.Question, error)
	ListQuestions(ctx context.Context, page int, pageSize int, tagName string) ([]*model.Question, int64, error)
	UpdateQuestionFields(ctx context.Context, id uint64, fields map[string]interface{}) error
	AddViewCount(ctx context.Context, id uint64, delta int64) error
}

type QuestionRepoImpl struct {
	db *gorm.DB
}

func NewQuestionRepo(db *gorm.DB) QuestionRepo {
	return &QuestionRepoImpl{db: db}
}

func (s *QuestionRepoImpl) CreateQuestion(ctx context.Context, question *model.Question) error {
	return s.db.WithContext(ctx).Create(question).Error
}

func (s *QuestionRepoImpl) GetQuestionById(ctx context.Context, id uint64) (*model.Question, error) {
	question := &model.Question{}
	result := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		First(question, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return question, nil
}

// GetQuestionForUpdate 行锁读取，采纳回答与关闭问题时串行化同一问题上的写入
func (s *QuestionRepoImpl) GetQuestionForUpdate(ctx context.Context, id uint64) (*model.Question, error) {
	question := &model.Question{}
	result := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(question, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return question, nil
}

func (s *QuestionRepoImpl) ListQuestions(ctx context.Context, page int, pageSize int, tagName string) ([]*model.Question, int64, error) {
	questions := make([]*model.Question, 0)
	query := s.db.WithContext(ctx).Model(&model.Question{})

	if tagName != "" {
		query = query.
			Joins("JOIN question_tags ON question_tags.question_id = questions.id").
			Joins("JOIN tags ON tags.id = question_tags.tag_id").
			Where("tags.name = ?", tagName)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := query.
		Preload("Author").
		Preload("Tags").
		Order("questions.id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&questions)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return questions, total, nil
}

func (s *QuestionRepoImpl) UpdateQuestionFields(ctx context.Context, id uint64, fields map[string]interface{}) error {
	return s.db.WithContext(ctx).
		Model(&model.Question{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (s *QuestionRepoImpl) AddViewCount(ctx context.Context, id uint64, delta int64) error {
	return s.db.WithContext(ctx).
		Model(&model.Question{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", delta)).
		Error
}
