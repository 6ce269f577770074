package repository

import (
	"context"
	"stackunderflow/internal/model"

	"gorm.io/gorm"
)

type ReputationLogRepo interface {
	CreateLog(ctx context.Context, log *model.ReputationLog) error
	ListByUserId(ctx context.Context, userID uint64, limit int) ([]*model.ReputationLog, error)
}

type ReputationLogRepoImpl struct {
	db *gorm.DB
}

func NewReputationLogRepo(db *gorm.DB) ReputationLogRepo {
	return &ReputationLogRepoImpl{db: db}
}

func (s *ReputationLogRepoImpl) CreateLog(ctx context.Context, log *model.ReputationLog) error {
	return s.db.WithContext(ctx).Create(log).Error
}

func (s *ReputationLogRepoImpl) ListByUserId(ctx context.Context, userID uint64, limit int) ([]*model.ReputationLog, error) {
	logs := make([]*model.ReputationLog, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).
		Find(&logs)
	if result.Error != nil {
		return nil, result.Error
	}
	return logs, nil
}
