package repository

import (
	"context"
	"errors"
	"stackunderflow/internal/model"

	"gorm.io/gorm"
)

type TagRepo interface {
	GetTagByName(ctx context.Context, name string) (*model.Tag, error)
	GetOrCreateByNames(ctx context.Context, names []string) ([]*model.Tag, error)
	ListTags(ctx context.Context) ([]*model.Tag, error)
	CreateTag(ctx context.Context, tag *model.Tag) error
}

type TagRepoImpl struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) TagRepo {
	return &TagRepoImpl{db: db}
}

func (s *TagRepoImpl) GetTagByName(ctx context.Context, name string) (*model.Tag, error) {
	tag := &model.Tag{}
	result := s.db.WithContext(ctx).
		Where("name = ?", name).
		First(tag)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return tag, nil
}

func (s *TagRepoImpl) GetOrCreateByNames(ctx context.Context, names []string) ([]*model.Tag, error) {
	tags := make([]*model.Tag, 0, len(names))
	for _, name := range names {
		tag := &model.Tag{Name: name}
		result := s.db.WithContext(ctx).
			Where("name = ?", name).
			FirstOrCreate(tag)
		if result.Error != nil {
			return nil, result.Error
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func (s *TagRepoImpl) ListTags(ctx context.Context) ([]*model.Tag, error) {
	tags := make([]*model.Tag, 0)
	result := s.db.WithContext(ctx).Order("name ASC").Find(&tags)
	if result.Error != nil {
		return nil, result.Error
	}
	return tags, nil
}

func (s *TagRepoImpl) CreateTag(ctx context.Context, tag *model.Tag) error {
	return s.db.WithContext(ctx).Create(tag).Error
}
