package repository

import (
	"context"
	"errors"
	"stackunderflow/internal/model"

	"gorm.io/gorm"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentById(ctx context.Context, id uint64) (*model.Comment, error)
	ListByPost(ctx context.Context, postID uint64, postType string) ([]*model.Comment, error)
	UpdateCommentBody(ctx context.Context, id uint64, body string) error
	DeleteComment(ctx context.Context, id uint64) error
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db: db}
}

func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *CommentRepoImpl) GetCommentById(ctx context.Context, id uint64) (*model.Comment, error) {
	comment := &model.Comment{}
	result := s.db.WithContext(ctx).
		Preload("Author").
		First(comment, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return comment, nil
}

func (s *CommentRepoImpl) ListByPost(ctx context.Context, postID uint64, postType string) ([]*model.Comment, error) {
	comments := make([]*model.Comment, 0)
	result := s.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ? AND post_type = ?", postID, postType).
		Order("id ASC").
		Find(&comments)
	if result.Error != nil {
		return nil, result.Error
	}
	return comments, nil
}

func (s *CommentRepoImpl) UpdateCommentBody(ctx context.Context, id uint64, body string) error {
	return s.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", id).
		Update("body", body).Error
}

func (s *CommentRepoImpl) DeleteComment(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Comment{}, id).Error
}
