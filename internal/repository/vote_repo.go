package repository

import (
	"context"
	"errors"
	"stackunderflow/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VoteRepo interface {
	GetByPostAndUser(ctx context.Context, postID uint64, postType string, userID uint64) (*model.Vote, error)
	GetForUpdate(ctx context.Context, postID uint64, postType string, userID uint64) (*model.Vote, error)
	CreateVote(ctx context.Context, vote *model.Vote) error
	UpdateDirections(ctx context.Context, id uint64, upvote bool, downvote bool) error
	DeleteVote(ctx context.Context, id uint64) error
	CountByPost(ctx context.Context, postID uint64, postType string) (upvotes int64, downvotes int64, err error)
}

type VoteRepoImpl struct {
	db *gorm.DB
}

func NewVoteRepo(db *gorm.DB) VoteRepo {
	return &VoteRepoImpl{db: db}
}

func (s *VoteRepoImpl) GetByPostAndUser(ctx context.Context, postID uint64, postType string, userID uint64) (*model.Vote, error) {
	vote := &model.Vote{}
	result := s.db.WithContext(ctx).
		Where("post_id = ? AND post_type = ? AND user_id = ?", postID, postType, userID).
		First(vote)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return vote, nil
}

// GetForUpdate 按唯一键行锁读取，同一用户对同一帖子的并发投票在此串行化
func (s *VoteRepoImpl) GetForUpdate(ctx context.Context, postID uint64, postType string, userID uint64) (*model.Vote, error) {
	vote := &model.Vote{}
	result := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("post_id = ? AND post_type = ? AND user_id = ?", postID, postType, userID).
		First(vote)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return vote, nil
}

func (s *VoteRepoImpl) CreateVote(ctx context.Context, vote *model.Vote) error {
	return s.db.WithContext(ctx).Create(vote).Error
}

func (s *VoteRepoImpl) UpdateDirections(ctx context.Context, id uint64, upvote bool, downvote bool) error {
	return s.db.WithContext(ctx).
		Model(&model.Vote{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"upvote":   upvote,
			"downvote": downvote,
		}).Error
}

func (s *VoteRepoImpl) DeleteVote(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Vote{}, id).Error
}

// CountByPost 以投票行为准实时统计，缓存不可用时的兜底路径
func (s *VoteRepoImpl) CountByPost(ctx context.Context, postID uint64, postType string) (int64, int64, error) {
	var upvotes, downvotes int64
	err := s.db.WithContext(ctx).
		Model(&model.Vote{}).
		Where("post_id = ? AND post_type = ? AND upvote = ?", postID, postType, true).
		Count(&upvotes).Error
	if err != nil {
		return 0, 0, err
	}
	err = s.db.WithContext(ctx).
		Model(&model.Vote{}).
		Where("post_id = ? AND post_type = ? AND downvote = ?", postID, postType, true).
		Count(&downvotes).Error
	if err != nil {
		return 0, 0, err
	}
	return upvotes, downvotes, nil
}
