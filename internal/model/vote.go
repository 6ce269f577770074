package model

import (
	"time"
)

// Vote 每个用户对同一帖子至多一票，方向切换在原行上翻转，重复同向则删除
type Vote struct {
	ID        uint64 `gorm:"primaryKey"`
	PostID    uint64 `gorm:"not null;uniqueIndex:idx_post_voter" json:"post_id"`
	PostType  string `gorm:"type:varchar(10);not null;uniqueIndex:idx_post_voter" json:"post_type"`
	UserID    uint64 `gorm:"not null;uniqueIndex:idx_post_voter" json:"user_id"`
	Upvote    bool   `gorm:"not null" json:"upvote"`
	Downvote  bool   `gorm:"not null" json:"downvote"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Vote) TableName() string {
	return "votes"
}
