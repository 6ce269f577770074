package model

import (
	"time"
)

// Comment 通过 (post_id, post_type) 挂在问题或回答下
type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	Body      string `gorm:"type:varchar(100);not null" json:"body"`
	PostID    uint64 `gorm:"not null;index:idx_comment_post" json:"post_id"`
	PostType  string `gorm:"type:varchar(10);not null;index:idx_comment_post" json:"post_type"`
	AuthorID  uint64 `gorm:"not null" json:"author_id"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Author User `gorm:"foreignKey:AuthorID;references:ID"`
}

func (Comment) TableName() string {
	return "comments"
}
