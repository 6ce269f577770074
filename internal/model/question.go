package model

import (
	"time"
)

const (
	QuestionStatusOpen   = "OPEN"
	QuestionStatusClosed = "CLOSED"
)

const (
	ClosingRemarkNotClear  = "NOT_CLEAR"
	ClosingRemarkDuplicate = "DUPLICATE"
	ClosingRemarkInvalid   = "INVALID"
)

type Question struct {
	ID            uint64  `gorm:"primaryKey"`
	Title         string  `gorm:"type:varchar(60);not null" json:"title"`
	Description   string  `gorm:"type:text" json:"description"`
	AuthorID      *uint64 `gorm:"index:idx_question_author" json:"author_id"` // 作者注销后置空，问题保留
	Status        string  `gorm:"type:varchar(7);not null;default:'OPEN'" json:"status"`
	ClosingRemark *string `gorm:"type:varchar(10)" json:"closing_remark"` // 仅关闭时填写
	ViewCount     int     `gorm:"not null;default:0" json:"view_count"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// 关联关系
	Author *User `gorm:"foreignKey:AuthorID;references:ID"`
	Tags   []Tag `gorm:"many2many:question_tags"`
}

func (Question) TableName() string {
	return "questions"
}
