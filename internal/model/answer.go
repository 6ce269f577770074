package model

import (
	"time"
)

type Answer struct {
	ID         uint64 `gorm:"primaryKey"`
	QuestionID uint64 `gorm:"not null;index:idx_answer_question" json:"question_id"`
	AuthorID   uint64 `gorm:"not null" json:"author_id"`
	AnswerBody string `gorm:"type:text;not null" json:"answer_body"`
	IsAccepted bool   `gorm:"not null;default:0" json:"is_accepted"` // 每个问题至多一个，采纳后不可更换
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Question Question `gorm:"foreignKey:QuestionID;references:ID"`
	Author   User     `gorm:"foreignKey:AuthorID;references:ID"`
}

func (Answer) TableName() string {
	return "answers"
}
