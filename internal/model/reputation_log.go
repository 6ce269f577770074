package model

import (
	"time"
)

// ReputationLog 每次声望变动的明细记录，正数为增加，负数为扣除
type ReputationLog struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index:idx_rep_user" json:"user_id"`
	Amount    int    `gorm:"not null" json:"amount"`
	Action    string `gorm:"type:varchar(50);not null" json:"action"`
	EventID   string `gorm:"type:varchar(36);not null;index:idx_rep_event" json:"event_id"` // 投票事件 ID
	CreatedAt time.Time
}

func (ReputationLog) TableName() string {
	return "reputation_logs"
}
