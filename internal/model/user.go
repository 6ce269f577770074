package model

import (
	"time"
)

type User struct {
	ID               uint64 `gorm:"primaryKey"`
	Username         string `gorm:"type:varchar(15);not null;uniqueIndex:idx_username"`
	Email            string `gorm:"type:varchar(255);not null;uniqueIndex:idx_email"`
	Password         string `gorm:"type:varchar(255);not null"`
	Profession       string `gorm:"type:varchar(50)"`
	Role             string `gorm:"type:varchar(20);not null;default:'USER'"`
	ReputationPoints int    `gorm:"not null;default:0"` // 仅由声望服务修改
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (User) TableName() string {
	return "users"
}
