package service

import (
	"context"
	"time"
)

const (
	VoteDirectionUp   = "UP"
	VoteDirectionDown = "DOWN"
)

const (
	VoteCreated   = "CREATED"
	VoteRetracted = "RETRACTED"
	VoteFlipped   = "FLIPPED"
)

// VoteOutcome 一次投票操作的状态迁移结果
type VoteOutcome struct {
	Transition string
	From       string
	To         string
}

// VoteChangedEvent 投票落库后对外发布的领域事件
type VoteChangedEvent struct {
	EventID      string    `json:"event_id"`
	PostID       uint64    `json:"post_id"`
	PostType     string    `json:"post_type"`
	PostAuthorID *uint64   `json:"post_author_id"`
	VoterID      uint64    `json:"voter_id"`
	Transition   string    `json:"transition"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type VoteEventPublisher interface {
	PublishVoteChanged(ctx context.Context, event *VoteChangedEvent) error
}
