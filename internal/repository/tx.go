package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxRepos 同一事务内可用的仓储集合
type TxRepos struct {
	Users          UserRepo
	Questions      QuestionRepo
	Answers        AnswerRepo
	Votes          VoteRepo
	ReputationLogs ReputationLogRepo
}

type TxManager interface {
	WithinTx(ctx context.Context, fn func(repos *TxRepos) error) error
}

type TxManagerImpl struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return &TxManagerImpl{db: db}
}

func (m *TxManagerImpl) WithinTx(ctx context.Context, fn func(repos *TxRepos) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&TxRepos{
			Users:          NewUserRepo(tx),
			Questions:      NewQuestionRepo(tx),
			Answers:        NewAnswerRepo(tx),
			Votes:          NewVoteRepo(tx),
			ReputationLogs: NewReputationLogRepo(tx),
		})
	})
}
