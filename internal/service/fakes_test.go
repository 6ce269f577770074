package service

import (
	"context"
	"stackunderflow/internal/model"
	"stackunderflow/internal/repository"
	"strconv"

	"github.com/go-sql-driver/mysql"
)

func voteKey(postID uint64, postType string, userID uint64) string {
	return postType + ":" + strconv.FormatUint(postID, 10) + ":" + strconv.FormatUint(userID, 10)
}

type fakeUserRepo struct {
	users map[uint64]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uint64]*model.User)}
	for _, user := range users {
		r.users[user.ID] = user
	}
	return r
}

func (r *fakeUserRepo) GetUserById(_ context.Context, id uint64) (*model.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	user.ID = uint64(len(r.users) + 1)
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetUserForUpdate(_ context.Context, id uint64) (*model.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) AddReputation(_ context.Context, id uint64, delta int) error {
	if user, ok := r.users[id]; ok {
		user.ReputationPoints += delta
	}
	return nil
}

type fakeVoteRepo struct {
	votes  map[string]*model.Vote
	byID   map[uint64]*model.Vote
	nextID uint64
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{
		votes:  make(map[string]*model.Vote),
		byID:   make(map[uint64]*model.Vote),
		nextID: 1,
	}
}

func (r *fakeVoteRepo) GetByPostAndUser(_ context.Context, postID uint64, postType string, userID uint64) (*model.Vote, error) {
	return r.votes[voteKey(postID, postType, userID)], nil
}

func (r *fakeVoteRepo) GetForUpdate(_ context.Context, postID uint64, postType string, userID uint64) (*model.Vote, error) {
	return r.votes[voteKey(postID, postType, userID)], nil
}

func (r *fakeVoteRepo) CreateVote(_ context.Context, vote *model.Vote) error {
	key := voteKey(vote.PostID, vote.PostType, vote.UserID)
	if _, exists := r.votes[key]; exists {
		return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	}
	vote.ID = r.nextID
	r.nextID++
	r.votes[key] = vote
	r.byID[vote.ID] = vote
	return nil
}

func (r *fakeVoteRepo) UpdateDirections(_ context.Context, id uint64, upvote bool, downvote bool) error {
	if vote, ok := r.byID[id]; ok {
		vote.Upvote = upvote
		vote.Downvote = downvote
	}
	return nil
}

func (r *fakeVoteRepo) DeleteVote(_ context.Context, id uint64) error {
	if vote, ok := r.byID[id]; ok {
		delete(r.votes, voteKey(vote.PostID, vote.PostType, vote.UserID))
		delete(r.byID, id)
	}
	return nil
}

func (r *fakeVoteRepo) CountByPost(_ context.Context, postID uint64, postType string) (int64, int64, error) {
	var upvotes, downvotes int64
	for _, vote := range r.votes {
		if vote.PostID != postID || vote.PostType != postType {
			continue
		}
		if vote.Upvote {
			upvotes++
		}
		if vote.Downvote {
			downvotes++
		}
	}
	return upvotes, downvotes, nil
}

type fakeQuestionRepo struct {
	questions map[uint64]*model.Question
	nextID    uint64
}

func newFakeQuestionRepo(questions ...*model.Question) *fakeQuestionRepo {
	r := &fakeQuestionRepo{questions: make(map[uint64]*model.Question), nextID: 1}
	for _, question := range questions {
		r.questions[question.ID] = question
		if question.ID >= r.nextID {
			r.nextID = question.ID + 1
		}
	}
	return r
}

func (r *fakeQuestionRepo) CreateQuestion(_ context.Context, question *model.Question) error {
	question.ID = r.nextID
	r.nextID++
	if question.Status == "" {
		question.Status = model.QuestionStatusOpen
	}
	r.questions[question.ID] = question
	return nil
}

func (r *fakeQuestionRepo) GetQuestionById(_ context.Context, id uint64) (*model.Question, error) {
	return r.questions[id], nil
}

func (r *fakeQuestionRepo) GetQuestionForUpdate(_ context.Context, id uint64) (*model.Question, error) {
	return r.questions[id], nil
}

func (r *fakeQuestionRepo) ListQuestions(_ context.Context, _ int, _ int, _ string) ([]*model.Question, int64, error) {
	list := make([]*model.Question, 0, len(r.questions))
	for _, question := range r.questions {
		list = append(list, question)
	}
	return list, int64(len(list)), nil
}

func (r *fakeQuestionRepo) UpdateQuestionFields(_ context.Context, id uint64, fields map[string]interface{}) error {
	question, ok := r.questions[id]
	if !ok {
		return nil
	}
	if title, ok := fields["title"].(string); ok {
		question.Title = title
	}
	if description, ok := fields["description"].(string); ok {
		question.Description = description
	}
	if status, ok := fields["status"].(string); ok {
		question.Status = status
	}
	if remark, ok := fields["closing_remark"].(string); ok {
		question.ClosingRemark = &remark
	}
	return nil
}

func (r *fakeQuestionRepo) AddViewCount(_ context.Context, id uint64, delta int64) error {
	if question, ok := r.questions[id]; ok {
		question.ViewCount += int(delta)
	}
	return nil
}

type fakeAnswerRepo struct {
	answers map[uint64]*model.Answer
	nextID  uint64
}

func newFakeAnswerRepo(answers ...*model.Answer) *fakeAnswerRepo {
	r := &fakeAnswerRepo{answers: make(map[uint64]*model.Answer), nextID: 1}
	for _, answer := range answers {
		r.answers[answer.ID] = answer
		if answer.ID >= r.nextID {
			r.nextID = answer.ID + 1
		}
	}
	return r
}

func (r *fakeAnswerRepo) CreateAnswer(_ context.Context, answer *model.Answer) error {
	answer.ID = r.nextID
	r.nextID++
	r.answers[answer.ID] = answer
	return nil
}

func (r *fakeAnswerRepo) GetAnswerById(_ context.Context, id uint64) (*model.Answer, error) {
	return r.answers[id], nil
}

func (r *fakeAnswerRepo) ListByQuestionId(_ context.Context, questionID uint64) ([]*model.Answer, error) {
	list := make([]*model.Answer, 0)
	for _, answer := range r.answers {
		if answer.QuestionID == questionID {
			list = append(list, answer)
		}
	}
	return list, nil
}

func (r *fakeAnswerRepo) UpdateAnswerFields(_ context.Context, id uint64, fields map[string]interface{}) error {
	answer, ok := r.answers[id]
	if !ok {
		return nil
	}
	if body, ok := fields["answer_body"].(string); ok {
		answer.AnswerBody = body
	}
	if accepted, ok := fields["is_accepted"].(bool); ok {
		answer.IsAccepted = accepted
	}
	return nil
}

func (r *fakeAnswerRepo) ExistsAcceptedByQuestion(_ context.Context, questionID uint64) (bool, error) {
	for _, answer := range r.answers {
		if answer.QuestionID == questionID && answer.IsAccepted {
			return true, nil
		}
	}
	return false, nil
}

type fakeCommentRepo struct {
	comments map[uint64]*model.Comment
	nextID   uint64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uint64]*model.Comment), nextID: 1}
}

func (r *fakeCommentRepo) CreateComment(_ context.Context, comment *model.Comment) error {
	comment.ID = r.nextID
	r.nextID++
	r.comments[comment.ID] = comment
	return nil
}

func (r *fakeCommentRepo) GetCommentById(_ context.Context, id uint64) (*model.Comment, error) {
	return r.comments[id], nil
}

func (r *fakeCommentRepo) ListByPost(_ context.Context, postID uint64, postType string) ([]*model.Comment, error) {
	list := make([]*model.Comment, 0)
	for _, comment := range r.comments {
		if comment.PostID == postID && comment.PostType == postType {
			list = append(list, comment)
		}
	}
	return list, nil
}

func (r *fakeCommentRepo) UpdateCommentBody(_ context.Context, id uint64, body string) error {
	if comment, ok := r.comments[id]; ok {
		comment.Body = body
	}
	return nil
}

func (r *fakeCommentRepo) DeleteComment(_ context.Context, id uint64) error {
	delete(r.comments, id)
	return nil
}

type fakeTagRepo struct {
	tags   map[string]*model.Tag
	nextID uint64
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: make(map[string]*model.Tag), nextID: 1}
}

func (r *fakeTagRepo) GetTagByName(_ context.Context, name string) (*model.Tag, error) {
	return r.tags[name], nil
}

func (r *fakeTagRepo) GetOrCreateByNames(_ context.Context, names []string) ([]*model.Tag, error) {
	res := make([]*model.Tag, 0, len(names))
	for _, name := range names {
		tag, ok := r.tags[name]
		if !ok {
			tag = &model.Tag{ID: r.nextID, Name: name}
			r.nextID++
			r.tags[name] = tag
		}
		res = append(res, tag)
	}
	return res, nil
}

func (r *fakeTagRepo) ListTags(_ context.Context) ([]*model.Tag, error) {
	list := make([]*model.Tag, 0, len(r.tags))
	for _, tag := range r.tags {
		list = append(list, tag)
	}
	return list, nil
}

func (r *fakeTagRepo) CreateTag(_ context.Context, tag *model.Tag) error {
	if _, exists := r.tags[tag.Name]; exists {
		return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	}
	tag.ID = r.nextID
	r.nextID++
	r.tags[tag.Name] = tag
	return nil
}

type fakeReputationLogRepo struct {
	logs []*model.ReputationLog
}

func newFakeReputationLogRepo() *fakeReputationLogRepo {
	return &fakeReputationLogRepo{}
}

func (r *fakeReputationLogRepo) CreateLog(_ context.Context, log *model.ReputationLog) error {
	log.ID = uint64(len(r.logs) + 1)
	r.logs = append(r.logs, log)
	return nil
}

func (r *fakeReputationLogRepo) ListByUserId(_ context.Context, userID uint64, limit int) ([]*model.ReputationLog, error) {
	res := make([]*model.ReputationLog, 0)
	for _, entry := range r.logs {
		if entry.UserID == userID && len(res) < limit {
			res = append(res, entry)
		}
	}
	return res, nil
}

// fakeTxManager 直接以既有仓储执行回调，不提供回滚语义
type fakeTxManager struct {
	repos *repository.TxRepos
}

func newFakeTxManager(repos *repository.TxRepos) *fakeTxManager {
	return &fakeTxManager{repos: repos}
}

func (m *fakeTxManager) WithinTx(_ context.Context, fn func(repos *repository.TxRepos) error) error {
	return fn(m.repos)
}

type fakePublisher struct {
	events []*VoteChangedEvent
}

func (p *fakePublisher) PublishVoteChanged(_ context.Context, event *VoteChangedEvent) error {
	p.events = append(p.events, event)
	return nil
}
