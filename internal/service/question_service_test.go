package service

import (
	"context"
	"errors"
	"stackunderflow/internal/api/dto"
	"stackunderflow/internal/model"
	"stackunderflow/internal/repository"
	"testing"
)

func newQuestionTestEnv(questions ...*model.Question) (QuestionService, *fakeQuestionRepo) {
	questionRepo := newFakeQuestionRepo(questions...)
	tagRepo := newFakeTagRepo()
	txManager := newFakeTxManager(&repository.TxRepos{Questions: questionRepo})
	return NewQuestionService(txManager, questionRepo, tagRepo), questionRepo
}

func openQuestion(authorID uint64) *model.Question {
	return &model.Question{
		ID:       1,
		Title:    "如何用 Go 写服务",
		AuthorID: &authorID,
		Status:   model.QuestionStatusOpen,
	}
}

func TestUpdateQuestionFieldRules(t *testing.T) {
	tests := []struct {
		name    string
		fields  map[string]interface{}
		wantErr error
	}{
		{"empty payload", map[string]interface{}{}, ErrPayloadEmpty},
		{"forbidden field", map[string]interface{}{"view_count": 100}, ErrFieldImmutable},
		{"forbidden author", map[string]interface{}{"author_id": 9}, ErrFieldImmutable},
		{"title ok", map[string]interface{}{"title": "新标题"}, nil},
		{"title empty", map[string]interface{}{"title": ""}, ErrParamInvalid},
		{"title wrong type", map[string]interface{}{"title": 42}, ErrParamInvalid},
		{"description ok", map[string]interface{}{"description": "新描述"}, nil},
		{"close without remark", map[string]interface{}{"status": "CLOSED"}, ErrClosingRemarkRequired},
		{"close invalid remark", map[string]interface{}{"status": "CLOSED", "closing_remark": "BORING"}, ErrClosingRemarkInvalid},
		{"close ok", map[string]interface{}{"status": "CLOSED", "closing_remark": "DUPLICATE"}, nil},
		{"remark without close", map[string]interface{}{"closing_remark": "INVALID"}, ErrClosingRemarkInvalid},
		{"unknown status", map[string]interface{}{"status": "ARCHIVED"}, ErrParamInvalid},
		{"open stays open", map[string]interface{}{"status": "OPEN"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newQuestionTestEnv(openQuestion(1))
			err := svc.UpdateQuestion(context.Background(), 1, 1, tt.fields)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateQuestionOnlyAuthor(t *testing.T) {
	svc, _ := newQuestionTestEnv(openQuestion(1))

	err := svc.UpdateQuestion(context.Background(), 2, 1, map[string]interface{}{"title": "改标题"})
	if !errors.Is(err, ErrNotQuestionAuthor) {
		t.Fatalf("error = %v, want ErrNotQuestionAuthor", err)
	}
}

func TestUpdateQuestionClosedIsTerminal(t *testing.T) {
	question := openQuestion(1)
	question.Status = model.QuestionStatusClosed
	svc, _ := newQuestionTestEnv(question)
	ctx := context.Background()

	err := svc.UpdateQuestion(ctx, 1, 1, map[string]interface{}{"title": "改标题"})
	if !errors.Is(err, ErrQuestionClosed) {
		t.Fatalf("edit closed question error = %v, want ErrQuestionClosed", err)
	}

	err = svc.UpdateQuestion(ctx, 1, 1, map[string]interface{}{"status": "OPEN", "closing_remark": "INVALID"})
	if !errors.Is(err, ErrReopenNotAllowed) {
		t.Fatalf("reopen error = %v, want ErrReopenNotAllowed", err)
	}

	// 终态规则优先于字段取值校验
	err = svc.UpdateQuestion(ctx, 1, 1, map[string]interface{}{"status": "OPEN"})
	if !errors.Is(err, ErrReopenNotAllowed) {
		t.Fatalf("plain reopen error = %v, want ErrReopenNotAllowed", err)
	}
	err = svc.UpdateQuestion(ctx, 1, 1, map[string]interface{}{"title": ""})
	if !errors.Is(err, ErrQuestionClosed) {
		t.Fatalf("invalid title on closed error = %v, want ErrQuestionClosed", err)
	}
}

func TestCloseQuestionAppliesRemark(t *testing.T) {
	svc, repo := newQuestionTestEnv(openQuestion(1))

	err := svc.UpdateQuestion(context.Background(), 1, 1, map[string]interface{}{
		"status":         "CLOSED",
		"closing_remark": "NOT_CLEAR",
	})
	if err != nil {
		t.Fatalf("close: %v", err)
	}

	question := repo.questions[1]
	if question.Status != model.QuestionStatusClosed {
		t.Fatalf("status = %q, want CLOSED", question.Status)
	}
	if question.ClosingRemark == nil || *question.ClosingRemark != model.ClosingRemarkNotClear {
		t.Fatalf("closing remark = %v, want NOT_CLEAR", question.ClosingRemark)
	}
}

func TestCreateQuestionAssignsTags(t *testing.T) {
	svc, repo := newQuestionTestEnv()

	created, err := svc.CreateQuestion(context.Background(), 1, &dto.QuestionCreateDTO{
		Title:       "并发问题",
		Description: "描述",
		Tags:        []string{"go", "concurrency"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(created.Tags) != 2 {
		t.Fatalf("tags = %v, want 2 entries", created.Tags)
	}
	if repo.questions[created.ID].Status != model.QuestionStatusOpen {
		t.Fatalf("new question status = %q, want OPEN", repo.questions[created.ID].Status)
	}
}

func TestGetQuestionNotFound(t *testing.T) {
	svc, _ := newQuestionTestEnv()

	_, err := svc.GetQuestion(context.Background(), 404)
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("error = %v, want ErrQuestionNotFound", err)
	}
}
