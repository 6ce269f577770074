package service

import (
	"context"
	"errors"
	"stackunderflow/internal/api/dto"
	"stackunderflow/internal/model"
	"stackunderflow/internal/repository"
	"testing"
)

func newAnswerTestEnv(questions []*model.Question, answers []*model.Answer) (AnswerService, *fakeAnswerRepo) {
	questionRepo := newFakeQuestionRepo(questions...)
	answerRepo := newFakeAnswerRepo(answers...)
	txManager := newFakeTxManager(&repository.TxRepos{
		Questions: questionRepo,
		Answers:   answerRepo,
	})
	return NewAnswerService(txManager, answerRepo, questionRepo), answerRepo
}

func answerFixtures() ([]*model.Question, []*model.Answer) {
	asker := uint64(1)
	questions := []*model.Question{{
		ID:       1,
		Title:    "问题",
		AuthorID: &asker,
		Status:   model.QuestionStatusOpen,
	}}
	answers := []*model.Answer{
		{ID: 10, QuestionID: 1, AuthorID: 2, AnswerBody: "回答一"},
		{ID: 11, QuestionID: 1, AuthorID: 3, AnswerBody: "回答二"},
	}
	return questions, answers
}

func TestAcceptAnswer(t *testing.T) {
	questions, answers := answerFixtures()
	svc, repo := newAnswerTestEnv(questions, answers)

	err := svc.UpdateAnswer(context.Background(), 1, 10, map[string]interface{}{"is_accepted": true})
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if !repo.answers[10].IsAccepted {
		t.Fatal("answer should be accepted")
	}
}

func TestAcceptSecondAnswerConflicts(t *testing.T) {
	questions, answers := answerFixtures()
	svc, _ := newAnswerTestEnv(questions, answers)
	ctx := context.Background()

	if err := svc.UpdateAnswer(ctx, 1, 10, map[string]interface{}{"is_accepted": true}); err != nil {
		t.Fatalf("first accept: %v", err)
	}

	err := svc.UpdateAnswer(ctx, 1, 11, map[string]interface{}{"is_accepted": true})
	if !errors.Is(err, ErrAnswerAlreadyAccepted) {
		t.Fatalf("second accept error = %v, want ErrAnswerAlreadyAccepted", err)
	}

	// 对已采纳的回答重复采纳同样冲突
	err = svc.UpdateAnswer(ctx, 1, 10, map[string]interface{}{"is_accepted": true})
	if !errors.Is(err, ErrAnswerAlreadyAccepted) {
		t.Fatalf("re-accept error = %v, want ErrAnswerAlreadyAccepted", err)
	}
}

func TestAcceptOnlyByQuestionAuthor(t *testing.T) {
	questions, answers := answerFixtures()
	svc, _ := newAnswerTestEnv(questions, answers)

	err := svc.UpdateAnswer(context.Background(), 2, 10, map[string]interface{}{"is_accepted": true})
	if !errors.Is(err, ErrNotQuestionAuthor) {
		t.Fatalf("error = %v, want ErrNotQuestionAuthor", err)
	}
}

func TestUnacceptRejected(t *testing.T) {
	questions, answers := answerFixtures()
	svc, _ := newAnswerTestEnv(questions, answers)

	err := svc.UpdateAnswer(context.Background(), 1, 10, map[string]interface{}{"is_accepted": false})
	if !errors.Is(err, ErrParamInvalid) {
		t.Fatalf("error = %v, want ErrParamInvalid", err)
	}
}

func TestUpdateAnswerBodyOnlyByAuthor(t *testing.T) {
	questions, answers := answerFixtures()
	svc, repo := newAnswerTestEnv(questions, answers)
	ctx := context.Background()

	if err := svc.UpdateAnswer(ctx, 2, 10, map[string]interface{}{"answer_body": "改过的回答"}); err != nil {
		t.Fatalf("author edit: %v", err)
	}
	if repo.answers[10].AnswerBody != "改过的回答" {
		t.Fatalf("body = %q", repo.answers[10].AnswerBody)
	}

	err := svc.UpdateAnswer(ctx, 3, 10, map[string]interface{}{"answer_body": "越权"})
	if !errors.Is(err, ErrNotAuthor) {
		t.Fatalf("error = %v, want ErrNotAuthor", err)
	}
}

func TestUpdateAnswerFieldWhitelist(t *testing.T) {
	questions, answers := answerFixtures()
	svc, _ := newAnswerTestEnv(questions, answers)
	ctx := context.Background()

	err := svc.UpdateAnswer(ctx, 2, 10, map[string]interface{}{"question_id": 99})
	if !errors.Is(err, ErrFieldImmutable) {
		t.Fatalf("error = %v, want ErrFieldImmutable", err)
	}

	err = svc.UpdateAnswer(ctx, 2, 10, map[string]interface{}{})
	if !errors.Is(err, ErrPayloadEmpty) {
		t.Fatalf("error = %v, want ErrPayloadEmpty", err)
	}
}

func TestCreateAnswerOnClosedQuestion(t *testing.T) {
	questions, answers := answerFixtures()
	questions[0].Status = model.QuestionStatusClosed
	svc, _ := newAnswerTestEnv(questions, answers)

	_, err := svc.CreateAnswer(context.Background(), 2, 1, &dto.AnswerCreateDTO{AnswerBody: "迟来的回答"})
	if !errors.Is(err, ErrAnswerOnClosed) {
		t.Fatalf("error = %v, want ErrAnswerOnClosed", err)
	}
}

func TestCreateAnswer(t *testing.T) {
	questions, answers := answerFixtures()
	svc, repo := newAnswerTestEnv(questions, answers)

	created, err := svc.CreateAnswer(context.Background(), 5, 1, &dto.AnswerCreateDTO{AnswerBody: "新回答"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.IsAccepted {
		t.Fatal("new answer must not be accepted")
	}
	if repo.answers[created.ID].AuthorID != 5 {
		t.Fatalf("author = %d, want 5", repo.answers[created.ID].AuthorID)
	}
}
