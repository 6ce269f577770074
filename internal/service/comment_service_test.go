package service

import (
	"context"
	"errors"
	"stackunderflow/internal/model"
	"testing"
)

func newCommentTestEnv() (CommentService, *fakeCommentRepo) {
	asker := uint64(1)
	questionRepo := newFakeQuestionRepo(&model.Question{
		ID:       1,
		AuthorID: &asker,
		Status:   model.QuestionStatusOpen,
	})
	answerRepo := newFakeAnswerRepo(&model.Answer{ID: 10, QuestionID: 1, AuthorID: 2})
	commentRepo := newFakeCommentRepo()
	return NewCommentService(commentRepo, questionRepo, answerRepo), commentRepo
}

func TestCreateCommentOnQuestionAndAnswer(t *testing.T) {
	svc, _ := newCommentTestEnv()
	ctx := context.Background()

	comment, err := svc.CreateComment(ctx, 3, model.PostRef{Kind: model.PostTypeQuestion, ID: 1}, "问题评论")
	if err != nil {
		t.Fatalf("comment question: %v", err)
	}
	if comment.PostType != model.PostTypeQuestion {
		t.Fatalf("post type = %q", comment.PostType)
	}

	if _, err := svc.CreateComment(ctx, 3, model.PostRef{Kind: model.PostTypeAnswer, ID: 10}, "回答评论"); err != nil {
		t.Fatalf("comment answer: %v", err)
	}
}

func TestCreateCommentOnCommentRejected(t *testing.T) {
	svc, _ := newCommentTestEnv()

	_, err := svc.CreateComment(context.Background(), 3, model.PostRef{Kind: model.PostTypeComment, ID: 1}, "套娃")
	if !errors.Is(err, ErrParamInvalid) {
		t.Fatalf("error = %v, want ErrParamInvalid", err)
	}
}

func TestCreateCommentMissingParent(t *testing.T) {
	svc, _ := newCommentTestEnv()

	_, err := svc.CreateComment(context.Background(), 3, model.PostRef{Kind: model.PostTypeAnswer, ID: 404}, "没有挂靠")
	if !errors.Is(err, ErrAnswerNotFound) {
		t.Fatalf("error = %v, want ErrAnswerNotFound", err)
	}
}

func TestUpdateCommentFieldWhitelist(t *testing.T) {
	svc, _ := newCommentTestEnv()
	ctx := context.Background()

	created, err := svc.CreateComment(ctx, 3, model.PostRef{Kind: model.PostTypeQuestion, ID: 1}, "原文")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.UpdateComment(ctx, 3, created.ID, map[string]interface{}{"post_id": 99}); !errors.Is(err, ErrFieldImmutable) {
		t.Fatalf("error = %v, want ErrFieldImmutable", err)
	}
	if err := svc.UpdateComment(ctx, 3, created.ID, map[string]interface{}{}); !errors.Is(err, ErrPayloadEmpty) {
		t.Fatalf("error = %v, want ErrPayloadEmpty", err)
	}
	if err := svc.UpdateComment(ctx, 3, created.ID, map[string]interface{}{"body": ""}); !errors.Is(err, ErrParamInvalid) {
		t.Fatalf("error = %v, want ErrParamInvalid", err)
	}
}

func TestUpdateAndDeleteCommentOnlyByAuthor(t *testing.T) {
	svc, repo := newCommentTestEnv()
	ctx := context.Background()

	created, err := svc.CreateComment(ctx, 3, model.PostRef{Kind: model.PostTypeQuestion, ID: 1}, "原文")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.UpdateComment(ctx, 4, created.ID, map[string]interface{}{"body": "越权"}); !errors.Is(err, ErrNotAuthor) {
		t.Fatalf("update error = %v, want ErrNotAuthor", err)
	}
	if err := svc.UpdateComment(ctx, 3, created.ID, map[string]interface{}{"body": "改过"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if repo.comments[created.ID].Body != "改过" {
		t.Fatalf("body = %q", repo.comments[created.ID].Body)
	}

	if err := svc.DeleteComment(ctx, 4, created.ID); !errors.Is(err, ErrNotAuthor) {
		t.Fatalf("delete error = %v, want ErrNotAuthor", err)
	}
	if err := svc.DeleteComment(ctx, 3, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.comments) != 0 {
		t.Fatalf("comments = %d, want 0", len(repo.comments))
	}
}
