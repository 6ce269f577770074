package service

import (
	"context"
	"stackunderflow/internal/api/dto"
	"stackunderflow/internal/model"
	"stackunderflow/internal/repository"

	"github.com/jinzhu/copier"
)

// commentPatchable PATCH 请求允许出现的字段，挂靠关系与作者不可改
var commentPatchable = map[string]bool{
	"body": true,
}

type CommentService interface {
	CreateComment(ctx context.Context, authorID uint64, ref model.PostRef, body string) (*dto.CommentDTO, error)
	ListComments(ctx context.Context, ref model.PostRef) ([]*dto.CommentDTO, error)
	UpdateComment(ctx context.Context, userID uint64, id uint64, fields map[string]interface{}) error
	DeleteComment(ctx context.Context, userID uint64, id uint64) error
}

type commentServiceImpl struct {
	commentRepo  repository.CommentRepo
	questionRepo repository.QuestionRepo
	answerRepo   repository.AnswerRepo
}

func NewCommentService(
	commentRepo repository.CommentRepo,
	questionRepo repository.QuestionRepo,
	answerRepo repository.AnswerRepo,
) CommentService {
	return &commentServiceImpl{
		commentRepo:  commentRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
	}
}

func (s *commentServiceImpl) CreateComment(ctx context.Context, authorID uint64, ref model.PostRef, body string) (*dto.CommentDTO, error) {
	if err := s.checkParent(ctx, ref); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		Body:     body,
		PostID:   ref.ID,
		PostType: ref.Kind,
		AuthorID: authorID,
	}
	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	created, err := s.commentRepo.GetCommentById(ctx, comment.ID)
	if err != nil {
		return nil, err
	}
	return convertCommentDTO(created), nil
}

func (s *commentServiceImpl) ListComments(ctx context.Context, ref model.PostRef) ([]*dto.CommentDTO, error) {
	if err := s.checkParent(ctx, ref); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, ref.ID, ref.Kind)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		res = append(res, convertCommentDTO(comment))
	}
	return res, nil
}

// UpdateComment 白名单字段的局部更新，仅作者可改内容
func (s *commentServiceImpl) UpdateComment(ctx context.Context, userID uint64, id uint64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return ErrPayloadEmpty
	}
	for key := range fields {
		if !commentPatchable[key] {
			return ErrFieldImmutable
		}
	}

	body, ok := fields["body"].(string)
	if !ok || body == "" || len(body) > 100 {
		return ErrParamInvalid
	}

	comment, err := s.commentRepo.GetCommentById(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.AuthorID != userID {
		return ErrNotAuthor
	}
	return s.commentRepo.UpdateCommentBody(ctx, id, body)
}

func (s *commentServiceImpl) DeleteComment(ctx context.Context, userID uint64, id uint64) error {
	comment, err := s.commentRepo.GetCommentById(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.AuthorID != userID {
		return ErrNotAuthor
	}
	return s.commentRepo.DeleteComment(ctx, id)
}

// checkParent 评论只能挂在问题或回答下，不支持对评论再评论
func (s *commentServiceImpl) checkParent(ctx context.Context, ref model.PostRef) error {
	switch ref.Kind {
	case model.PostTypeQuestion:
		question, err := s.questionRepo.GetQuestionById(ctx, ref.ID)
		if err != nil {
			return err
		}
		if question == nil {
			return ErrQuestionNotFound
		}
	case model.PostTypeAnswer:
		answer, err := s.answerRepo.GetAnswerById(ctx, ref.ID)
		if err != nil {
			return err
		}
		if answer == nil {
			return ErrAnswerNotFound
		}
	default:
		return ErrParamInvalid
	}
	return nil
}

func convertCommentDTO(comment *model.Comment) *dto.CommentDTO {
	item := &dto.CommentDTO{}
	_ = copier.Copy(item, comment)
	if comment.Author.ID > 0 {
		item.AuthorName = comment.Author.Username
	}
	item.CreatedAt = comment.CreatedAt.Format("2006-01-02 15:04:05")
	return item
}
