package handler

import (
	"stackunderflow/internal/api/dto"
	"stackunderflow/internal/model"
	"stackunderflow/internal/pkg/response"
	"stackunderflow/internal/pkg/util"
	"stackunderflow/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

// CreateQuestionComment 评论问题
func (s *CommentHandler) CreateQuestionComment(c *gin.Context) {
	s.createComment(c, model.PostTypeQuestion, "question_id")
}

// CreateAnswerComment 评论回答
func (s *CommentHandler) CreateAnswerComment(c *gin.Context) {
	s.createComment(c, model.PostTypeAnswer, "answer_id")
}

// ListQuestionComments 问题下的评论
func (s *CommentHandler) ListQuestionComments(c *gin.Context) {
	s.listComments(c, model.PostTypeQuestion, "question_id")
}

// ListAnswerComments 回答下的评论
func (s *CommentHandler) ListAnswerComments(c *gin.Context) {
	s.listComments(c, model.PostTypeAnswer, "answer_id")
}

// UpdateComment 修改评论内容，仅作者可改
func (s *CommentHandler) UpdateComment(c *gin.Context) {
	userID := c.GetUint64("user_id")
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil || commentID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	fields, err := util.DecodePatch(raw)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.commentSvc.UpdateComment(c.Request.Context(), userID, commentID, fields); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// DeleteComment 删除评论，仅作者可删
func (s *CommentHandler) DeleteComment(c *gin.Context) {
	userID := c.GetUint64("user_id")
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil || commentID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.commentSvc.DeleteComment(c.Request.Context(), userID, commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *CommentHandler) createComment(c *gin.Context, postType string, paramName string) {
	userID := c.GetUint64("user_id")
	postID, err := strconv.ParseUint(c.Param(paramName), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.CommentCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	ref := model.PostRef{Kind: postType, ID: postID}
	comment, err := s.commentSvc.CreateComment(c.Request.Context(), userID, ref, req.Body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *CommentHandler) listComments(c *gin.Context, postType string, paramName string) {
	postID, err := strconv.ParseUint(c.Param(paramName), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	ref := model.PostRef{Kind: postType, ID: postID}
	comments, err := s.commentSvc.ListComments(c.Request.Context(), ref)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}
