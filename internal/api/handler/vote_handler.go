package handler

import (
	"stackunderflow/internal/api/dto"
	"stackunderflow/internal/model"
	"stackunderflow/internal/pkg/response"
	"stackunderflow/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	voteSvc service.VoteService
}

func NewVoteHandler(voteSvc service.VoteService) *VoteHandler {
	return &VoteHandler{voteSvc: voteSvc}
}

// UpvoteQuestion 给问题投赞成票，重复同向撤销，反向翻转
func (s *VoteHandler) UpvoteQuestion(c *gin.Context) {
	s.vote(c, model.PostTypeQuestion, "question_id", service.VoteDirectionUp)
}

// DownvoteQuestion 给问题投反对票
func (s *VoteHandler) DownvoteQuestion(c *gin.Context) {
	s.vote(c, model.PostTypeQuestion, "question_id", service.VoteDirectionDown)
}

// UpvoteAnswer 给回答投赞成票
func (s *VoteHandler) UpvoteAnswer(c *gin.Context) {
	s.vote(c, model.PostTypeAnswer, "answer_id", service.VoteDirectionUp)
}

// DownvoteAnswer 给回答投反对票
func (s *VoteHandler) DownvoteAnswer(c *gin.Context) {
	s.vote(c, model.PostTypeAnswer, "answer_id", service.VoteDirectionDown)
}

// GetQuestionTally 问题当前票数
func (s *VoteHandler) GetQuestionTally(c *gin.Context) {
	s.tally(c, model.PostTypeQuestion, "question_id")
}

// GetAnswerTally 回答当前票数
func (s *VoteHandler) GetAnswerTally(c *gin.Context) {
	s.tally(c, model.PostTypeAnswer, "answer_id")
}

func (s *VoteHandler) vote(c *gin.Context, postType string, paramName string, direction string) {
	userID := c.GetUint64("user_id")
	postID, err := strconv.ParseUint(c.Param(paramName), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	ref := model.PostRef{Kind: postType, ID: postID}
	outcome, err := s.voteSvc.Vote(c.Request.Context(), userID, ref, direction)
	if err != nil {
		response.Error(c, err)
		return
	}

	tally, err := s.voteSvc.GetTally(c.Request.Context(), ref)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.VoteResultDTO{
		Transition: outcome.Transition,
		From:       outcome.From,
		To:         outcome.To,
		Tally:      tally,
	})
}

func (s *VoteHandler) tally(c *gin.Context, postType string, paramName string) {
	postID, err := strconv.ParseUint(c.Param(paramName), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	tally, err := s.voteSvc.GetTally(c.Request.Context(), model.PostRef{Kind: postType, ID: postID})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tally)
}
