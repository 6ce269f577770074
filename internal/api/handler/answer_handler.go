package handler

import (
	"stackunderflow/internal/api/dto"
	"stackunderflow/internal/pkg/response"
	"stackunderflow/internal/pkg/util"
	"stackunderflow/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	answerSvc service.AnswerService
}

func NewAnswerHandler(answerSvc service.AnswerService) *AnswerHandler {
	return &AnswerHandler{answerSvc: answerSvc}
}

// CreateAnswer 回答问题
func (s *AnswerHandler) CreateAnswer(c *gin.Context) {
	userID := c.GetUint64("user_id")
	questionID, err := strconv.ParseUint(c.Param("question_id"), 10, 64)
	if err != nil || questionID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.AnswerCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	answer, err := s.answerSvc.CreateAnswer(c.Request.Context(), userID, questionID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, answer)
}

// ListAnswers 某问题下的全部回答，被采纳的排最前
func (s *AnswerHandler) ListAnswers(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("question_id"), 10, 64)
	if err != nil || questionID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	answers, err := s.answerSvc.ListAnswers(c.Request.Context(), questionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, answers)
}

// GetAnswer 单条回答
func (s *AnswerHandler) GetAnswer(c *gin.Context) {
	answerID, err := strconv.ParseUint(c.Param("answer_id"), 10, 64)
	if err != nil || answerID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	answer, err := s.answerSvc.GetAnswer(c.Request.Context(), answerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, answer)
}

// UpdateAnswer 修改正文或采纳回答
func (s *AnswerHandler) UpdateAnswer(c *gin.Context) {
	userID := c.GetUint64("user_id")
	answerID, err := strconv.ParseUint(c.Param("answer_id"), 10, 64)
	if err != nil || answerID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	fields, err := util.DecodePatch(body)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := s.answerSvc.UpdateAnswer(c.Request.Context(), userID, answerID, fields); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
