package handler

import (
	"context"
	log "log/slog"
	"stackunderflow/internal/api/dto"
	"stackunderflow/internal/model"
	"stackunderflow/internal/pkg/response"
	"stackunderflow/internal/pkg/util"
	"stackunderflow/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

type QuestionHandler struct {
	questionSvc service.QuestionService
	answerSvc   service.AnswerService
	voteSvc     service.VoteService
}

func NewQuestionHandler(
	questionSvc service.QuestionService,
	answerSvc service.AnswerService,
	voteSvc service.VoteService,
) *QuestionHandler {
	return &QuestionHandler{
		questionSvc: questionSvc,
		answerSvc:   answerSvc,
		voteSvc:     voteSvc,
	}
}

// CreateQuestion 发布问题
func (s *QuestionHandler) CreateQuestion(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.QuestionCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	question, err := s.questionSvc.CreateQuestion(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, question)
}

// ListQuestions 问题列表，支持按标签筛选
func (s *QuestionHandler) ListQuestions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	tagName := c.Query("tag")

	list, err := s.questionSvc.ListQuestions(c.Request.Context(), page, pageSize, tagName)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// GetQuestion 问题详情页聚合：问题、回答列表与票数并发取回
func (s *QuestionHandler) GetQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("question_id"), 10, 64)
	if err != nil || questionID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	ctx := c.Request.Context()
	detail := &dto.QuestionDetailDTO{}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		question, err := s.questionSvc.GetQuestion(gCtx, questionID)
		if err != nil {
			return err
		}
		detail.Question = question
		return nil
	})
	g.Go(func() error {
		answers, err := s.answerSvc.ListAnswers(gCtx, questionID)
		if err != nil {
			return err
		}
		detail.Answers = answers
		return nil
	})
	g.Go(func() error {
		tally, err := s.voteSvc.GetTally(gCtx, model.PostRef{Kind: model.PostTypeQuestion, ID: questionID})
		if err != nil {
			return err
		}
		detail.Tally = tally
		return nil
	})

	if err := g.Wait(); err != nil {
		response.Error(c, err)
		return
	}
	detail.AcceptedAnswerID = acceptedAnswerID(detail.Answers)

	// 浏览计数异步上报，不阻塞详情返回
	go func() {
		if err := s.questionSvc.TrackView(context.Background(), questionID); err != nil {
			log.Error("track question view failed", "questionID", questionID, "err", err)
		}
	}()

	response.Success(c, detail)
}

// acceptedAnswerID 从回答列表推导被采纳回答，未采纳时为 nil
func acceptedAnswerID(answers []*dto.AnswerDTO) *uint64 {
	for _, answer := range answers {
		if answer.IsAccepted {
			id := answer.ID
			return &id
		}
	}
	return nil
}

// UpdateQuestion 白名单字段的局部更新，含关闭问题
func (s *QuestionHandler) UpdateQuestion(c *gin.Context) {
	userID := c.GetUint64("user_id")
	questionID, err := strconv.ParseUint(c.Param("question_id"), 10, 64)
	if err != nil || questionID == 0 {
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

	if err := s.questionSvc.UpdateQuestion(c.Request.Context(), userID, questionID, fields); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
