package api

import "stackunderflow/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler     *handler.UserHandler
	QuestionHandler *handler.QuestionHandler
	AnswerHandler   *handler.AnswerHandler
	CommentHandler  *handler.CommentHandler
	VoteHandler     *handler.VoteHandler
	TagHandler      *handler.TagHandler
}
