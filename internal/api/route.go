package api

import (
	"net/http"
	"stackunderflow/internal/api/middleware"
	"stackunderflow/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.GET("/:user_id", group.UserHandler.GetUserById)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetUserInfo)
				authGroup.GET("/reputation/logs", group.UserHandler.GetReputationLogs)
			}
		}

		questionGroup := apiGroup.Group("/questions")
		{
			questionGroup.GET("", group.QuestionHandler.ListQuestions)
			questionGroup.GET("/:question_id", group.QuestionHandler.GetQuestion)
			questionGroup.GET("/:question_id/answers", group.AnswerHandler.ListAnswers)
			questionGroup.GET("/:question_id/comments", group.CommentHandler.ListQuestionComments)
			questionGroup.GET("/:question_id/tally", group.VoteHandler.GetQuestionTally)

			authGroup := questionGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.QuestionHandler.CreateQuestion)
				authGroup.PATCH("/:question_id", group.QuestionHandler.UpdateQuestion)
				authGroup.POST("/:question_id/answers", group.AnswerHandler.CreateAnswer)
				authGroup.POST("/:question_id/comments", group.CommentHandler.CreateQuestionComment)
				authGroup.POST("/:question_id/upvote", group.VoteHandler.UpvoteQuestion)
				authGroup.POST("/:question_id/downvote", group.VoteHandler.DownvoteQuestion)
			}
		}

		answerGroup := apiGroup.Group("/answers")
		{
			answerGroup.GET("/:answer_id", group.AnswerHandler.GetAnswer)
			answerGroup.GET("/:answer_id/comments", group.CommentHandler.ListAnswerComments)
			answerGroup.GET("/:answer_id/tally", group.VoteHandler.GetAnswerTally)

			authGroup := answerGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.PATCH("/:answer_id", group.AnswerHandler.UpdateAnswer)
				authGroup.POST("/:answer_id/comments", group.CommentHandler.CreateAnswerComment)
				authGroup.POST("/:answer_id/upvote", group.VoteHandler.UpvoteAnswer)
				authGroup.POST("/:answer_id/downvote", group.VoteHandler.DownvoteAnswer)
			}
		}

		commentGroup := apiGroup.Group("/comments")
		commentGroup.Use(middleware.AuthMiddleware())
		{
			commentGroup.PATCH("/:comment_id", group.CommentHandler.UpdateComment)
			commentGroup.DELETE("/:comment_id", group.CommentHandler.DeleteComment)
		}

		tagGroup := apiGroup.Group("/tags")
		{
			tagGroup.GET("", group.TagHandler.ListTags)

			adminGroup := tagGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles("ADMIN"))
			{
				adminGroup.POST("", group.TagHandler.CreateTag)
			}
		}
	}

	return r
}
