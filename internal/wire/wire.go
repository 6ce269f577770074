package wire

import (
	"stackunderflow/internal/api"
	"stackunderflow/internal/api/config"
	"stackunderflow/internal/api/handler"
	"stackunderflow/internal/job"
	"stackunderflow/internal/pkg/cron"
	"stackunderflow/internal/pkg/kafka"
	"stackunderflow/internal/repository"
	"stackunderflow/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
	VoteProducer *kafka.VoteEventProducer
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	txManager := repository.NewTxManager(db)
	userRepo := repository.NewUserRepo(db)
	questionRepo := repository.NewQuestionRepo(db)
	answerRepo := repository.NewAnswerRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	voteRepo := repository.NewVoteRepo(db)
	tagRepo := repository.NewTagRepo(db)
	reputationLogRepo := repository.NewReputationLogRepo(db)

	voteProducer, err := kafka.NewVoteEventProducer(cfg)
	if err != nil {
		return nil, err
	}

	reputationService := service.NewReputationService()
	voteService := service.NewVoteService(txManager, userRepo, questionRepo, answerRepo, voteRepo, reputationService, voteProducer)
	questionService := service.NewQuestionService(txManager, questionRepo, tagRepo)
	answerService := service.NewAnswerService(txManager, answerRepo, questionRepo)
	commentService := service.NewCommentService(commentRepo, questionRepo, answerRepo)
	tagService := service.NewTagService(tagRepo)
	userService := service.NewUserService(userRepo, reputationLogRepo)

	handlers := &api.HandlersGroup{
		UserHandler:     handler.NewUserHandler(userService),
		QuestionHandler: handler.NewQuestionHandler(questionService, answerService, voteService),
		AnswerHandler:   handler.NewAnswerHandler(answerService),
		CommentHandler:  handler.NewCommentHandler(commentService),
		VoteHandler:     handler.NewVoteHandler(voteService),
		TagHandler:      handler.NewTagHandler(tagService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(
		job.NewTallySyncJob(voteRepo),
		job.NewViewFlushJob(questionRepo),
	)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
		VoteProducer: voteProducer,
	}, nil
}
