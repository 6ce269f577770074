package service

import (
	"context"
	"stackunderflow/internal/api/dto"
	"stackunderflow/internal/model"
	"stackunderflow/internal/pkg/consts"
	"stackunderflow/internal/pkg/redis"
	"stackunderflow/internal/repository"
	"strconv"

	"github.com/jinzhu/copier"
)

// questionPatchable PATCH 请求允许出现的字段，其余一律拒绝
var questionPatchable = map[string]bool{
	"title":          true,
	"description":    true,
	"status":         true,
	"closing_remark": true,
}

var validClosingRemarks = map[string]bool{
	model.ClosingRemarkNotClear:  true,
	model.ClosingRemarkDuplicate: true,
	model.ClosingRemarkInvalid:   true,
}

type QuestionService interface {
	CreateQuestion(ctx context.Context, authorID uint64, req *dto.QuestionCreateDTO) (*dto.QuestionDTO, error)
	GetQuestion(ctx context.Context, id uint64) (*dto.QuestionDTO, error)
	ListQuestions(ctx context.Context, page int, pageSize int, tagName string) (*dto.QuestionListDTO, error)
	UpdateQuestion(ctx context.Context, userID uint64, id uint64, fields map[string]interface{}) error
	TrackView(ctx context.Context, id uint64) error
}

type questionServiceImpl struct {
	txManager    repository.TxManager
	questionRepo repository.QuestionRepo
	tagRepo      repository.TagRepo
}

func NewQuestionService(
	txManager repository.TxManager,
	questionRepo repository.QuestionRepo,
	tagRepo repository.TagRepo,
) QuestionService {
	return &questionServiceImpl{
		txManager:    txManager,
		questionRepo: questionRepo,
		tagRepo:      tagRepo,
	}
}

func (s *questionServiceImpl) CreateQuestion(ctx context.Context, authorID uint64, req *dto.QuestionCreateDTO) (*dto.QuestionDTO, error) {
	tags, err := s.tagRepo.GetOrCreateByNames(ctx, req.Tags)
	if err != nil {
		return nil, err
	}

	question := &model.Question{
		Title:       req.Title,
		Description: req.Description,
		AuthorID:    &authorID,
		Status:      model.QuestionStatusOpen,
	}
	for _, tag := range tags {
		question.Tags = append(question.Tags, *tag)
	}

	if err := s.questionRepo.CreateQuestion(ctx, question); err != nil {
		return nil, err
	}
	return s.GetQuestion(ctx, question.ID)
}

func (s *questionServiceImpl) GetQuestion(ctx context.Context, id uint64) (*dto.QuestionDTO, error) {
	question, err := s.questionRepo.GetQuestionById(ctx, id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}
	return s.convertQuestionDTO(ctx, question), nil
}

func (s *questionServiceImpl) ListQuestions(ctx context.Context, page int, pageSize int, tagName string) (*dto.QuestionListDTO, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	questions, total, err := s.questionRepo.ListQuestions(ctx, page, pageSize, tagName)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.QuestionDTO, 0, len(questions))
	for _, question := range questions {
		list = append(list, s.convertQuestionDTO(ctx, question))
	}
	return &dto.QuestionListDTO{
		List:     list,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateQuestion 白名单字段的局部更新，关闭后问题进入终态不可再改
func (s *questionServiceImpl) UpdateQuestion(ctx context.Context, userID uint64, id uint64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return ErrPayloadEmpty
	}
	for key := range fields {
		if !questionPatchable[key] {
			return ErrFieldImmutable
		}
	}

	return s.txManager.WithinTx(ctx, func(repos *repository.TxRepos) error {
		question, err := repos.Questions.GetQuestionForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if question == nil {
			return ErrQuestionNotFound
		}
		if question.AuthorID == nil || *question.AuthorID != userID {
			return ErrNotQuestionAuthor
		}
		if question.Status == model.QuestionStatusClosed {
			if status, ok := fields["status"].(string); ok && status == model.QuestionStatusOpen {
				return ErrReopenNotAllowed
			}
			return ErrQuestionClosed
		}

		// 字段取值校验放在状态检查之后，终态规则优先于取值错误
		updates, err := buildQuestionUpdates(fields)
		if err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		return repos.Questions.UpdateQuestionFields(ctx, id, updates)
	})
}

// buildQuestionUpdates 校验字段取值并转换为列更新
func buildQuestionUpdates(fields map[string]interface{}) (map[string]interface{}, error) {
	updates := make(map[string]interface{}, len(fields))
	closing := false

	if raw, ok := fields["title"]; ok {
		title, ok := raw.(string)
		if !ok || title == "" || len(title) > 60 {
			return nil, ErrParamInvalid
		}
		updates["title"] = title
	}

	if raw, ok := fields["description"]; ok {
		description, ok := raw.(string)
		if !ok || description == "" {
			return nil, ErrParamInvalid
		}
		updates["description"] = description
	}

	if raw, ok := fields["status"]; ok {
		status, ok := raw.(string)
		if !ok {
			return nil, ErrParamInvalid
		}
		switch status {
		case model.QuestionStatusClosed:
			closing = true
			updates["status"] = model.QuestionStatusClosed
		case model.QuestionStatusOpen:
			// 维持现状的写法，无实际更新
		default:
			return nil, ErrParamInvalid
		}
	}

	if raw, ok := fields["closing_remark"]; ok {
		if !closing {
			return nil, ErrClosingRemarkInvalid
		}
		remark, ok := raw.(string)
		if !ok || !validClosingRemarks[remark] {
			return nil, ErrClosingRemarkInvalid
		}
		updates["closing_remark"] = remark
	} else if closing {
		return nil, ErrClosingRemarkRequired
	}

	return updates, nil
}

// TrackView 浏览计数先进缓存，由定时任务批量刷回数据库
func (s *questionServiceImpl) TrackView(ctx context.Context, id uint64) error {
	if !redis.Ready() {
		return s.questionRepo.AddViewCount(ctx, id, 1)
	}
	key := consts.QuestionViewKey + strconv.FormatUint(id, 10)
	if err := redis.Incr(ctx, key); err != nil {
		return err
	}
	return redis.SAdd(ctx, consts.QuestionViewDirty, id)
}

func (s *questionServiceImpl) convertQuestionDTO(ctx context.Context, question *model.Question) *dto.QuestionDTO {
	item := &dto.QuestionDTO{}
	_ = copier.Copy(item, question)

	if question.Author != nil {
		item.AuthorName = question.Author.Username
	}
	item.Tags = make([]string, 0, len(question.Tags))
	for _, tag := range question.Tags {
		item.Tags = append(item.Tags, tag.Name)
	}

	viewCount := int64(question.ViewCount)
	if redis.Ready() {
		pending, err := redis.GetInt64(ctx, consts.QuestionViewKey+strconv.FormatUint(question.ID, 10))
		if err == nil {
			viewCount += pending
		}
	}
	item.ViewCount = viewCount

	item.CreatedAt = question.CreatedAt.Format("2006-01-02 15:04:05")
	item.UpdatedAt = question.UpdatedAt.Format("2006-01-02 15:04:05")
	return item
}
