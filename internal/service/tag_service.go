package service

import (
	"context"
	"stackunderflow/internal/api/dto"
	"stackunderflow/internal/model"
	"stackunderflow/internal/repository"

	"github.com/jinzhu/copier"
)

type TagService interface {
	ListTags(ctx context.Context) ([]*dto.TagDTO, error)
	CreateTag(ctx context.Context, req *dto.TagCreateDTO) (*dto.TagDTO, error)
}

type tagServiceImpl struct {
	tagRepo repository.TagRepo
}

func NewTagService(tagRepo repository.TagRepo) TagService {
	return &tagServiceImpl{tagRepo: tagRepo}
}

func (s *tagServiceImpl) ListTags(ctx context.Context) ([]*dto.TagDTO, error) {
	tags, err := s.tagRepo.ListTags(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.TagDTO, 0, len(tags))
	for _, tag := range tags {
		item := &dto.TagDTO{}
		_ = copier.Copy(item, tag)
		res = append(res, item)
	}
	return res, nil
}

func (s *tagServiceImpl) CreateTag(ctx context.Context, req *dto.TagCreateDTO) (*dto.TagDTO, error) {
	tag := &model.Tag{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.tagRepo.CreateTag(ctx, tag); err != nil {
		if isDuplicateError(err) {
			return nil, ErrParamInvalid
		}
		return nil, err
	}

	item := &dto.TagDTO{}
	_ = copier.Copy(item, tag)
	return item, nil
}
