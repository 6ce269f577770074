package handler

import (
	"stackunderflow/internal/api/dto"
	"stackunderflow/internal/pkg/response"
	"stackunderflow/internal/service"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagSvc service.TagService
}

func NewTagHandler(tagSvc service.TagService) *TagHandler {
	return &TagHandler{tagSvc: tagSvc}
}

// ListTags 全部标签
func (s *TagHandler) ListTags(c *gin.Context) {
	tags, err := s.tagSvc.ListTags(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tags)
}

// CreateTag 新建标签，仅管理员
func (s *TagHandler) CreateTag(c *gin.Context) {
	var req dto.TagCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	tag, err := s.tagSvc.CreateTag(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tag)
}
