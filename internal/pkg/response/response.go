package response

import (
	"errors"
	log "log/slog"
	"net/http"
	"stackunderflow/internal/api/dto"
	"stackunderflow/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// 业务码，统一走 HTTP 200 承载
const (
	Ok                  = 200
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

// Success 成功返回封装
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.Response{
		Code:    Ok,
		Message: "success",
		Data:    data,
	})
}

// Fail 失败返回封装
func Fail(c *gin.Context, businessCode int, message string) {
	c.JSON(http.StatusOK, dto.Response{
		Code:    businessCode,
		Message: message,
	})
}

// Error 把错误翻译成业务码：绑定错误归 400，业务错误查映射，其余 500
func Error(c *gin.Context, err error) {
	var bindErrs validator.ValidationErrors
	if errors.As(err, &bindErrs) {
		Fail(c, BadRequest, "参数错误")
		return
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		Fail(c, BadRequest, "Json错误")
		return
	}

	if code, ok := service.ErrorMap[err]; ok {
		Fail(c, code, err.Error())
		return
	}

	log.Error("未映射的错误", "err", err)
	Fail(c, InternalServerError, err.Error())
}
