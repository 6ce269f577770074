package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid          = errors.New("参数错误")
	ErrUserNotFound          = errors.New("用户不存在")
	ErrUserExist             = errors.New("用户已存在")
	ErrUserUsernameExist     = errors.New("用户名已存在")
	ErrPasswordIncorrect     = errors.New("密码错误")
	ErrQuestionNotFound      = errors.New("问题不存在")
	ErrAnswerNotFound        = errors.New("回答不存在")
	ErrCommentNotFound       = errors.New("评论不存在")
	ErrPostNotFound          = errors.New("帖子不存在")
	ErrSelfVote              = errors.New("不能给自己的帖子投票")
	ErrReputationTooLow      = errors.New("声望不足，无法投票")
	ErrNotAuthor             = errors.New("只有作者可以执行此操作")
	ErrNotQuestionAuthor     = errors.New("只有提问者可以执行此操作")
	ErrAnswerAlreadyAccepted = errors.New("该问题已有被采纳的回答")
	ErrVoteConflict          = errors.New("投票冲突，请重试")
	ErrQuestionClosed        = errors.New("问题已关闭")
	ErrClosingRemarkRequired = errors.New("关闭问题必须填写关闭原因")
	ErrClosingRemarkInvalid  = errors.New("关闭原因无效")
	ErrReopenNotAllowed      = errors.New("问题关闭后不能重新打开")
	ErrFieldImmutable        = errors.New("包含不可修改的字段")
	ErrPayloadEmpty          = errors.New("更新内容不能为空")
	ErrAnswerOnClosed        = errors.New("问题已关闭，不能回答")
	UnauthorizedError        = errors.New("权限不足")
	UnExpectedError          = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:          BadRequest,
	ErrUserNotFound:          NotFound,
	ErrUserExist:             BadRequest,
	ErrUserUsernameExist:     BadRequest,
	ErrPasswordIncorrect:     Unauthorized,
	ErrQuestionNotFound:      NotFound,
	ErrAnswerNotFound:        NotFound,
	ErrCommentNotFound:       NotFound,
	ErrPostNotFound:          NotFound,
	ErrSelfVote:              Forbidden,
	ErrReputationTooLow:      Forbidden,
	ErrNotAuthor:             Forbidden,
	ErrNotQuestionAuthor:     Forbidden,
	ErrAnswerAlreadyAccepted: Conflict,
	ErrVoteConflict:          Conflict,
	ErrQuestionClosed:        BadRequest,
	ErrClosingRemarkRequired: BadRequest,
	ErrClosingRemarkInvalid:  BadRequest,
	ErrReopenNotAllowed:      BadRequest,
	ErrFieldImmutable:        BadRequest,
	ErrPayloadEmpty:          BadRequest,
	ErrAnswerOnClosed:        BadRequest,
	UnauthorizedError:        Unauthorized,
	UnExpectedError:          InternalServerError,
}
