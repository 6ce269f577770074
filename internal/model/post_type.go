package model

// 帖子类型常量集，投票与评论通过 (post_id, post_type) 引用三类实体
const (
	PostTypeQuestion = "QUESTION"
	PostTypeAnswer   = "ANSWER"
	PostTypeComment  = "COMMENT"
)

// PostRef 带类型标签的帖子引用
type PostRef struct {
	Kind string
	ID   uint64
}
