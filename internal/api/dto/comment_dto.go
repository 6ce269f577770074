package dto

type CommentCreateDTO struct {
	Body string `json:"body" binding:"required,max=100"`
}

type CommentDTO struct {
	ID         uint64 `json:"id"`
	Body       string `json:"body"`
	PostID     uint64 `json:"post_id"`
	PostType   string `json:"post_type"`
	AuthorID   uint64 `json:"author_id"`
	AuthorName string `json:"author_name,omitempty"`
	CreatedAt  string `json:"created_at"`
}
