package dto

type AnswerCreateDTO struct {
	AnswerBody string `json:"answer_body" binding:"required"`
}

type AnswerDTO struct {
	ID         uint64 `json:"id"`
	QuestionID uint64 `json:"question_id"`
	AuthorID   uint64 `json:"author_id"`
	AuthorName string `json:"author_name,omitempty"`
	AnswerBody string `json:"answer_body"`
	IsAccepted bool   `json:"is_accepted"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}
