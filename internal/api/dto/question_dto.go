package dto

type QuestionCreateDTO struct {
	Title       string   `json:"title" binding:"required,max=60"`
	Description string   `json:"description" binding:"required"`
	Tags        []string `json:"tags" binding:"max=5,dive,required,max=10"`
}

type QuestionDTO struct {
	ID            uint64   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	AuthorID      *uint64  `json:"author_id"`
	AuthorName    string   `json:"author_name,omitempty"`
	Status        string   `json:"status"`
	ClosingRemark *string  `json:"closing_remark,omitempty"`
	ViewCount     int64    `json:"view_count"`
	Tags          []string `json:"tags"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

type QuestionListDTO struct {
	List     []*QuestionDTO `json:"list"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// QuestionDetailDTO 问题详情页聚合，含回答列表与票数
type QuestionDetailDTO struct {
	Question         *QuestionDTO  `json:"question"`
	Answers          []*AnswerDTO  `json:"answers"`
	AcceptedAnswerID *uint64       `json:"accepted_answer_id"`
	Tally            *VoteTallyDTO `json:"tally"`
}
