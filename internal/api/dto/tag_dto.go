package dto

type TagCreateDTO struct {
	Name        string  `json:"name" binding:"required,max=10"`
	Description *string `json:"description"`
}

type TagDTO struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}
