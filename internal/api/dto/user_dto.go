package dto

type RegisterDTO struct {
	Username   string `json:"username" binding:"required,min=3,max=15"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6,max=64"`
	Profession string `json:"profession" binding:"max=50"`
}

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserDTO struct {
	ID               uint64 `json:"id"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	Profession       string `json:"profession"`
	Role             string `json:"role"`
	ReputationPoints int    `json:"reputation_points"`
	CreatedAt        string `json:"created_at"`
}

type ReputationLogDTO struct {
	ID        uint64 `json:"id"`
	Amount    int    `json:"amount"`
	Action    string `json:"action"`
	EventID   string `json:"event_id"`
	CreatedAt string `json:"created_at"`
}
