package consts

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// 投票参与门槛，声望需严格大于该值
const ReputationThreshold = 15
