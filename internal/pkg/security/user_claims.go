package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenSecret = "underflow"
	tokenIssuer = "stackunderflow"
	tokenTTL    = 24 * time.Hour
)

// UserClaims 登录态携带的业务字段
type UserClaims struct {
	UserID uint64   `json:"user_id"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}
