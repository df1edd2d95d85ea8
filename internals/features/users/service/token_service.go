// file: internals/features/users/service/token_service.go
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"kelasku_backend/internals/configs"
	userModel "kelasku_backend/internals/features/users/model"
)

// CreateAccessToken menerbitkan JWT HS256 berisi identitas caller,
// berlaku selama cfg.AccessTokenTTL (default 24 jam).
func CreateAccessToken(cfg *configs.AppConfig, u userModel.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": u.UserID,
		"role":    u.UserRole,
		"iat":     now.Unix(),
		"exp":     now.Add(cfg.AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}
