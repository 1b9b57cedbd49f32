// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"trackmate_backend/internals/configs"
	userModel "trackmate_backend/internals/features/users/user/model"
)

const accessTTL = 24 * time.Hour

// CreateAccessToken menerbitkan JWT HS256 dengan klaim sub/role/name.
func CreateAccessToken(user *userModel.UserModel, now time.Time) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", errors.New("JWT secret belum dikonfigurasi")
	}

	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role,
		"name": user.Name,
		"iat":  now.Unix(),
		"exp":  now.Add(accessTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// TokenExpiry membaca klaim exp tanpa verifikasi ulang (token sudah lolos middleware).
func TokenExpiry(tokenString string, fallback time.Time) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return fallback
	}
	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0)
	}
	return fallback
}
