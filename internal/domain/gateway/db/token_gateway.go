package db

import (
	"auth-api/internal/domain/entity"
)

type RefreshTokenGateway interface {
	Create(token entity.RefreshToken) (*entity.RefreshToken, error)
	FindByToken(token string) (*entity.RefreshToken, error)
	RevokeByToken(token string) error
	RevokeAllByUserID(userID string) error
	DeleteExpired() (int64, error)
}
