package auth

import (
	"auth-api/internal/domain/entity"
	"auth-api/internal/domain/model"
)

type UseCase interface {
	Login(dto model.LoginDTO) (*model.TokenResponse, error)
	Refresh(dto model.RefreshDTO) (*model.TokenResponse, error)
	Logout(dto model.RefreshDTO) error
	CurrentUser(userID string) (*entity.User, error)
	PurgeExpiredTokens() (int64, error)
}
