package model

import (
	"time"

	"auth-api/internal/domain/entity"
)

// LoginDTO is the request body for authenticating a user
type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshDTO is the request body for exchanging a refresh token
type RefreshDTO struct {
	RefreshToken string `json:"refreshToken"`
}

// TokenResponse is returned on successful login or refresh
type TokenResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken,omitempty"`
	ExpiresAt    time.Time    `json:"expiresAt"`
	User         *entity.User `json:"user,omitempty"`
}
