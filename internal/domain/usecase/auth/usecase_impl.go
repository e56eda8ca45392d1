package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"auth-api/internal/domain/entity"
	"auth-api/internal/domain/gateway/db"
	"auth-api/internal/domain/model"
	"auth-api/pkg/token"
)

type authUseCase struct {
	userGateway  db.UserGateway
	tokenGateway db.RefreshTokenGateway
	tokenManager *token.Manager
	refreshTTL   time.Duration
}

func NewAuthUseCase(userGateway db.UserGateway, tokenGateway db.RefreshTokenGateway,
	tokenManager *token.Manager, refreshTTL time.Duration) UseCase {
	return &authUseCase{
		userGateway:  userGateway,
		tokenGateway: tokenGateway,
		tokenManager: tokenManager,
		refreshTTL:   refreshTTL,
	}
}

func (uc *authUseCase) Login(dto model.LoginDTO) (*model.TokenResponse, error) {
	if dto.Username == "" || dto.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := uc.userGateway.FindByUsername(dto.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Burn a comparison anyway so response timing does not reveal
		// whether the username exists.
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$0000000000000000000000"), []byte(dto.Password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, expiresAt, err := uc.tokenManager.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	refreshToken, err := uc.tokenGateway.Create(entity.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().UTC().Add(uc.refreshTTL),
	})
	if err != nil {
		return nil, err
	}

	return &model.TokenResponse{
		Token:        accessToken,
		RefreshToken: refreshToken.Token,
		ExpiresAt:    expiresAt,
		User:         user,
	}, nil
}

func (uc *authUseCase) Refresh(dto model.RefreshDTO) (*model.TokenResponse, error) {
	if dto.RefreshToken == "" {
		return nil, ErrInvalidRefreshToken
	}

	stored, err := uc.tokenGateway.FindByToken(dto.RefreshToken)
	if err != nil {
		return nil, err
	}
	if stored == nil || stored.Revoked || stored.ExpiresAt.Before(time.Now().UTC()) {
		return nil, ErrInvalidRefreshToken
	}

	user, err := uc.userGateway.FindByID(stored.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// The account was deleted after the token was issued
		return nil, ErrInvalidRefreshToken
	}

	accessToken, expiresAt, err := uc.tokenManager.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &model.TokenResponse{
		Token:     accessToken,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout revokes the given refresh token. Revoking a token that is already
// revoked or unknown is not an error, so repeated logouts are harmless.
func (uc *authUseCase) Logout(dto model.RefreshDTO) error {
	if dto.RefreshToken == "" {
		return ErrInvalidRefreshToken
	}
	return uc.tokenGateway.RevokeByToken(dto.RefreshToken)
}

func (uc *authUseCase) CurrentUser(userID string) (*entity.User, error) {
	user, err := uc.userGateway.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// PurgeExpiredTokens removes expired and revoked refresh tokens
func (uc *authUseCase) PurgeExpiredTokens() (int64, error) {
	return uc.tokenGateway.DeleteExpired()
}
