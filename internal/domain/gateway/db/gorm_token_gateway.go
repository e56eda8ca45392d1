package db

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"auth-api/internal/domain/entity"
)

type GormRefreshTokenGateway struct {
	DB *gorm.DB
}

var _ RefreshTokenGateway = (*GormRefreshTokenGateway)(nil)

func NewGormRefreshTokenGateway(db *gorm.DB) *GormRefreshTokenGateway {
	return &GormRefreshTokenGateway{DB: db}
}

func (gateway *GormRefreshTokenGateway) Create(token entity.RefreshToken) (*entity.RefreshToken, error) {
	token.ID = uuid.New().String()
	token.CreatedAt = time.Now().UTC()

	if err := gateway.DB.Create(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

func (gateway *GormRefreshTokenGateway) FindByToken(token string) (*entity.RefreshToken, error) {
	var found entity.RefreshToken
	err := gateway.DB.Where("token = ?", token).First(&found).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (gateway *GormRefreshTokenGateway) RevokeByToken(token string) error {
	return gateway.DB.Model(&entity.RefreshToken{}).
		Where("token = ?", token).
		Update("revoked", true).Error
}

func (gateway *GormRefreshTokenGateway) RevokeAllByUserID(userID string) error {
	return gateway.DB.Model(&entity.RefreshToken{}).
		Where("user_id = ?", userID).
		Update("revoked", true).Error
}

// DeleteExpired removes tokens past their expiration together with revoked
// ones, returning how many rows were purged.
func (gateway *GormRefreshTokenGateway) DeleteExpired() (int64, error) {
	result := gateway.DB.
		Where("expires_at < ? OR revoked = ?", time.Now().UTC(), true).
		Delete(&entity.RefreshToken{})
	return result.RowsAffected, result.Error
}
