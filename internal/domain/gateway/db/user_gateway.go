package db

import (
	"auth-api/internal/domain/entity"
)

type UserGateway interface {
	FindAll(offset int, limit int) ([]entity.User, error)
	FindByUsernamePart(usernamePart string, offset int, limit int) ([]entity.User, error)
	FindByID(id string) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Create(user entity.User) (*entity.User, error)
	UpdateByID(id string, updated entity.User) (*entity.User, error)
	DeleteByID(id string) error
	CountAll() (int64, error)
	CountByUsernamePart(usernamePart string) (int64, error)
}
