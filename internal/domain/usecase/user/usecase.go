package user

import (
	"auth-api/internal/domain/entity"
	"auth-api/internal/domain/model"
)

type UseCase interface {
	FindAll(page int, size int) (*model.Page[entity.User], error)
	FindByUsernamePart(usernamePart string, page int, size int) (*model.Page[entity.User], error)
	FindByID(id string) (*entity.User, error)
	Create(dto model.CreateUserDTO) (*entity.User, error)
	UpdateByID(id string, dto model.UpdateUserDTO) (*entity.User, error)
	DeleteByID(id string) error
	CountAll() (int64, error)
}
