package cache

import (
	"context"

	"auth-api/internal/domain/entity"
	"auth-api/internal/domain/model"
)

type UserCacheGateway interface {
	// GetUser reports whether the user was cached and, if so, returns it
	GetUser(ctx context.Context, id string) (*entity.User, bool, error)
	SetUser(ctx context.Context, user *entity.User) error
	EvictUser(ctx context.Context, id string) error
	Health() model.ComponentHealthStatus
}
