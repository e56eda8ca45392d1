package cache

import (
	"context"
	"strconv"
	"time"

	"auth-api/internal/domain/entity"
	"auth-api/internal/domain/model"
	"auth-api/pkg/redis"
)

const userCacheName = "users"

type RedisUserCacheGateway struct {
	client *redis.Client
	cache  *redis.Cache
}

var _ UserCacheGateway = (*RedisUserCacheGateway)(nil)

func NewRedisUserCacheGateway(client *redis.Client, ttl time.Duration) *RedisUserCacheGateway {
	return &RedisUserCacheGateway{
		client: client,
		cache:  redis.NewCache(client, userCacheName, ttl),
	}
}

func (gateway *RedisUserCacheGateway) GetUser(ctx context.Context, id string) (*entity.User, bool, error) {
	var user entity.User
	found, err := gateway.cache.Get(ctx, id, &user)
	if err != nil || !found {
		return nil, false, err
	}
	return &user, true, nil
}

func (gateway *RedisUserCacheGateway) SetUser(ctx context.Context, user *entity.User) error {
	return gateway.cache.Set(ctx, user.ID, user)
}

func (gateway *RedisUserCacheGateway) EvictUser(ctx context.Context, id string) error {
	return gateway.cache.Delete(ctx, id)
}

func (gateway *RedisUserCacheGateway) Health() model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := gateway.client.Ping(ctx); err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"message": err.Error(),
			},
		}
	}

	stats := gateway.client.Stats()
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"message":     string(model.StatusUp),
			"total_conns": strconv.FormatUint(uint64(stats.TotalConns), 10),
			"idle_conns":  strconv.FormatUint(uint64(stats.IdleConns), 10),
			"cache_ttl":   gateway.cache.TTL().String(),
		},
	}
}
