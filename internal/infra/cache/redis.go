package cache

import (
	"log"

	"auth-api/pkg/redis"
	"auth-api/pkg/resource"
)

var Client *redis.Client

func init() {
	config := redis.NewConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithDefaultCacheTTL(resource.GetDuration("app.redis.default-cache-ttl"))

	var err error
	Client, err = redis.NewClient(config)
	if err != nil {
		log.Fatalf("Failed to create Redis client: %v", err)
	}
}
