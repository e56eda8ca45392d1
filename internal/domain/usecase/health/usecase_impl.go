package health

import (
	"auth-api/internal/domain/gateway/cache"
	"auth-api/internal/domain/gateway/db"
	"auth-api/internal/domain/gateway/queue"
	"auth-api/internal/domain/model"
	"auth-api/pkg/msg"
	"auth-api/pkg/resource"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	cacheGateway cache.UserCacheGateway
	queueGateway queue.HealthGateway
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, cacheGateway cache.UserCacheGateway,
	queueGateway queue.HealthGateway) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		cacheGateway: cacheGateway,
		queueGateway: queueGateway,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	dbHealth := useCase.dbGateway.Health()
	cacheHealth := useCase.cacheGateway.Health()
	queueHealth := useCase.queueGateway.Health()

	overallStatus := model.StatusUp
	if dbHealth.Status == model.StatusDown ||
		cacheHealth.Status == model.StatusDown ||
		queueHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Database: dbHealth,
		Cache:    cacheHealth,
		Queue:    queueHealth,
	}
}

// Liveness is the cheap probe behind the container health check. It reports
// process liveness only and never touches downstream components.
func (useCase *healthUseCase) Liveness() model.LivenessResponse {
	return model.LivenessResponse{
		Status:  "healthy",
		Message: msg.GetMessage("app.liveness"),
		Version: resource.GetString("app.version"),
	}
}
