package health

import "auth-api/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
	Liveness() model.LivenessResponse
}
