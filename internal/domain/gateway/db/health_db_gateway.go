package db

import "auth-api/internal/domain/model"

type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}
