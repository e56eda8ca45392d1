package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"auth-api/internal/domain/gateway/cache"
	"auth-api/internal/domain/gateway/db"
	"auth-api/internal/domain/model"
	"auth-api/pkg/log"
)

// UserEventProcessor consumes user lifecycle events, keeping the user cache
// consistent with what other instances publish and revoking the refresh
// tokens of deleted accounts.
type UserEventProcessor struct {
	cacheGateway cache.UserCacheGateway
	tokenGateway db.RefreshTokenGateway
}

func NewUserEventProcessor(cacheGateway cache.UserCacheGateway, tokenGateway db.RefreshTokenGateway) *UserEventProcessor {
	return &UserEventProcessor{
		cacheGateway: cacheGateway,
		tokenGateway: tokenGateway,
	}
}

// HandleMessage implements the sqs.Handler interface
func (p *UserEventProcessor) HandleMessage(msg types.Message) error {
	if msg.Body == nil {
		return fmt.Errorf("received message with nil body")
	}

	var event model.UserEvent
	if err := json.Unmarshal([]byte(*msg.Body), &event); err != nil {
		return fmt.Errorf("failed to unmarshal user event: %w", err)
	}

	log.Infof("Processing user event %s (%s) for user %s", event.EventID, event.Type, event.UserID)

	switch event.Type {
	case model.UserUpdated:
		if err := p.cacheGateway.EvictUser(context.Background(), event.UserID); err != nil {
			return fmt.Errorf("failed to evict user %s from cache: %w", event.UserID, err)
		}
	case model.UserDeleted:
		if err := p.cacheGateway.EvictUser(context.Background(), event.UserID); err != nil {
			return fmt.Errorf("failed to evict user %s from cache: %w", event.UserID, err)
		}
		if err := p.tokenGateway.RevokeAllByUserID(event.UserID); err != nil {
			return fmt.Errorf("failed to revoke refresh tokens for user %s: %w", event.UserID, err)
		}
	case model.UserCreated:
		// Nothing cached yet for a newly created user.
	default:
		log.Warnf("Ignoring user event %s with unknown type: %s", event.EventID, event.Type)
	}

	return nil
}
