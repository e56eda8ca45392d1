package processor_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"auth-api/internal/application/processor"
	"auth-api/internal/domain/entity"
	"auth-api/internal/domain/model"
)

type fakeCacheGateway struct {
	evicted []string
}

func (c *fakeCacheGateway) GetUser(ctx context.Context, id string) (*entity.User, bool, error) {
	return nil, false, nil
}

func (c *fakeCacheGateway) SetUser(ctx context.Context, u *entity.User) error {
	return nil
}

func (c *fakeCacheGateway) EvictUser(ctx context.Context, id string) error {
	c.evicted = append(c.evicted, id)
	return nil
}

func (c *fakeCacheGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.StatusUp}
}

type fakeTokenGateway struct {
	revokedUsers []string
}

func (g *fakeTokenGateway) Create(t entity.RefreshToken) (*entity.RefreshToken, error) {
	return &t, nil
}

func (g *fakeTokenGateway) FindByToken(token string) (*entity.RefreshToken, error) {
	return nil, nil
}

func (g *fakeTokenGateway) RevokeByToken(token string) error {
	return nil
}

func (g *fakeTokenGateway) RevokeAllByUserID(userID string) error {
	g.revokedUsers = append(g.revokedUsers, userID)
	return nil
}

func (g *fakeTokenGateway) DeleteExpired() (int64, error) {
	return 0, nil
}

func messageFor(t *testing.T, event model.UserEvent) types.Message {
	t.Helper()
	body, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("failed to marshal event: %v", err)
	}
	return types.Message{
		MessageId: aws.String(event.EventID),
		Body:      aws.String(string(body)),
	}
}

func TestHandleMessageEvictsOnUpdate(t *testing.T) {
	cacheGateway := &fakeCacheGateway{}
	tokenGateway := &fakeTokenGateway{}
	p := processor.NewUserEventProcessor(cacheGateway, tokenGateway)

	err := p.HandleMessage(messageFor(t, model.UserEvent{
		EventID: "evt-1",
		Type:    model.UserUpdated,
		UserID:  "user-1",
	}))
	if err != nil {
		t.Fatalf("HandleMessage returned error: %v", err)
	}

	if len(cacheGateway.evicted) != 1 {
		t.Errorf("expected 1 eviction, got %d", len(cacheGateway.evicted))
	}
	if len(tokenGateway.revokedUsers) != 0 {
		t.Errorf("expected no token revocations on update, got %d", len(tokenGateway.revokedUsers))
	}
}

func TestHandleMessageRevokesTokensOnDelete(t *testing.T) {
	cacheGateway := &fakeCacheGateway{}
	tokenGateway := &fakeTokenGateway{}
	p := processor.NewUserEventProcessor(cacheGateway, tokenGateway)

	err := p.HandleMessage(messageFor(t, model.UserEvent{
		EventID: "evt-3",
		Type:    model.UserDeleted,
		UserID:  "user-1",
	}))
	if err != nil {
		t.Fatalf("HandleMessage returned error: %v", err)
	}

	if len(cacheGateway.evicted) != 1 || cacheGateway.evicted[0] != "user-1" {
		t.Errorf("expected user-1 evicted from cache, got %v", cacheGateway.evicted)
	}
	if len(tokenGateway.revokedUsers) != 1 || tokenGateway.revokedUsers[0] != "user-1" {
		t.Errorf("expected refresh tokens revoked for user-1, got %v", tokenGateway.revokedUsers)
	}
}

func TestHandleMessageIgnoresCreate(t *testing.T) {
	cacheGateway := &fakeCacheGateway{}
	p := processor.NewUserEventProcessor(cacheGateway, &fakeTokenGateway{})

	err := p.HandleMessage(messageFor(t, model.UserEvent{
		EventID: "evt-2",
		Type:    model.UserCreated,
		UserID:  "user-1",
	}))
	if err != nil {
		t.Fatalf("HandleMessage returned error: %v", err)
	}
	if len(cacheGateway.evicted) != 0 {
		t.Errorf("expected no evictions, got %d", len(cacheGateway.evicted))
	}
}

func TestHandleMessageRejectsBadPayloads(t *testing.T) {
	p := processor.NewUserEventProcessor(&fakeCacheGateway{}, &fakeTokenGateway{})

	if err := p.HandleMessage(types.Message{}); err == nil {
		t.Error("expected an error for a message with nil body")
	}

	if err := p.HandleMessage(types.Message{Body: aws.String("not json")}); err == nil {
		t.Error("expected an error for a malformed body")
	}
}
