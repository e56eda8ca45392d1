package model

// UserEventType identifies a user lifecycle transition
type UserEventType string

const (
	UserCreated UserEventType = "USER_CREATED"
	UserUpdated UserEventType = "USER_UPDATED"
	UserDeleted UserEventType = "USER_DELETED"
)

// UserEvent is published to the user events queue on every lifecycle change
type UserEvent struct {
	EventID    string        `json:"eventId"`
	Type       UserEventType `json:"type"`
	UserID     string        `json:"userId"`
	Username   string        `json:"username"`
	OccurredAt string        `json:"occurredAt"`
}
