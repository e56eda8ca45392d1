package entity

import "time"

// RefreshToken is an opaque, server-side token exchanged for new access
// tokens. Revoked or expired tokens are rejected and purged on schedule.
type RefreshToken struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id"`
	UserID    string    `json:"userId" gorm:"column:user_id;index"`
	Token     string    `json:"-" gorm:"column:token;uniqueIndex"`
	Revoked   bool      `json:"revoked" gorm:"column:revoked"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"column:expires_at;index"`
	CreatedAt time.Time `json:"createdDate" gorm:"column:created_at"`
}

// TableName sets the table gorm maps RefreshToken onto.
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
