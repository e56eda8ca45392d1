package auth

import (
	"errors"

	"auth-api/pkg/msg"
)

var (
	ErrInvalidCredentials  = errors.New(msg.GetMessage("auth.error.invalid-credentials"))
	ErrInvalidRefreshToken = errors.New(msg.GetMessage("auth.error.invalid-refresh-token"))
	ErrUserNotFound        = errors.New(msg.GetMessage("user.error.not-found"))
)
