package user

import (
	"errors"

	"auth-api/pkg/msg"
)

var (
	ErrNotFound         = errors.New(msg.GetMessage("user.error.not-found"))
	ErrEmptyUsername    = errors.New(msg.GetMessage("user.error.empty-username"))
	ErrEmptyPassword    = errors.New(msg.GetMessage("user.error.empty-password"))
	ErrInvalidEmail     = errors.New(msg.GetMessage("user.error.invalid-email"))
	ErrExistentUsername = errors.New(msg.GetMessage("user.error.existent-username"))
	ErrExistentEmail    = errors.New(msg.GetMessage("user.error.existent-email"))
	ErrBreachedPassword = errors.New(msg.GetMessage("user.error.breached-password"))
)
