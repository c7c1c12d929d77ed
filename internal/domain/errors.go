package domain

import "errors"

var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrIntentNotFound      = errors.New("intent not found")
	ErrRoomNotFound        = errors.New("vibe room not found")
	ErrInvalidIntent       = errors.New("invalid intent")
	ErrOpenerQuotaExceeded = errors.New("daily opener quota exceeded")
	ErrOpenersUnavailable  = errors.New("opener generation is unavailable")
)
