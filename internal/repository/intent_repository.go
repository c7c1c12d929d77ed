package repository

import (
	"context"
	"time"

	"github.com/vyte-app/vyte-backend/internal/domain"
)

// NearbyIntentQuery describes one nearby-intent search: candidates whose
// current intent matches, updated at or after Since, whose profile locality
// equals City/Country exactly, excluding the requester.
type NearbyIntentQuery struct {
	RequesterID string
	Intent      domain.IntentType
	City        string
	Country     string
	Since       time.Time
	Limit       int
}

type IntentRepository interface {
	Upsert(ctx context.Context, intent *domain.UserIntent) error
	GetByUserID(ctx context.Context, userID string) (*domain.UserIntent, error)
	FindNearby(ctx context.Context, q NearbyIntentQuery) ([]domain.NearbyMatch, error)
}
