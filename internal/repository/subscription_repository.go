package repository

import (
	"context"

	"github.com/vyte-app/vyte-backend/internal/domain"
)

type SubscriptionRepository interface {
	// GetActiveTier returns the plan tier of the user's newest active
	// subscription, or TierFree when none exists.
	GetActiveTier(ctx context.Context, userID string) (domain.SubscriptionTier, error)
}
