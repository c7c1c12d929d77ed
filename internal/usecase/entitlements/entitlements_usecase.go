package entitlements

import (
	"context"
	"fmt"

	"github.com/vyte-app/vyte-backend/internal/domain"
	"github.com/vyte-app/vyte-backend/internal/repository"
)

type EntitlementsUseCase struct {
	subscriptionRepo repository.SubscriptionRepository
}

func NewEntitlementsUseCase(subscriptionRepo repository.SubscriptionRepository) *EntitlementsUseCase {
	return &EntitlementsUseCase{subscriptionRepo: subscriptionRepo}
}

// EntitlementsResponse pairs the resolved tier with its feature limits.
type EntitlementsResponse struct {
	Tier         domain.SubscriptionTier    `json:"tier"`
	Entitlements domain.FeatureEntitlements `json:"entitlements"`
}

// Resolve fetches the caller's subscription snapshot and derives the
// entitlements from it. The result is computed per request and never
// cached across requests.
func (uc *EntitlementsUseCase) Resolve(ctx context.Context, userID string) (*EntitlementsResponse, error) {
	tier, err := uc.subscriptionRepo.GetActiveTier(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve subscription tier: %w", err)
	}
	return &EntitlementsResponse{
		Tier:         tier,
		Entitlements: domain.EntitlementsForTier(tier),
	}, nil
}

// NearbyLimit resolves the caller's tier and returns the maximum number
// of nearby-search results it grants.
func (uc *EntitlementsUseCase) NearbyLimit(ctx context.Context, userID string) (int, error) {
	tier, err := uc.subscriptionRepo.GetActiveTier(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve subscription tier: %w", err)
	}
	return domain.NearbyLimitForTier(tier), nil
}
