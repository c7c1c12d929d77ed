package opener

import (
	"context"
	"fmt"

	"github.com/vyte-app/vyte-backend/internal/domain"
	"github.com/vyte-app/vyte-backend/internal/repository"
)

// Generator produces conversation openers from both sides' interests.
type Generator interface {
	GenerateOpeners(ctx context.Context, myBio, theirBio string, intent domain.IntentType) ([]string, error)
}

// QuotaStore tracks per-user daily usage counters.
type QuotaStore interface {
	// IncrementDaily bumps today's counter for the user and returns the
	// new value.
	IncrementDaily(ctx context.Context, userID string) (int64, error)
}

// OpenerUseCase generates AI conversation openers, rationed per day by
// the caller's tier entitlements.
type OpenerUseCase struct {
	generator        Generator
	quota            QuotaStore
	subscriptionRepo repository.SubscriptionRepository
}

func NewOpenerUseCase(
	generator Generator,
	quota QuotaStore,
	subscriptionRepo repository.SubscriptionRepository,
) *OpenerUseCase {
	return &OpenerUseCase{
		generator:        generator,
		quota:            quota,
		subscriptionRepo: subscriptionRepo,
	}
}

// GenerateOpenersRequest carries the conversation context.
type GenerateOpenersRequest struct {
	MyBio    string            `json:"myBio" binding:"omitempty,max=500"`
	TheirBio string            `json:"theirBio" binding:"omitempty,max=500"`
	Intent   domain.IntentType `json:"intent" binding:"required"`
}

// Generate checks the caller's daily quota against their tier and, when
// allowed, produces up to three openers.
func (uc *OpenerUseCase) Generate(ctx context.Context, userID string, req *GenerateOpenersRequest) ([]string, error) {
	if uc.generator == nil {
		return nil, domain.ErrOpenersUnavailable
	}
	if !req.Intent.IsMatchable() {
		return nil, domain.ErrInvalidIntent
	}

	tier, err := uc.subscriptionRepo.GetActiveTier(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve subscription tier: %w", err)
	}
	maxPerDay := domain.EntitlementsForTier(tier).MaxAIOpenersPerDay

	used, err := uc.quota.IncrementDaily(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to update opener quota: %w", err)
	}
	if used > int64(maxPerDay) {
		return nil, domain.ErrOpenerQuotaExceeded
	}

	openers, err := uc.generator.GenerateOpeners(ctx, req.MyBio, req.TheirBio, req.Intent)
	if err != nil {
		return nil, fmt.Errorf("failed to generate openers: %w", err)
	}
	return openers, nil
}
