package intent

import (
	"context"
	"fmt"
	"time"

	"github.com/vyte-app/vyte-backend/internal/domain"
	"github.com/vyte-app/vyte-backend/internal/repository"
)

// IntentUseCase is the intent directory: it tracks each user's current
// declared intent and answers nearby-intent searches. It never touches
// vibe room membership; callers sequence room join/leave separately.
type IntentUseCase struct {
	intentRepo  repository.IntentRepository
	profileRepo repository.ProfileRepository
}

func NewIntentUseCase(
	intentRepo repository.IntentRepository,
	profileRepo repository.ProfileRepository,
) *IntentUseCase {
	return &IntentUseCase{
		intentRepo:  intentRepo,
		profileRepo: profileRepo,
	}
}

// SetIntent overwrites (or creates) the caller's intent row. Repeated
// calls with the same intent just refresh the timestamp.
func (uc *IntentUseCase) SetIntent(ctx context.Context, userID string, intent domain.IntentType) (*domain.UserIntent, error) {
	if !intent.IsValid() {
		return nil, domain.ErrInvalidIntent
	}

	row := &domain.UserIntent{
		UserID: userID,
		Intent: intent,
	}
	if err := uc.intentRepo.Upsert(ctx, row); err != nil {
		return nil, fmt.Errorf("failed to upsert intent: %w", err)
	}
	return row, nil
}

// GetIntent returns the caller's current intent row, if any.
func (uc *IntentUseCase) GetIntent(ctx context.Context, userID string) (*domain.UserIntent, error) {
	return uc.intentRepo.GetByUserID(ctx, userID)
}

// FindNearby returns other users sharing the intent within the caller's
// locality and the freshness window, truncated to limit. A caller with no
// locality gets an empty result. Ordering among eligible candidates is
// implementation-defined; callers must not assume recency or distance order.
func (uc *IntentUseCase) FindNearby(ctx context.Context, requesterID string, intent domain.IntentType, limit int) ([]domain.NearbyMatch, error) {
	if !intent.IsMatchable() {
		return nil, domain.ErrInvalidIntent
	}
	if limit <= 0 {
		return []domain.NearbyMatch{}, nil
	}

	me, err := uc.profileRepo.GetByID(ctx, requesterID)
	if err != nil {
		if err == domain.ErrProfileNotFound {
			return []domain.NearbyMatch{}, nil
		}
		return nil, fmt.Errorf("failed to get requester profile: %w", err)
	}
	if !me.HasLocality() {
		return []domain.NearbyMatch{}, nil
	}

	matches, err := uc.intentRepo.FindNearby(ctx, repository.NearbyIntentQuery{
		RequesterID: requesterID,
		Intent:      intent,
		City:        *me.LocationCity,
		Country:     *me.LocationCountry,
		Since:       time.Now().Add(-domain.IntentFreshnessWindow),
		Limit:       limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search nearby intents: %w", err)
	}

	matches = dedupeLatest(matches)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	if matches == nil {
		matches = []domain.NearbyMatch{}
	}
	return matches, nil
}

// dedupeLatest keeps the most recently updated intent row per user. The
// one-row-per-user key makes duplicates impossible; this is a safety net
// for the merge, not something the contract relies on.
func dedupeLatest(matches []domain.NearbyMatch) []domain.NearbyMatch {
	if len(matches) < 2 {
		return matches
	}

	byUser := make(map[string]int, len(matches))
	out := matches[:0]
	for _, m := range matches {
		if i, seen := byUser[m.Intent.UserID]; seen {
			if m.Intent.UpdatedAt.After(out[i].Intent.UpdatedAt) {
				out[i] = m
			}
			continue
		}
		byUser[m.Intent.UserID] = len(out)
		out = append(out, m)
	}
	return out
}
