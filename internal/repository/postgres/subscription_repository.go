package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/vyte-app/vyte-backend/internal/domain"
	"github.com/vyte-app/vyte-backend/internal/repository"
)

type subscriptionRepository struct {
	db *sqlx.DB
}

func NewSubscriptionRepository(db *sqlx.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) GetActiveTier(ctx context.Context, userID string) (domain.SubscriptionTier, error) {
	var slug string
	query := `
		SELECT p.slug
		FROM user_subscriptions s
		INNER JOIN subscription_plans p ON p.id = s.plan_id
		WHERE s.user_id = $1 AND s.status = 'ACTIVE'
		ORDER BY s.current_period_end DESC
		LIMIT 1
	`
	err := r.db.GetContext(ctx, &slug, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.TierFree, nil
		}
		return domain.TierFree, err
	}

	switch tier := domain.SubscriptionTier(slug); tier {
	case domain.TierFree, domain.TierPlus, domain.TierElite:
		return tier, nil
	}
	// Unknown plan slugs degrade to FREE rather than failing the request.
	return domain.TierFree, nil
}
