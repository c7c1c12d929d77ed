package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/vyte-app/vyte-backend/internal/domain"
	"github.com/vyte-app/vyte-backend/internal/repository"
)

type intentRepository struct {
	db *sqlx.DB
}

func NewIntentRepository(db *sqlx.DB) repository.IntentRepository {
	return &intentRepository{db: db}
}

func (r *intentRepository) Upsert(ctx context.Context, intent *domain.UserIntent) error {
	query := `
		INSERT INTO user_intents (user_id, intent, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id) DO UPDATE SET
			intent = EXCLUDED.intent,
			updated_at = CURRENT_TIMESTAMP
		RETURNING updated_at
	`
	return r.db.QueryRowContext(ctx, query, intent.UserID, intent.Intent).
		Scan(&intent.UpdatedAt)
}

func (r *intentRepository) GetByUserID(ctx context.Context, userID string) (*domain.UserIntent, error) {
	var intent domain.UserIntent
	query := `SELECT user_id, intent, updated_at FROM user_intents WHERE user_id = $1`
	err := r.db.GetContext(ctx, &intent, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrIntentNotFound
		}
		return nil, err
	}
	return &intent, nil
}

// FindNearby runs the single joined query: intent rows filtered by intent,
// recency, and the requester's locality, inner-joined to profiles. Result
// order is whatever the planner produces; callers must not rely on it.
func (r *intentRepository) FindNearby(ctx context.Context, q repository.NearbyIntentQuery) ([]domain.NearbyMatch, error) {
	query := `
		SELECT
			i.user_id, i.intent, i.updated_at,
			p.id, p.display_name, p.birthdate, p.gender, p.bio,
			p.location_lat, p.location_lng, p.location_city, p.location_country,
			p.created_at, p.updated_at
		FROM user_intents i
		INNER JOIN user_profiles p ON p.id = i.user_id
		WHERE i.intent = $1
		  AND i.updated_at >= $2
		  AND p.location_city = $3
		  AND p.location_country = $4
		  AND i.user_id != $5
		LIMIT $6
	`
	rows, err := r.db.QueryContext(ctx, query,
		q.Intent, q.Since, q.City, q.Country, q.RequesterID, q.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []domain.NearbyMatch
	for rows.Next() {
		var m domain.NearbyMatch
		if err := rows.Scan(
			&m.Intent.UserID, &m.Intent.Intent, &m.Intent.UpdatedAt,
			&m.Profile.ID, &m.Profile.DisplayName, &m.Profile.Birthdate, &m.Profile.Gender, &m.Profile.Bio,
			&m.Profile.LocationLat, &m.Profile.LocationLng, &m.Profile.LocationCity, &m.Profile.LocationCountry,
			&m.Profile.CreatedAt, &m.Profile.UpdatedAt,
		); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
