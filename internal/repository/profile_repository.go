package repository

import (
	"context"

	"github.com/vyte-app/vyte-backend/internal/domain"
)

type ProfileRepository interface {
	Upsert(ctx context.Context, profile *domain.UserProfile) error
	GetByID(ctx context.Context, id string) (*domain.UserProfile, error)
	GetByIDs(ctx context.Context, ids []string) ([]*domain.UserProfile, error)
}
