package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/vyte-app/vyte-backend/internal/domain"
	"github.com/vyte-app/vyte-backend/internal/repository"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
}

func NewProfileUseCase(profileRepo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{profileRepo: profileRepo}
}

// UpsertProfileRequest represents a profile submission. Locality fields
// are optional; a profile without both city and country is invisible to
// nearby search.
type UpsertProfileRequest struct {
	DisplayName     string   `json:"displayName" binding:"required,min=1,max=100"`
	Birthdate       *string  `json:"birthdate" binding:"omitempty,datetime=2006-01-02"`
	Gender          string   `json:"gender" binding:"omitempty,max=50"`
	Bio             *string  `json:"bio" binding:"omitempty,max=500"`
	LocationCity    *string  `json:"locationCity" binding:"omitempty,max=100"`
	LocationCountry *string  `json:"locationCountry" binding:"omitempty,max=100"`
	LocationLat     *float64 `json:"locationLat" binding:"omitempty,min=-90,max=90"`
	LocationLng     *float64 `json:"locationLng" binding:"omitempty,min=-180,max=180"`
}

// Upsert creates or replaces the caller's profile, keyed by id.
func (uc *ProfileUseCase) Upsert(ctx context.Context, userID string, req *UpsertProfileRequest) (*domain.UserProfile, error) {
	var birthdate *time.Time
	if req.Birthdate != nil {
		parsed, err := time.Parse("2006-01-02", *req.Birthdate)
		if err != nil {
			return nil, fmt.Errorf("invalid birthdate: %w", err)
		}
		birthdate = &parsed
	}

	profile := &domain.UserProfile{
		ID:              userID,
		DisplayName:     req.DisplayName,
		Birthdate:       birthdate,
		Gender:          req.Gender,
		Bio:             req.Bio,
		LocationCity:    req.LocationCity,
		LocationCountry: req.LocationCountry,
		LocationLat:     req.LocationLat,
		LocationLng:     req.LocationLng,
	}

	if err := uc.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}
	return profile, nil
}

// Get returns the caller's own profile.
func (uc *ProfileUseCase) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	return uc.profileRepo.GetByID(ctx, userID)
}
