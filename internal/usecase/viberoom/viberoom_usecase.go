package viberoom

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vyte-app/vyte-backend/internal/domain"
	"github.com/vyte-app/vyte-backend/internal/repository"
)

// VibeRoomUseCase is the vibe room registry: it maintains at most one
// active room per (city, country, intent) and each user's single
// membership. Declaring a new intent does not move membership; clients
// leave the old room and join the new one themselves.
type VibeRoomUseCase struct {
	roomRepo    repository.VibeRoomRepository
	profileRepo repository.ProfileRepository
}

func NewVibeRoomUseCase(
	roomRepo repository.VibeRoomRepository,
	profileRepo repository.ProfileRepository,
) *VibeRoomUseCase {
	return &VibeRoomUseCase{
		roomRepo:    roomRepo,
		profileRepo: profileRepo,
	}
}

// Join finds or lazily creates the active room for the caller's locality
// and intent, then upserts membership (refreshing last_seen_at on repeat
// joins). Returns (nil, nil) for NONE intents or callers without a
// locality — no room, not an error.
func (uc *VibeRoomUseCase) Join(ctx context.Context, userID string, intent domain.IntentType) (*domain.VibeRoomWithMembers, error) {
	if !intent.IsMatchable() {
		return nil, nil
	}

	me, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if !me.HasLocality() {
		return nil, nil
	}

	room, err := uc.findOrCreateRoom(ctx, *me.LocationCity, *me.LocationCountry, intent)
	if err != nil {
		return nil, err
	}

	member := &domain.VibeRoomMember{RoomID: room.ID, UserID: userID}
	if err := uc.roomRepo.UpsertMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to upsert membership: %w", err)
	}

	return uc.materialize(ctx, room.ID)
}

// findOrCreateRoom resolves the creation race through the storage
// uniqueness constraint: on conflict the row a concurrent joiner just
// inserted is re-fetched. At most one read-then-write attempt is made.
func (uc *VibeRoomUseCase) findOrCreateRoom(ctx context.Context, city, country string, intent domain.IntentType) (*domain.VibeRoom, error) {
	room, err := uc.roomRepo.GetActiveRoom(ctx, city, country, intent)
	if err == nil {
		return room, nil
	}
	if !errors.Is(err, domain.ErrRoomNotFound) {
		return nil, fmt.Errorf("failed to look up room: %w", err)
	}

	room = &domain.VibeRoom{
		ID:      uuid.NewString(),
		City:    city,
		Country: country,
		Intent:  intent,
	}
	err = uc.roomRepo.CreateRoom(ctx, room)
	if err == nil {
		return room, nil
	}
	if errors.Is(err, repository.ErrRoomConflict) {
		room, err = uc.roomRepo.GetActiveRoom(ctx, city, country, intent)
		if err != nil {
			return nil, fmt.Errorf("failed to re-fetch room after conflict: %w", err)
		}
		return room, nil
	}
	return nil, fmt.Errorf("failed to create room: %w", err)
}

// Leave deletes the caller's membership, whichever room it is in.
// Leaving without being a member is a no-op.
func (uc *VibeRoomUseCase) Leave(ctx context.Context, userID string) error {
	if err := uc.roomRepo.DeleteMemberByUserID(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}
	return nil
}

// ActiveRoom returns the materialized room the caller is currently a
// member of, or (nil, nil) when they are not in any room.
func (uc *VibeRoomUseCase) ActiveRoom(ctx context.Context, userID string) (*domain.VibeRoomWithMembers, error) {
	member, err := uc.roomRepo.GetMemberByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up membership: %w", err)
	}
	return uc.materialize(ctx, member.RoomID)
}

// materialize builds the room-with-members view: the room row, its member
// rows, and one batch profile fetch over the distinct member ids — two
// reads past the room row no matter how many members there are. Members
// whose profile is missing keep a nil profile instead of failing the call.
func (uc *VibeRoomUseCase) materialize(ctx context.Context, roomID string) (*domain.VibeRoomWithMembers, error) {
	room, err := uc.roomRepo.GetRoomByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	members, err := uc.roomRepo.ListMembers(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	result := &domain.VibeRoomWithMembers{
		VibeRoom: *room,
		Members:  []domain.VibeRoomMember{},
	}
	if len(members) == 0 {
		return result, nil
	}

	seen := make(map[string]bool, len(members))
	userIDs := make([]string, 0, len(members))
	for _, m := range members {
		if !seen[m.UserID] {
			seen[m.UserID] = true
			userIDs = append(userIDs, m.UserID)
		}
	}

	profiles, err := uc.profileRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch member profiles: %w", err)
	}

	profilesByID := make(map[string]*domain.UserProfile, len(profiles))
	for _, p := range profiles {
		profilesByID[p.ID] = p
	}

	for _, m := range members {
		m.Profile = profilesByID[m.UserID]
		result.Members = append(result.Members, m)
	}
	return result, nil
}
