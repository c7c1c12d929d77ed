package repository

import (
	"context"
	"errors"

	"github.com/vyte-app/vyte-backend/internal/domain"
)

// ErrRoomConflict reports that inserting a room hit the uniqueness
// constraint on (city, country, intent, is_active): a concurrent joiner
// created the room first and the caller should re-fetch it.
var ErrRoomConflict = errors.New("active vibe room already exists")

type VibeRoomRepository interface {
	GetActiveRoom(ctx context.Context, city, country string, intent domain.IntentType) (*domain.VibeRoom, error)
	CreateRoom(ctx context.Context, room *domain.VibeRoom) error
	GetRoomByID(ctx context.Context, roomID string) (*domain.VibeRoom, error)

	UpsertMember(ctx context.Context, member *domain.VibeRoomMember) error
	GetMemberByUserID(ctx context.Context, userID string) (*domain.VibeRoomMember, error)
	ListMembers(ctx context.Context, roomID string) ([]domain.VibeRoomMember, error)
	DeleteMemberByUserID(ctx context.Context, userID string) error
}
