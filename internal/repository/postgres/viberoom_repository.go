package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/vyte-app/vyte-backend/internal/domain"
	"github.com/vyte-app/vyte-backend/internal/repository"
)

const uniqueViolation = "23505"

type vibeRoomRepository struct {
	db *sqlx.DB
}

func NewVibeRoomRepository(db *sqlx.DB) repository.VibeRoomRepository {
	return &vibeRoomRepository{db: db}
}

func (r *vibeRoomRepository) GetActiveRoom(ctx context.Context, city, country string, intent domain.IntentType) (*domain.VibeRoom, error) {
	var room domain.VibeRoom
	query := `
		SELECT id, city, country, intent, created_at, is_active
		FROM vibe_rooms
		WHERE city = $1 AND country = $2 AND intent = $3 AND is_active = true
	`
	err := r.db.GetContext(ctx, &room, query, city, country, intent)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// CreateRoom inserts an active room. A unique violation on the partial
// index over (city, country, intent) is mapped to ErrRoomConflict so the
// caller can re-fetch the row a concurrent joiner just created.
func (r *vibeRoomRepository) CreateRoom(ctx context.Context, room *domain.VibeRoom) error {
	query := `
		INSERT INTO vibe_rooms (id, city, country, intent, is_active)
		VALUES ($1, $2, $3, $4, true)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query, room.ID, room.City, room.Country, room.Intent).
		Scan(&room.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return repository.ErrRoomConflict
		}
		return err
	}
	room.IsActive = true
	return nil
}

func (r *vibeRoomRepository) GetRoomByID(ctx context.Context, roomID string) (*domain.VibeRoom, error) {
	var room domain.VibeRoom
	query := `SELECT id, city, country, intent, created_at, is_active FROM vibe_rooms WHERE id = $1`
	err := r.db.GetContext(ctx, &room, query, roomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (r *vibeRoomRepository) UpsertMember(ctx context.Context, member *domain.VibeRoomMember) error {
	query := `
		INSERT INTO vibe_room_members (room_id, user_id, joined_at, last_seen_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (room_id, user_id) DO UPDATE SET
			last_seen_at = CURRENT_TIMESTAMP
		RETURNING joined_at, last_seen_at
	`
	return r.db.QueryRowContext(ctx, query, member.RoomID, member.UserID).
		Scan(&member.JoinedAt, &member.LastSeenAt)
}

func (r *vibeRoomRepository) GetMemberByUserID(ctx context.Context, userID string) (*domain.VibeRoomMember, error) {
	var member domain.VibeRoomMember
	query := `
		SELECT room_id, user_id, joined_at, last_seen_at
		FROM vibe_room_members
		WHERE user_id = $1
	`
	err := r.db.GetContext(ctx, &member, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *vibeRoomRepository) ListMembers(ctx context.Context, roomID string) ([]domain.VibeRoomMember, error) {
	var members []domain.VibeRoomMember
	query := `
		SELECT room_id, user_id, joined_at, last_seen_at
		FROM vibe_room_members
		WHERE room_id = $1
	`
	err := r.db.SelectContext(ctx, &members, query, roomID)
	return members, err
}

// DeleteMemberByUserID removes the user's membership regardless of room.
// Deleting a non-member is a no-op, not an error.
func (r *vibeRoomRepository) DeleteMemberByUserID(ctx context.Context, userID string) error {
	query := `DELETE FROM vibe_room_members WHERE user_id = $1`
	_, err := r.db.ExecContext(ctx, query, userID)
	return err
}
