package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/vyte-app/vyte-backend/internal/domain"
	"github.com/vyte-app/vyte-backend/internal/repository"
)

func TestCreateRoomMapsUniqueViolationToConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVibeRoomRepository(db)

	mock.ExpectQuery("INSERT INTO vibe_rooms").
		WithArgs("room-1", "London", "UK", domain.IntentDrinks).
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.CreateRoom(context.Background(), &domain.VibeRoom{
		ID:      "room-1",
		City:    "London",
		Country: "UK",
		Intent:  domain.IntentDrinks,
	})
	if err != repository.ErrRoomConflict {
		t.Fatalf("expected ErrRoomConflict, got %v", err)
	}
}

func TestCreateRoomSetsActiveAndCreatedAt(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVibeRoomRepository(db)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO vibe_rooms").
		WithArgs("room-1", "London", "UK", domain.IntentDrinks).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	room := &domain.VibeRoom{ID: "room-1", City: "London", Country: "UK", Intent: domain.IntentDrinks}
	if err := repo.CreateRoom(context.Background(), room); err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	if !room.IsActive || !room.CreatedAt.Equal(now) {
		t.Fatalf("unexpected room state: %+v", room)
	}
}

func TestGetActiveRoomMapsNoRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVibeRoomRepository(db)

	mock.ExpectQuery("FROM vibe_rooms").
		WithArgs("London", "UK", domain.IntentDrinks).
		WillReturnRows(sqlmock.NewRows([]string{"id", "city", "country", "intent", "created_at", "is_active"}))

	_, err := repo.GetActiveRoom(context.Background(), "London", "UK", domain.IntentDrinks)
	if err != domain.ErrRoomNotFound {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestDeleteMemberByUserIDIsKeyedOnUserAlone(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVibeRoomRepository(db)

	mock.ExpectExec("DELETE FROM vibe_room_members WHERE user_id").
		WithArgs("alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteMemberByUserID(context.Background(), "alice"); err != nil {
		t.Fatalf("DeleteMemberByUserID: %v", err)
	}

	// Deleting again matches zero rows and still succeeds.
	mock.ExpectExec("DELETE FROM vibe_room_members WHERE user_id").
		WithArgs("alice").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteMemberByUserID(context.Background(), "alice"); err != nil {
		t.Fatalf("repeat DeleteMemberByUserID: %v", err)
	}
}
