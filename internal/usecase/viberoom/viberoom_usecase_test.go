package viberoom

import (
	"context"
	"testing"
	"time"

	"github.com/vyte-app/vyte-backend/internal/domain"
	"github.com/vyte-app/vyte-backend/internal/repository"
)

// fakeRoomRepo is an in-memory VibeRoomRepository honoring the same
// constraints as the schema: one active room per bucket, one membership
// per user.
type fakeRoomRepo struct {
	rooms   map[string]*domain.VibeRoom
	members map[string]*domain.VibeRoomMember // keyed by user id
	now     time.Time

	activeRoomErrs []error // queued overrides for GetActiveRoom
	createErr      error
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{
		rooms:   make(map[string]*domain.VibeRoom),
		members: make(map[string]*domain.VibeRoomMember),
		now:     time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC),
	}
}

func (f *fakeRoomRepo) advance(d time.Duration) { f.now = f.now.Add(d) }

func (f *fakeRoomRepo) lookupActive(city, country string, intent domain.IntentType) *domain.VibeRoom {
	for _, r := range f.rooms {
		if r.City == city && r.Country == country && r.Intent == intent && r.IsActive {
			return r
		}
	}
	return nil
}

func (f *fakeRoomRepo) GetActiveRoom(_ context.Context, city, country string, intent domain.IntentType) (*domain.VibeRoom, error) {
	if len(f.activeRoomErrs) > 0 {
		err := f.activeRoomErrs[0]
		f.activeRoomErrs = f.activeRoomErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	if r := f.lookupActive(city, country, intent); r != nil {
		copy := *r
		return &copy, nil
	}
	return nil, domain.ErrRoomNotFound
}

func (f *fakeRoomRepo) CreateRoom(_ context.Context, room *domain.VibeRoom) error {
	if f.createErr != nil {
		err := f.createErr
		f.createErr = nil
		return err
	}
	if f.lookupActive(room.City, room.Country, room.Intent) != nil {
		return repository.ErrRoomConflict
	}
	room.CreatedAt = f.now
	room.IsActive = true
	copy := *room
	f.rooms[room.ID] = &copy
	return nil
}

func (f *fakeRoomRepo) GetRoomByID(_ context.Context, roomID string) (*domain.VibeRoom, error) {
	if r, ok := f.rooms[roomID]; ok {
		copy := *r
		return &copy, nil
	}
	return nil, domain.ErrRoomNotFound
}

func (f *fakeRoomRepo) UpsertMember(_ context.Context, member *domain.VibeRoomMember) error {
	if existing, ok := f.members[member.UserID]; ok && existing.RoomID == member.RoomID {
		existing.LastSeenAt = f.now
		member.JoinedAt = existing.JoinedAt
		member.LastSeenAt = existing.LastSeenAt
		return nil
	}
	member.JoinedAt = f.now
	member.LastSeenAt = f.now
	copy := *member
	f.members[member.UserID] = &copy
	return nil
}

func (f *fakeRoomRepo) GetMemberByUserID(_ context.Context, userID string) (*domain.VibeRoomMember, error) {
	if m, ok := f.members[userID]; ok {
		copy := *m
		return &copy, nil
	}
	return nil, domain.ErrRoomNotFound
}

func (f *fakeRoomRepo) ListMembers(_ context.Context, roomID string) ([]domain.VibeRoomMember, error) {
	var out []domain.VibeRoomMember
	for _, m := range f.members {
		if m.RoomID == roomID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) DeleteMemberByUserID(_ context.Context, userID string) error {
	delete(f.members, userID)
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]*domain.UserProfile
}

func (f *fakeProfileRepo) Upsert(_ context.Context, _ *domain.UserProfile) error { return nil }

func (f *fakeProfileRepo) GetByID(_ context.Context, id string) (*domain.UserProfile, error) {
	if p, ok := f.profiles[id]; ok {
		return p, nil
	}
	return nil, domain.ErrProfileNotFound
}

func (f *fakeProfileRepo) GetByIDs(_ context.Context, ids []string) ([]*domain.UserProfile, error) {
	var out []*domain.UserProfile
	for _, id := range ids {
		if p, ok := f.profiles[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func strptr(s string) *string { return &s }

func localProfile(id, city, country string) *domain.UserProfile {
	p := &domain.UserProfile{ID: id, DisplayName: id}
	if city != "" {
		p.LocationCity = strptr(city)
	}
	if country != "" {
		p.LocationCountry = strptr(country)
	}
	return p
}

func newUseCase(profiles ...*domain.UserProfile) (*VibeRoomUseCase, *fakeRoomRepo) {
	rooms := newFakeRoomRepo()
	byID := make(map[string]*domain.UserProfile)
	for _, p := range profiles {
		byID[p.ID] = p
	}
	return NewVibeRoomUseCase(rooms, &fakeProfileRepo{profiles: byID}), rooms
}

func TestJoinCreatesRoomLazily(t *testing.T) {
	uc, _ := newUseCase(localProfile("alice", "London", "UK"))

	room, err := uc.Join(context.Background(), "alice", domain.IntentDrinks)
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	if room == nil {
		t.Fatal("expected a room")
	}
	if room.City != "London" || room.Country != "UK" || room.Intent != domain.IntentDrinks {
		t.Fatalf("unexpected room bucket: %+v", room.VibeRoom)
	}
	if !room.IsActive {
		t.Fatal("expected new room to be active")
	}
	if len(room.Members) != 1 || room.Members[0].UserID != "alice" {
		t.Fatalf("expected alice as sole member, got %+v", room.Members)
	}
}

func TestJoinIsIdempotentAndRefreshesLastSeen(t *testing.T) {
	uc, rooms := newUseCase(localProfile("alice", "London", "UK"))

	first, err := uc.Join(context.Background(), "alice", domain.IntentDrinks)
	if err != nil {
		t.Fatalf("first Join: %v", err)
	}

	rooms.advance(10 * time.Minute)

	second, err := uc.Join(context.Background(), "alice", domain.IntentDrinks)
	if err != nil {
		t.Fatalf("second Join: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected same room, got %s then %s", first.ID, second.ID)
	}
	if len(second.Members) != 1 {
		t.Fatalf("expected exactly one membership row, got %d", len(second.Members))
	}
	m := second.Members[0]
	if !m.LastSeenAt.After(m.JoinedAt) {
		t.Fatalf("expected last_seen_at to advance past joined_at, got joined=%v seen=%v", m.JoinedAt, m.LastSeenAt)
	}
}

func TestTwoUsersSameBucketShareRoom(t *testing.T) {
	uc, _ := newUseCase(
		localProfile("alice", "London", "UK"),
		localProfile("bob", "London", "UK"),
	)

	r1, err := uc.Join(context.Background(), "alice", domain.IntentDrinks)
	if err != nil {
		t.Fatalf("alice Join: %v", err)
	}
	r2, err := uc.Join(context.Background(), "bob", domain.IntentDrinks)
	if err != nil {
		t.Fatalf("bob Join: %v", err)
	}
	if r1.ID != r2.ID {
		t.Fatalf("expected shared room, got %s and %s", r1.ID, r2.ID)
	}
	if len(r2.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(r2.Members))
	}
}

func TestDifferentCityGetsDistinctRoom(t *testing.T) {
	uc, _ := newUseCase(
		localProfile("alice", "London", "UK"),
		localProfile("claire", "Paris", "FR"),
	)

	r1, _ := uc.Join(context.Background(), "alice", domain.IntentDrinks)
	r2, err := uc.Join(context.Background(), "claire", domain.IntentDrinks)
	if err != nil {
		t.Fatalf("claire Join: %v", err)
	}
	if r1.ID == r2.ID {
		t.Fatal("expected distinct rooms for distinct cities")
	}
}

func TestJoinNoneIntentReturnsNoRoom(t *testing.T) {
	uc, _ := newUseCase(localProfile("alice", "London", "UK"))

	room, err := uc.Join(context.Background(), "alice", domain.IntentNone)
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	if room != nil {
		t.Fatalf("expected no room for NONE, got %+v", room)
	}
}

func TestJoinWithoutLocalityReturnsNoRoom(t *testing.T) {
	uc, _ := newUseCase(localProfile("alice", "", ""))

	room, err := uc.Join(context.Background(), "alice", domain.IntentDrinks)
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	if room != nil {
		t.Fatalf("expected no room without locality, got %+v", room)
	}
}

func TestJoinRetriesAfterCreationConflict(t *testing.T) {
	uc, rooms := newUseCase(
		localProfile("alice", "London", "UK"),
		localProfile("bob", "London", "UK"),
	)

	// Bob's room appears between alice's lookup and her insert attempt.
	winner, err := uc.Join(context.Background(), "bob", domain.IntentDrinks)
	if err != nil {
		t.Fatalf("bob Join: %v", err)
	}
	rooms.activeRoomErrs = []error{domain.ErrRoomNotFound}
	rooms.createErr = repository.ErrRoomConflict

	room, err := uc.Join(context.Background(), "alice", domain.IntentDrinks)
	if err != nil {
		t.Fatalf("alice Join after conflict: %v", err)
	}
	if room.ID != winner.ID {
		t.Fatalf("expected alice to land in bob's room %s, got %s", winner.ID, room.ID)
	}
}

func TestLeaveThenActiveRoomIsAbsent(t *testing.T) {
	uc, _ := newUseCase(localProfile("alice", "London", "UK"))

	if _, err := uc.Join(context.Background(), "alice", domain.IntentDrinks); err != nil {
		t.Fatalf("Join: %v", err)
	}
	if err := uc.Leave(context.Background(), "alice"); err != nil {
		t.Fatalf("Leave: %v", err)
	}

	room, err := uc.ActiveRoom(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ActiveRoom: %v", err)
	}
	if room != nil {
		t.Fatalf("expected no active room after leave, got %+v", room)
	}
}

func TestLeaveWithoutMembershipIsNoop(t *testing.T) {
	uc, _ := newUseCase(localProfile("alice", "London", "UK"))

	if err := uc.Leave(context.Background(), "alice"); err != nil {
		t.Fatalf("Leave without membership: %v", err)
	}
}

func TestActiveRoomReturnsCurrentRoom(t *testing.T) {
	uc, _ := newUseCase(localProfile("alice", "London", "UK"))

	joined, err := uc.Join(context.Background(), "alice", domain.IntentDate)
	if err != nil {
		t.Fatalf("Join: %v", err)
	}

	active, err := uc.ActiveRoom(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ActiveRoom: %v", err)
	}
	if active == nil || active.ID != joined.ID {
		t.Fatalf("expected active room %s, got %+v", joined.ID, active)
	}
}

func TestMaterializeToleratesMissingProfile(t *testing.T) {
	// Bob has a membership but no profile row; the room fetch must keep
	// him in the list with a nil profile.
	uc, rooms := newUseCase(localProfile("alice", "London", "UK"))

	joined, err := uc.Join(context.Background(), "alice", domain.IntentDrinks)
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	rooms.members["bob"] = &domain.VibeRoomMember{
		RoomID:     joined.ID,
		UserID:     "bob",
		JoinedAt:   rooms.now,
		LastSeenAt: rooms.now,
	}

	room, err := uc.ActiveRoom(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ActiveRoom: %v", err)
	}
	if len(room.Members) != 2 {
		t.Fatalf("expected both members, got %d", len(room.Members))
	}
	for _, m := range room.Members {
		switch m.UserID {
		case "alice":
			if m.Profile == nil {
				t.Fatal("expected alice's profile to be attached")
			}
		case "bob":
			if m.Profile != nil {
				t.Fatal("expected bob's profile to be nil")
			}
		}
	}
}

func TestMembersIsEmptySliceNotNil(t *testing.T) {
	uc, rooms := newUseCase(localProfile("alice", "London", "UK"))

	joined, err := uc.Join(context.Background(), "alice", domain.IntentDrinks)
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	if err := uc.Leave(context.Background(), "alice"); err != nil {
		t.Fatalf("Leave: %v", err)
	}

	room, err := uc.materialize(context.Background(), joined.ID)
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	if room.Members == nil {
		t.Fatal("expected empty members slice, got nil")
	}
	if len(room.Members) != 0 {
		t.Fatalf("expected zero members, got %d", len(room.Members))
	}
	_ = rooms
}
