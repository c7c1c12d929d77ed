package domain

import "time"

// VibeRoom is an ephemeral locality+intent bucket. At most one active
// room exists per (city, country, intent); rooms are created lazily on
// first join and never deleted.
type VibeRoom struct {
	ID        string     `json:"id" db:"id"`
	City      string     `json:"city" db:"city"`
	Country   string     `json:"country" db:"country"`
	Intent    IntentType `json:"intent" db:"intent"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	IsActive  bool       `json:"isActive" db:"is_active"`
}

// VibeRoomMember is a join record. A user is a member of at most one
// room system-wide; leave deletes by user id alone.
type VibeRoomMember struct {
	RoomID     string       `json:"roomId" db:"room_id"`
	UserID     string       `json:"userId" db:"user_id"`
	JoinedAt   time.Time    `json:"joinedAt" db:"joined_at"`
	LastSeenAt time.Time    `json:"lastSeenAt" db:"last_seen_at"`
	Profile    *UserProfile `json:"profile"`
}

// VibeRoomWithMembers is the materialized room view. Members is an
// empty slice, never nil, when the room has no members.
type VibeRoomWithMembers struct {
	VibeRoom
	Members []VibeRoomMember `json:"members"`
}
