package domain

import "time"

// IntentType is a user's transient self-declared desire for social
// interaction. NONE turns off visibility without deleting the row.
type IntentType string

const (
	IntentNone           IntentType = "NONE"
	IntentJustChat       IntentType = "JUST_CHAT"
	IntentDrinks         IntentType = "DRINKS"
	IntentDate           IntentType = "DATE"
	IntentSeeWhereItGoes IntentType = "SEE_WHERE_IT_GOES"
)

// IntentFreshnessWindow is how long a declared intent stays visible to
// nearby search. There is no background expiry; stale rows are filtered
// out at query time.
const IntentFreshnessWindow = 4 * time.Hour

// IsValid reports whether the value is a known intent, NONE included.
func (i IntentType) IsValid() bool {
	switch i {
	case IntentNone, IntentJustChat, IntentDrinks, IntentDate, IntentSeeWhereItGoes:
		return true
	}
	return false
}

// IsMatchable reports whether the intent participates in nearby search
// and vibe rooms.
func (i IntentType) IsMatchable() bool {
	return i.IsValid() && i != IntentNone
}

// UserIntent is the single current intent row for a user.
type UserIntent struct {
	UserID    string     `json:"userId" db:"user_id"`
	Intent    IntentType `json:"intent" db:"intent"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}

// NearbyMatch pairs a candidate's profile with their current intent row.
type NearbyMatch struct {
	Profile UserProfile `json:"profile"`
	Intent  UserIntent  `json:"intent"`
}
