package domain

import "time"

// UserProfile is the root entity. The id comes from the auth token
// subject; locality (city + country) is the only geographic matching key.
type UserProfile struct {
	ID              string     `json:"id" db:"id"`
	DisplayName     string     `json:"displayName" db:"display_name"`
	Birthdate       *time.Time `json:"birthdate" db:"birthdate"`
	Gender          string     `json:"gender" db:"gender"`
	Bio             *string    `json:"bio" db:"bio"`
	LocationLat     *float64   `json:"locationLat" db:"location_lat"`
	LocationLng     *float64   `json:"locationLng" db:"location_lng"`
	LocationCity    *string    `json:"locationCity" db:"location_city"`
	LocationCountry *string    `json:"locationCountry" db:"location_country"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
}

// HasLocality reports whether both city and country are set. Users
// without a locality can neither see nor be seen in nearby search.
func (p *UserProfile) HasLocality() bool {
	return p.LocationCity != nil && *p.LocationCity != "" &&
		p.LocationCountry != nil && *p.LocationCountry != ""
}
