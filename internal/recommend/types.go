// Package recommend holds the pure scoring and ranking logic used by the
// recommendations endpoint. Nothing in here touches the database: callers map
// stored documents into these input types, and every function is safe to call
// concurrently.
package recommend

import "time"

// Review is the slice of a review that matters for rating aggregation.
type Review struct {
	Rating           int
	Text             string
	Date             time.Time
	AttributeRatings map[string]int
}

// Cafe is the scoring view of a cafe listing. Amenities carries the raw
// attribute values as stored (booleans or string-encoded booleans); the
// scorer normalizes them at its boundary.
type Cafe struct {
	Id          string
	Name        string
	Stars       float64
	ReviewCount int
	Category    string
	Amenities   map[string]any
	Hours       map[string]string
	Latitude    float64
	Longitude   float64
}

// Preferences is one user's ranking input. It is read-only to the scorer.
type Preferences struct {
	FavoriteAmenities   []string
	VisitedCafes        []string
	Ratings             map[string]float64
	PreferredNoiseLevel string
	PreferredVisitTime  string
	GroupFriendly       bool
	CreditCardsAccepted bool
	ParkingPreference   string
}

// ScoredCafe annotates a cafe with its computed score. Category may differ
// from the stored one when the score crossed the promotion threshold; that
// relabeling is display-only and never written back.
type ScoredCafe struct {
	Cafe
	Score float64 `json:"score"`
}
