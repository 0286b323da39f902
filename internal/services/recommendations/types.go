package recommendations

import "github.com/lealre/cafes-backend/internal/services/cafes"

// RecommendRequest is the preference profile the client submits. Location is
// optional: when present, cafes within RadiusKm are treated as "nearby"
// before scoring.
type RecommendRequest struct {
	FavoriteAmenities   []string `json:"favoriteAmenities"`
	PreferredNoiseLevel string   `json:"preferredNoiseLevel"`
	PreferredVisitTime  string   `json:"preferredVisitTime"`
	GroupFriendly       bool     `json:"groupFriendly"`
	CreditCardsAccepted bool     `json:"creditCardsAccepted"`
	ParkingPreference   string   `json:"parkingPreference"`
	Latitude            *float64 `json:"latitude,omitempty"`
	Longitude           *float64 `json:"longitude,omitempty"`
	RadiusKm            float64  `json:"radiusKm,omitempty"`
	PromoteThreshold    *float64 `json:"promoteThreshold,omitempty"`
}

// RecommendedCafe is a full cafe listing annotated with its score. Category
// reflects any display-only promotion or nearby relabeling.
type RecommendedCafe struct {
	cafes.Cafe
	Score float64 `json:"score"`
}

type RecommendationsResponse struct {
	Cafes []RecommendedCafe `json:"cafes"`
}
