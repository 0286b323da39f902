package recommend

import (
	"strconv"
	"strings"
)

// Points awarded per matching term. Changing any of these changes ranking
// outcomes.
const (
	amenityPoints    = 2
	noiseLevelPoints = 5
	visitPointsMax   = 5
	nearbyPoints     = 5
	hoursPoints      = 5
	secondaryPoints  = 2
)

/*
Score computes the additive affinity between one cafe and one preference
profile. Terms are independent and summed:

  - 2 points per favorite amenity the cafe satisfies
  - 5 points for an exact noise-level match
  - the cafe's star rating (0-5)
  - up to 5 points of visit history (a prior rating above 3 counts as 5)
  - 5 points when the cafe is in the "nearby" category
  - 5 points when the cafe opens before the preferred visit time on Monday
    and stays open at least two hours past it
  - 2 points each for group-friendliness, credit-card and bike-parking matches

Missing or malformed data never errors; it just contributes nothing.
*/
func Score(cafe Cafe, prefs Preferences) float64 {
	score := 0.0

	for _, amenity := range prefs.FavoriteAmenities {
		if Truthy(cafe.Amenities[amenity]) {
			score += amenityPoints
		}
	}

	if prefs.PreferredNoiseLevel != "" && amenityString(cafe.Amenities["NoiseLevel"]) == prefs.PreferredNoiseLevel {
		score += noiseLevelPoints
	}

	score += cafe.Stars

	if containsId(prefs.VisitedCafes, cafe.Id) {
		prior := prefs.Ratings[cafe.Id]
		if prior > 3 {
			score += visitPointsMax
		} else if prior > 0 {
			score += prior
		}
	}

	if cafe.Category == CategoryNearby {
		score += nearbyPoints
	}

	open, close := mondayHours(cafe.Hours)
	preferred := hourOfDay(prefs.PreferredVisitTime)
	if open <= preferred && close >= preferred+2 {
		score += hoursPoints
	}

	if raw, ok := cafe.Amenities["RestaurantsGoodForGroups"]; ok && Truthy(raw) == prefs.GroupFriendly {
		score += secondaryPoints
	}
	if raw, ok := cafe.Amenities["BusinessAcceptsCreditCards"]; ok && Truthy(raw) == prefs.CreditCardsAccepted {
		score += secondaryPoints
	}
	if Truthy(cafe.Amenities["BikeParking"]) && prefs.ParkingPreference == "bike" {
		score += secondaryPoints
	}

	return score
}

// Truthy collapses the inconsistent attribute encodings in the source data
// (JS booleans, "True"/"False" strings, Python-repr values like "u'True'")
// into a strict boolean. Anything unrecognized, including a missing value,
// is false.
func Truthy(raw any) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(stripReprQuotes(v), "true")
	default:
		return false
	}
}

// amenityString unwraps a string-encoded attribute value for exact
// comparisons (e.g. NoiseLevel "u'quiet'" -> "quiet"). Non-string values
// have no string form and never match.
func amenityString(raw any) string {
	s, ok := raw.(string)
	if !ok {
		return ""
	}
	return stripReprQuotes(s)
}

func stripReprQuotes(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "u'")
	s = strings.TrimPrefix(s, "'")
	s = strings.TrimSuffix(s, "'")
	return s
}

// mondayHours parses the cafe's Monday "H:MM-H:MM" entry down to whole
// open/close hours. Missing or unparseable entries read as 0-0, which can
// never satisfy the visit-time window.
func mondayHours(hours map[string]string) (open, close float64) {
	entry := hours["Monday"]
	parts := strings.SplitN(entry, "-", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	return hourOfDay(parts[0]), hourOfDay(parts[1])
}

func hourOfDay(clock string) float64 {
	hourPart, _, _ := strings.Cut(strings.TrimSpace(clock), ":")
	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return 0
	}
	return float64(hour)
}

func containsId(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
