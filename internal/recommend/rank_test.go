package recommend

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func scoringCafe(id string, stars float64, category string) Cafe {
	return Cafe{
		Id:        id,
		Name:      id,
		Stars:     stars,
		Category:  category,
		Amenities: map[string]any{},
		Hours:     map[string]string{},
	}
}

func TestRankAndBucket(t *testing.T) {
	t.Run("Sorts descending by score", func(t *testing.T) {
		cafes := []Cafe{
			scoringCafe("low", 2.0, CategoryPopular),
			scoringCafe("high", 4.9, CategoryPopular),
			scoringCafe("mid", 3.5, CategoryPopular),
		}

		ranked := RankAndBucket(cafes, Preferences{}, DefaultPromoteThreshold)
		require.Len(t, ranked, 3)
		require.Equal(t, "high", ranked[0].Id)
		require.Equal(t, "mid", ranked[1].Id)
		require.Equal(t, "low", ranked[2].Id)
	})

	t.Run("Ties keep their input order", func(t *testing.T) {
		cafes := []Cafe{
			scoringCafe("first", 4.0, CategoryPopular),
			scoringCafe("second", 4.0, CategoryPopular),
			scoringCafe("third", 4.0, CategoryPopular),
		}

		ranked := RankAndBucket(cafes, Preferences{}, DefaultPromoteThreshold)
		require.Equal(t, "first", ranked[0].Id)
		require.Equal(t, "second", ranked[1].Id)
		require.Equal(t, "third", ranked[2].Id)
	})

	t.Run("Promotion requires strictly exceeding the threshold", func(t *testing.T) {
		// Noise match (5) + visit history (5) + nearby (5) + hours (5)
		// + amenity (2) + stars: tune stars so totals land on 25 and 25.1.
		build := func(stars float64) Cafe {
			cafe := scoringCafe("promo", stars, CategoryNearby)
			cafe.Amenities["WiFi"] = true
			cafe.Amenities["NoiseLevel"] = "quiet"
			cafe.Hours["Monday"] = "7:00-17:00"
			return cafe
		}
		prefs := Preferences{
			FavoriteAmenities:   []string{"WiFi"},
			PreferredNoiseLevel: "quiet",
			PreferredVisitTime:  "9:00",
			VisitedCafes:        []string{"promo"},
			Ratings:             map[string]float64{"promo": 5},
		}

		atThreshold := RankAndBucket([]Cafe{build(3.0)}, prefs, 25)
		require.InDelta(t, 25.0, atThreshold[0].Score, 1e-9)
		require.Equal(t, CategoryNearby, atThreshold[0].Category)

		aboveThreshold := RankAndBucket([]Cafe{build(3.1)}, prefs, 25)
		require.InDelta(t, 25.1, aboveThreshold[0].Score, 1e-9)
		require.Equal(t, CategoryRecommended, aboveThreshold[0].Category)
	})

	t.Run("Promotion does not mutate the input", func(t *testing.T) {
		cafe := scoringCafe("original", 5.0, CategoryNearby)
		cafes := []Cafe{cafe}

		RankAndBucket(cafes, Preferences{}, 1)
		require.Equal(t, CategoryNearby, cafes[0].Category)
	})

	t.Run("Ranking is idempotent", func(t *testing.T) {
		cafes := []Cafe{
			scoringCafe("a", 4.2, CategoryPopular),
			scoringCafe("b", 4.2, CategoryNearby),
			scoringCafe("c", 1.0, CategoryPopular),
		}

		first := RankAndBucket(cafes, Preferences{}, DefaultPromoteThreshold)
		second := RankAndBucket(cafes, Preferences{}, DefaultPromoteThreshold)
		require.Equal(t, first, second)
	})
}

func TestFilterByCategory(t *testing.T) {
	ranked := []ScoredCafe{
		{Cafe: scoringCafe("a", 5, CategoryNearby), Score: 10},
		{Cafe: scoringCafe("b", 4, CategoryPopular), Score: 8},
		{Cafe: scoringCafe("c", 3, CategoryNearby), Score: 6},
	}

	nearby := FilterByCategory(ranked, CategoryNearby)
	require.Len(t, nearby, 2)
	require.Equal(t, "a", nearby[0].Id)
	require.Equal(t, "c", nearby[1].Id)

	require.Empty(t, FilterByCategory(ranked, CategoryRecommended))
}

func TestDistance(t *testing.T) {
	// Two points in downtown Long Beach just under 2 km apart.
	d := Distance(33.7701, -118.1937, 33.7526, -118.1900)
	require.InDelta(t, 1.98, d, 0.1)

	require.Equal(t, 0.0, Distance(33.77, -118.19, 33.77, -118.19))
}

func TestWithinRadius(t *testing.T) {
	cafe := scoringCafe("a", 4, CategoryPopular)
	cafe.Latitude = 33.7701
	cafe.Longitude = -118.1937

	require.True(t, WithinRadius(cafe, 33.7526, -118.1900, 5))
	require.False(t, WithinRadius(cafe, 34.05, -118.24, 5))

	missing := scoringCafe("b", 4, CategoryPopular)
	require.False(t, WithinRadius(missing, 33.7526, -118.19, 5000))
}
