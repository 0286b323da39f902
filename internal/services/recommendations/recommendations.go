// Package recommendations assembles the ranked cafe list for one user. It
// collects the user's implicit signals (reviews and favorites), merges them
// with the submitted preference profile and runs the scorer over the full
// directory. Computed pages are cached per user in Redis when configured.
package recommendations

import (
	"context"
	"fmt"

	"github.com/lealre/cafes-backend/internal/cache"
	"github.com/lealre/cafes-backend/internal/mongodb"
	"github.com/lealre/cafes-backend/internal/recommend"
	"github.com/lealre/cafes-backend/internal/services/cafes"
	"github.com/lealre/cafes-backend/internal/services/favorites"
	"go.mongodb.org/mongo-driver/bson"
)

// Recommend scores the whole directory against the user's profile and
// returns it in rank order. The cache entry covers the unfiltered ranking;
// category filtering stays cheap enough to redo per request.
func Recommend(db *mongodb.DB, ctx context.Context, c *cache.Cache, userId string, req RecommendRequest) ([]RecommendedCafe, error) {
	cacheKey := fmt.Sprintf("recommendations:%s", userId)

	var cached []RecommendedCafe
	if hit, err := c.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	cafesDb, err := db.GetCafes(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	prefs, err := buildPreferences(db, ctx, userId, req)
	if err != nil {
		return nil, err
	}

	cafesById := make(map[string]mongodb.CafeDb, len(cafesDb))
	scoringCafes := make([]recommend.Cafe, len(cafesDb))
	for i, cafeDb := range cafesDb {
		cafesById[cafeDb.Id] = cafeDb

		scoringCafe := cafes.MapDbCafeToScoringCafe(cafeDb)
		if req.Latitude != nil && req.Longitude != nil {
			radiusKm := req.RadiusKm
			if radiusKm <= 0 {
				radiusKm = defaultNearbyRadiusKm
			}
			if recommend.WithinRadius(scoringCafe, *req.Latitude, *req.Longitude, radiusKm) {
				scoringCafe.Category = recommend.CategoryNearby
			}
		}
		scoringCafes[i] = scoringCafe
	}

	promoteThreshold := recommend.DefaultPromoteThreshold
	if req.PromoteThreshold != nil {
		promoteThreshold = *req.PromoteThreshold
	}

	scored := recommend.RankAndBucket(scoringCafes, prefs, promoteThreshold)

	results := make([]RecommendedCafe, len(scored))
	for i, scoredCafe := range scored {
		apiCafe := cafes.MapDbCafeToApiCafe(cafesById[scoredCafe.Id])
		apiCafe.Category = scoredCafe.Category
		results[i] = RecommendedCafe{Cafe: apiCafe, Score: scoredCafe.Score}
	}

	if err := c.SetJSON(ctx, cacheKey, results); err != nil {
		return nil, err
	}

	return results, nil
}

// FilterByCategory keeps only one display category, preserving rank order.
func FilterByCategory(results []RecommendedCafe, category string) []RecommendedCafe {
	filtered := make([]RecommendedCafe, 0, len(results))
	for _, result := range results {
		if result.Category == category {
			filtered = append(filtered, result)
		}
	}
	return filtered
}

const defaultNearbyRadiusKm = 5.0

// buildPreferences merges the submitted profile with the user's stored
// signals: reviewed and favorited cafes count as visited, and the user's own
// ratings feed the visit-history term of the score.
func buildPreferences(db *mongodb.DB, ctx context.Context, userId string, req RecommendRequest) (recommend.Preferences, error) {
	prefs := recommend.Preferences{
		FavoriteAmenities:   req.FavoriteAmenities,
		PreferredNoiseLevel: req.PreferredNoiseLevel,
		PreferredVisitTime:  req.PreferredVisitTime,
		GroupFriendly:       req.GroupFriendly,
		CreditCardsAccepted: req.CreditCardsAccepted,
		ParkingPreference:   req.ParkingPreference,
		Ratings:             map[string]float64{},
	}

	reviewsDb, err := db.GetReviews(ctx, bson.M{"userId": userId})
	if err != nil {
		return recommend.Preferences{}, err
	}
	for _, reviewDb := range reviewsDb {
		prefs.VisitedCafes = append(prefs.VisitedCafes, reviewDb.CafeId)
		prefs.Ratings[reviewDb.CafeId] = float64(reviewDb.Rating)
	}

	favoriteIds, err := favorites.GetFavoriteCafeIds(db, ctx, userId)
	if err != nil {
		return recommend.Preferences{}, err
	}
	for _, favoriteId := range favoriteIds {
		if !containsString(prefs.VisitedCafes, favoriteId) {
			prefs.VisitedCafes = append(prefs.VisitedCafes, favoriteId)
		}
	}

	return prefs, nil
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
