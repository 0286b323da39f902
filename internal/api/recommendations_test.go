package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/lealre/cafes-backend/internal/mongodb"
	"github.com/lealre/cafes-backend/internal/services/recommendations"
	"github.com/lealre/cafes-backend/internal/services/reviews"
	"github.com/stretchr/testify/require"
)

func TestRecommendations(t *testing.T) {
	t.Run("Cafes come back ranked by score", func(t *testing.T) {
		resetDB(t)

		_, token := signupAndLogin(t, "seeker", "seeker@email.com", "testpass123")
		seedCafes(t, []interface{}{
			mongodb.CafeDb{
				Id: "cafe-wifi", Name: "Wired", Stars: 4.0, IsOpen: 1, Category: "popular",
				Attributes: map[string]any{"WiFi": "True"},
			},
			mongodb.CafeDb{
				Id: "cafe-plain", Name: "Plain", Stars: 4.5, IsOpen: 1, Category: "popular",
			},
		})

		req := recommendations.RecommendRequest{FavoriteAmenities: []string{"WiFi"}}
		resp := doRequest(t, http.MethodPost, "/recommendations", token, req)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result recommendations.RecommendationsResponse
		err := json.NewDecoder(resp.Body).Decode(&result)
		require.NoError(t, err)
		require.Len(t, result.Cafes, 2)

		// Amenity match (+2) on 4.0 stars beats the plain 4.5 star cafe.
		require.Equal(t, "cafe-wifi", result.Cafes[0].Id)
		require.InDelta(t, 6.0, result.Cafes[0].Score, 1e-9)
		require.InDelta(t, 4.5, result.Cafes[1].Score, 1e-9)
	})

	t.Run("High scores promote the display category", func(t *testing.T) {
		resetDB(t)

		_, token := signupAndLogin(t, "promoter", "promoter@email.com", "testpass123")
		seedCafes(t, []interface{}{
			mongodb.CafeDb{
				Id: "cafe-star", Name: "Star", Stars: 4.8, IsOpen: 1, Category: "popular",
				Attributes: map[string]any{"WiFi": true},
			},
		})

		threshold := 5.0
		req := recommendations.RecommendRequest{
			FavoriteAmenities: []string{"WiFi"},
			PromoteThreshold:  &threshold,
		}
		resp := doRequest(t, http.MethodPost, "/recommendations", token, req)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result recommendations.RecommendationsResponse
		err := json.NewDecoder(resp.Body).Decode(&result)
		require.NoError(t, err)
		require.Len(t, result.Cafes, 1)
		require.Equal(t, "recommended", result.Cafes[0].Category, "score above threshold relabels the category")

		doc := getCafeDoc(t, "cafe-star")
		require.Equal(t, "popular", doc["category"], "stored category is untouched")
	})

	t.Run("The caller's own ratings feed the visit history boost", func(t *testing.T) {
		resetDB(t)

		_, token := signupAndLogin(t, "regularvisitor", "regularvisitor@email.com", "testpass123")
		seedCafes(t, []interface{}{
			mongodb.CafeDb{Id: "cafe-visited", Name: "Visited", Stars: 3.0, IsOpen: 1, Category: "popular"},
			mongodb.CafeDb{Id: "cafe-unknown", Name: "Unknown", Stars: 3.0, IsOpen: 1, Category: "popular"},
		})

		reviewResp := doRequest(t, http.MethodPost, "/cafes/cafe-visited/reviews", token,
			reviews.AddReviewRequest{Rating: 5, Text: "my usual spot"})
		reviewResp.Body.Close()
		require.Equal(t, http.StatusCreated, reviewResp.StatusCode)

		resp := doRequest(t, http.MethodPost, "/recommendations", token, recommendations.RecommendRequest{})
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result recommendations.RecommendationsResponse
		err := json.NewDecoder(resp.Body).Decode(&result)
		require.NoError(t, err)
		require.Len(t, result.Cafes, 2)

		// Reviewing at 5 stars updates the stored rating to 5.0 and adds the
		// capped visit boost (+5): 5.0 + 5 = 10 versus the untouched 3.0.
		require.Equal(t, "cafe-visited", result.Cafes[0].Id)
		require.InDelta(t, 10.0, result.Cafes[0].Score, 1e-9)
		require.InDelta(t, 3.0, result.Cafes[1].Score, 1e-9)
	})

	t.Run("Category filter keeps rank order", func(t *testing.T) {
		resetDB(t)

		_, token := signupAndLogin(t, "filterer", "filterer@email.com", "testpass123")
		seedCafes(t, []interface{}{
			mongodb.CafeDb{Id: "cafe-n1", Name: "Near One", Stars: 2.0, IsOpen: 1, Category: "nearby"},
			mongodb.CafeDb{Id: "cafe-n2", Name: "Near Two", Stars: 4.0, IsOpen: 1, Category: "nearby"},
			mongodb.CafeDb{Id: "cafe-p1", Name: "Pop One", Stars: 5.0, IsOpen: 1, Category: "popular"},
		})

		resp := doRequest(t, http.MethodPost, "/recommendations?category=nearby", token,
			recommendations.RecommendRequest{})
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result recommendations.RecommendationsResponse
		err := json.NewDecoder(resp.Body).Decode(&result)
		require.NoError(t, err)
		require.Len(t, result.Cafes, 2)
		require.Equal(t, "cafe-n2", result.Cafes[0].Id)
		require.Equal(t, "cafe-n1", result.Cafes[1].Id)
	})
}
