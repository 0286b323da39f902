package api

import (
	"encoding/json"
	"net/http"

	"github.com/lealre/cafes-backend/internal/auth"
	"github.com/lealre/cafes-backend/internal/logx"
	"github.com/lealre/cafes-backend/internal/services/recommendations"
)

// GetRecommendations ranks the whole directory against the caller's
// preference profile. The optional category query param filters the ranked
// list without re-sorting it.
func (api *API) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentuser := auth.GetUserFromContext(r.Context())

	var req recommendations.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	results, err := recommendations.Recommend(api.Db, r.Context(), api.Cache, currentuser.Id, req)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while computing recommendations")
		return
	}

	if category := r.URL.Query().Get("category"); category != "" {
		results = recommendations.FilterByCategory(results, category)
	}

	respondWithJSON(w, http.StatusOK, recommendations.RecommendationsResponse{Cafes: results})
}
