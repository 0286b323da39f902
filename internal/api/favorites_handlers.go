package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lealre/cafes-backend/internal/auth"
	"github.com/lealre/cafes-backend/internal/logx"
	"github.com/lealre/cafes-backend/internal/services/cafes"
	"github.com/lealre/cafes-backend/internal/services/favorites"
)

type addFavoriteRequest struct {
	CafeId string `json:"cafeId"`
}

func (api *API) GetFavorites(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentuser := auth.GetUserFromContext(r.Context())

	favoriteCafes, err := favorites.GetFavoriteCafes(api.Db, r.Context(), currentuser.Id)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "database error while getting favorites")
		return
	}

	respondWithJSON(w, http.StatusOK, favorites.FavoriteCafesResponse{Cafes: favoriteCafes})
}

func (api *API) AddFavorite(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentuser := auth.GetUserFromContext(r.Context())

	var req addFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if req.CafeId == "" {
		respondWithError(w, http.StatusBadRequest, "Cafe id is required")
		return
	}

	if err := favorites.AddFavorite(api.Db, r.Context(), currentuser.Id, req.CafeId); err != nil {
		if statusCode, ok := getErrorStatusCode(favorites.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		if statusCode, ok := getErrorStatusCode(cafes.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while adding favorite")
		return
	}

	respondWithJSON(w, http.StatusCreated, DefaultResponse{Message: fmt.Sprintf("Cafe %s added to favorites", req.CafeId)})
}

func (api *API) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentuser := auth.GetUserFromContext(r.Context())

	cafeId := r.PathValue("cafeId")
	if cafeId == "" {
		respondWithError(w, http.StatusBadRequest, "Cafe id is required")
		return
	}

	if err := favorites.RemoveFavorite(api.Db, r.Context(), currentuser.Id, cafeId); err != nil {
		if statusCode, ok := getErrorStatusCode(favorites.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while removing favorite")
		return
	}

	respondWithJSON(w, http.StatusOK, DefaultResponse{Message: fmt.Sprintf("Cafe %s removed from favorites", cafeId)})
}
