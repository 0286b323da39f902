package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lealre/cafes-backend/internal/auth"
	"github.com/lealre/cafes-backend/internal/logx"
	"github.com/lealre/cafes-backend/internal/services/cafes"
	"github.com/lealre/cafes-backend/internal/services/reviews"
)

func (api *API) GetCafeReviews(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	cafeId := r.PathValue("id")
	if cafeId == "" {
		respondWithError(w, http.StatusBadRequest, "Cafe id is required")
		return
	}

	cafeReviews, err := reviews.GetReviewsByCafeId(api.Db, r.Context(), cafeId)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "database error while getting reviews")
		return
	}

	respondWithJSON(w, http.StatusOK, reviews.AllReviewsResponse{Reviews: cafeReviews})
}

func (api *API) AddReview(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentuser := auth.GetUserFromContext(r.Context())

	cafeId := r.PathValue("id")
	if cafeId == "" {
		respondWithError(w, http.StatusBadRequest, "Cafe id is required")
		return
	}

	var req reviews.AddReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	displayName := currentuser.Name
	if displayName == "" {
		displayName = currentuser.Username
	}

	newReview, err := reviews.AddReview(api.Db, r.Context(), cafeId, req, currentuser.Id, displayName)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(reviews.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		if statusCode, ok := getErrorStatusCode(cafes.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while adding review")
		return
	}

	respondWithJSON(w, http.StatusCreated, newReview)
}

func (api *API) UpdateReview(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentuser := auth.GetUserFromContext(r.Context())

	reviewId := r.PathValue("id")
	if reviewId == "" {
		respondWithError(w, http.StatusBadRequest, "Review id is required")
		return
	}

	var req reviews.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	updatedReview, err := reviews.UpdateReview(api.Db, r.Context(), reviewId, req, currentuser.Id)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(reviews.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to update review")
		return
	}

	respondWithJSON(w, http.StatusOK, updatedReview)
}

func (api *API) DeleteReview(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentuser := auth.GetUserFromContext(r.Context())

	reviewId := r.PathValue("id")
	if reviewId == "" {
		respondWithError(w, http.StatusBadRequest, "Review id is required")
		return
	}

	err := reviews.DeleteReview(api.Db, r.Context(), reviewId, currentuser.Id, isAdmin(currentuser))
	if err != nil {
		if statusCode, ok := getErrorStatusCode(reviews.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while deleting review")
		return
	}

	respondWithJSON(w, http.StatusOK, DefaultResponse{Message: fmt.Sprintf("Review with id %s deleted successfully", reviewId)})
}
