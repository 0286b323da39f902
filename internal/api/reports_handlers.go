package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lealre/cafes-backend/internal/auth"
	"github.com/lealre/cafes-backend/internal/logx"
	"github.com/lealre/cafes-backend/internal/services/reports"
	"github.com/lealre/cafes-backend/internal/services/reviews"
)

type flagReviewRequest struct {
	ReviewId string `json:"reviewId"`
	Reason   string `json:"reason"`
}

func (api *API) FlagReview(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentuser := auth.GetUserFromContext(r.Context())

	var req flagReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if req.ReviewId == "" {
		respondWithError(w, http.StatusBadRequest, "Review id is required")
		return
	}

	report, err := reports.FlagReview(api.Db, r.Context(), req.ReviewId, req.Reason, currentuser.Id)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(reports.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		if statusCode, ok := getErrorStatusCode(reviews.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while reporting review")
		return
	}

	respondWithJSON(w, http.StatusCreated, report)
}

func (api *API) GetReports(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentuser := auth.GetUserFromContext(r.Context())

	if !isAdmin(currentuser) {
		respondWithForbidden(w)
		return
	}

	allReports, err := reports.GetAllReports(api.Db, r.Context())
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "database error while getting reports")
		return
	}

	respondWithJSON(w, http.StatusOK, reports.AllReportsResponse{Reports: allReports})
}

// DismissReport drops the report without touching the review.
func (api *API) DismissReport(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentuser := auth.GetUserFromContext(r.Context())

	if !isAdmin(currentuser) {
		respondWithForbidden(w)
		return
	}

	reportId := r.PathValue("id")
	if reportId == "" {
		respondWithError(w, http.StatusBadRequest, "Report id is required")
		return
	}

	if err := reports.DismissReport(api.Db, r.Context(), reportId); err != nil {
		if statusCode, ok := getErrorStatusCode(reports.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while dismissing report")
		return
	}

	respondWithJSON(w, http.StatusOK, DefaultResponse{Message: fmt.Sprintf("Report with id %s dismissed", reportId)})
}

// ResolveReport deletes the reported review and the report itself.
func (api *API) ResolveReport(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentuser := auth.GetUserFromContext(r.Context())

	if !isAdmin(currentuser) {
		respondWithForbidden(w)
		return
	}

	reportId := r.PathValue("id")
	if reportId == "" {
		respondWithError(w, http.StatusBadRequest, "Report id is required")
		return
	}

	if err := reports.ResolveReport(api.Db, r.Context(), reportId, currentuser.Id); err != nil {
		if statusCode, ok := getErrorStatusCode(reports.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while resolving report")
		return
	}

	respondWithJSON(w, http.StatusOK, DefaultResponse{Message: fmt.Sprintf("Report with id %s resolved", reportId)})
}
