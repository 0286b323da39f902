package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lealre/cafes-backend/internal/auth"
	"github.com/lealre/cafes-backend/internal/generics"
	"github.com/lealre/cafes-backend/internal/logx"
	"github.com/lealre/cafes-backend/internal/services/cafes"
	"github.com/lealre/cafes-backend/internal/services/users"
)

func (api *API) GetCafes(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	size := generics.StringToInt(r.URL.Query().Get("size"))
	page := generics.StringToInt(r.URL.Query().Get("page"))
	orderBy := r.URL.Query().Get("orderBy")
	ascending := parseUrlQueryToBool(r.URL.Query().Get("ascending"))
	city := r.URL.Query().Get("city")
	category := r.URL.Query().Get("category")
	search := r.URL.Query().Get("q")

	cafesPage, err := cafes.GetPageOfCafes(api.Db, r.Context(), size, page, orderBy, ascending, city, category, search)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "database error while listing cafes")
		return
	}

	respondWithJSON(w, http.StatusOK, cafesPage)
}

func (api *API) GetCafeById(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	cafeId := r.PathValue("id")
	if cafeId == "" {
		respondWithError(w, http.StatusBadRequest, "Cafe id is required")
		return
	}

	cafe, err := cafes.GetCafeById(api.Db, r.Context(), cafeId)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(cafes.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "database error while getting cafe")
		return
	}

	respondWithJSON(w, http.StatusOK, cafe)
}

func (api *API) AddCafe(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentuser := auth.GetUserFromContext(r.Context())

	if !canManageListings(currentuser) {
		respondWithForbidden(w)
		return
	}

	var req cafes.AddCafeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	newCafe, err := cafes.AddNewCafe(api.Db, r.Context(), req, currentuser.Id)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(cafes.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while adding cafe")
		return
	}

	respondWithJSON(w, http.StatusCreated, newCafe)
}

func (api *API) UpdateCafe(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentuser := auth.GetUserFromContext(r.Context())

	cafeId := r.PathValue("id")
	if cafeId == "" {
		respondWithError(w, http.StatusBadRequest, "Cafe id is required")
		return
	}

	cafe, err := cafes.GetCafeById(api.Db, r.Context(), cafeId)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(cafes.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "database error while getting cafe")
		return
	}

	if cafe.OwnerId != currentuser.Id && !isAdmin(currentuser) {
		respondWithForbidden(w)
		return
	}

	var updateReq cafes.UpdateCafeRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	updatedCafe, err := cafes.UpdateCafeListing(api.Db, r.Context(), cafeId, updateReq)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(cafes.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to update cafe")
		return
	}

	respondWithJSON(w, http.StatusOK, updatedCafe)
}

func (api *API) DeleteCafe(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentuser := auth.GetUserFromContext(r.Context())

	cafeId := r.PathValue("id")
	if cafeId == "" {
		respondWithError(w, http.StatusBadRequest, "Cafe id is required")
		return
	}

	cafe, err := cafes.GetCafeById(api.Db, r.Context(), cafeId)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(cafes.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "database error while getting cafe")
		return
	}

	if cafe.OwnerId != currentuser.Id && !isAdmin(currentuser) {
		respondWithForbidden(w)
		return
	}

	if _, err := cafes.CascadeDeleteCafe(api.Db, r.Context(), cafeId); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while deleting cafe")
		return
	}

	respondWithJSON(w, http.StatusOK, DefaultResponse{Message: fmt.Sprintf("Cafe with id %s deleted successfully", cafeId)})
}

// ClaimCafe assigns an unclaimed listing to the caller and upgrades their
// role to owner when they are still a regular user.
func (api *API) ClaimCafe(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentuser := auth.GetUserFromContext(r.Context())

	cafeId := r.PathValue("id")
	if cafeId == "" {
		respondWithError(w, http.StatusBadRequest, "Cafe id is required")
		return
	}

	if err := cafes.ClaimCafe(api.Db, r.Context(), cafeId, currentuser.Id); err != nil {
		if statusCode, ok := getErrorStatusCode(cafes.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while claiming cafe")
		return
	}

	if currentuser.Role == users.RoleUser {
		if err := users.ChangeRole(api.Db, r.Context(), currentuser.Id, users.RoleOwner); err != nil {
			logger.Printf("ERROR: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Cafe claimed but role upgrade failed")
			return
		}
	}

	respondWithJSON(w, http.StatusOK, DefaultResponse{Message: fmt.Sprintf("Cafe with id %s claimed successfully", cafeId)})
}
