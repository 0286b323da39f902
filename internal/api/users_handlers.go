package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lealre/cafes-backend/internal/auth"
	"github.com/lealre/cafes-backend/internal/logx"
	"github.com/lealre/cafes-backend/internal/services/users"
)

func (api *API) CreateUser(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	var req users.NewUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	newUser, err := users.CreateUser(api.Db, r.Context(), req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(users.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while creating user")
		return
	}

	respondWithJSON(w, http.StatusCreated, newUser)
}

func (api *API) GetUsers(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentuser := auth.GetUserFromContext(r.Context())

	if !isAdmin(currentuser) {
		respondWithForbidden(w)
		return
	}

	allUsers, err := users.GetAllUsers(api.Db, r.Context())
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "database lookup failed")
		return
	}

	respondWithJSON(w, http.StatusOK, users.AllUsersResponse{Users: allUsers})
}

func (api *API) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	currentuser := auth.GetUserFromContext(r.Context())

	respondWithJSON(w, http.StatusOK, users.MapDbUserToApiUserResponse(*currentuser))
}

func (api *API) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentuser := auth.GetUserFromContext(r.Context())

	if !isAdmin(currentuser) {
		respondWithForbidden(w)
		return
	}

	userId := r.PathValue("id")
	if userId == "" {
		respondWithError(w, http.StatusBadRequest, "User id is required")
		return
	}

	var req users.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if err := users.ChangeRole(api.Db, r.Context(), userId, req.Role); err != nil {
		if statusCode, ok := getErrorStatusCode(users.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to update user role")
		return
	}

	respondWithJSON(w, http.StatusOK, DefaultResponse{Message: fmt.Sprintf("User %s role updated to %s", userId, req.Role)})
}

func (api *API) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentuser := auth.GetUserFromContext(r.Context())

	if !isAdmin(currentuser) {
		respondWithForbidden(w)
		return
	}

	userId := r.PathValue("id")
	if userId == "" {
		respondWithError(w, http.StatusBadRequest, "User id is required")
		return
	}

	if err := users.Deactivate(api.Db, r.Context(), userId); err != nil {
		if statusCode, ok := getErrorStatusCode(users.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to deactivate user")
		return
	}

	respondWithJSON(w, http.StatusOK, DefaultResponse{Message: fmt.Sprintf("User %s deactivated", userId)})
}
