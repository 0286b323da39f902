package api

import (
	"net/http"

	"github.com/lealre/cafes-backend/internal/mongodb"
	"github.com/lealre/cafes-backend/internal/services/users"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Cafinity API",
	})
}

func isAdmin(user *mongodb.UserDb) bool {
	return user != nil && user.Role == users.RoleAdmin
}

func canManageListings(user *mongodb.UserDb) bool {
	return user != nil && (user.Role == users.RoleOwner || user.Role == users.RoleAdmin)
}
