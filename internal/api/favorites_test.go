package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/lealre/cafes-backend/internal/mongodb"
	"github.com/lealre/cafes-backend/internal/services/favorites"
	"github.com/stretchr/testify/require"
)

func TestFavorites(t *testing.T) {
	t.Run("Add, list and remove favorites", func(t *testing.T) {
		resetDB(t)

		_, token := signupAndLogin(t, "collector", "collector@email.com", "testpass123")
		seedCafes(t, []interface{}{
			mongodb.CafeDb{Id: "cafe-fav", Name: "Keeper", IsOpen: 1, Category: "popular"},
		})

		body := map[string]string{"cafeId": "cafe-fav"}
		resp := doRequest(t, http.MethodPost, "/favorites", token, body)
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp = doRequest(t, http.MethodPost, "/favorites", token, body)
		resp.Body.Close()
		require.Equal(t, http.StatusConflict, resp.StatusCode, "favoriting twice is rejected")

		listResp := doRequest(t, http.MethodGet, "/favorites", token, nil)
		defer listResp.Body.Close()
		require.Equal(t, http.StatusOK, listResp.StatusCode)

		var favs favorites.FavoriteCafesResponse
		err := json.NewDecoder(listResp.Body).Decode(&favs)
		require.NoError(t, err)
		require.Len(t, favs.Cafes, 1)
		require.Equal(t, "Keeper", favs.Cafes[0].Name, "favorites resolve to full listings")

		resp = doRequest(t, http.MethodDelete, "/favorites/cafe-fav", token, nil)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = doRequest(t, http.MethodDelete, "/favorites/cafe-fav", token, nil)
		resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Favoriting an unknown cafe fails", func(t *testing.T) {
		resetDB(t)

		_, token := signupAndLogin(t, "hopeful", "hopeful@email.com", "testpass123")

		resp := doRequest(t, http.MethodPost, "/favorites", token, map[string]string{"cafeId": "ghost"})
		resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
