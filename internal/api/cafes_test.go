package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/lealre/cafes-backend/internal/generics"
	"github.com/lealre/cafes-backend/internal/mongodb"
	"github.com/lealre/cafes-backend/internal/services/cafes"
	"github.com/lealre/cafes-backend/internal/services/users"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func seedThreeCafes(t *testing.T) {
	t.Helper()
	seedCafes(t, []interface{}{
		mongodb.CafeDb{Id: "cafe-1", Name: "Alpha Roasters", City: "Long Beach", Stars: 4.5, ReviewCount: 120, IsOpen: 1, Category: "popular"},
		mongodb.CafeDb{Id: "cafe-2", Name: "Beta Beans", City: "Long Beach", Stars: 3.0, ReviewCount: 40, IsOpen: 1, Category: "nearby"},
		mongodb.CafeDb{Id: "cafe-3", Name: "Gamma Grind", City: "Seattle", Stars: 5.0, ReviewCount: 8, IsOpen: 1, Category: "popular"},
	})
}

func TestListCafes(t *testing.T) {
	t.Run("Listing is public and paginated", func(t *testing.T) {
		resetDB(t)
		seedThreeCafes(t)

		resp, err := http.Get(testServer.URL + "/cafes?size=2&page=1&orderBy=stars&ascending=false")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var page generics.Page[cafes.Cafe]
		err = json.NewDecoder(resp.Body).Decode(&page)
		require.NoError(t, err)
		require.Equal(t, 3, page.TotalResults)
		require.Equal(t, 2, page.TotalPages)
		require.Len(t, page.Content, 2)
		require.Equal(t, "Gamma Grind", page.Content[0].Name, "highest stars first")
	})

	t.Run("Filters combine city, category and name search", func(t *testing.T) {
		resetDB(t)
		seedThreeCafes(t)

		resp, err := http.Get(testServer.URL + "/cafes?city=Long+Beach&category=popular")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var page generics.Page[cafes.Cafe]
		err = json.NewDecoder(resp.Body).Decode(&page)
		require.NoError(t, err)
		require.Equal(t, 1, page.TotalResults)
		require.Equal(t, "cafe-1", page.Content[0].Id)

		resp, err = http.Get(testServer.URL + "/cafes?q=beans")
		require.NoError(t, err)
		defer resp.Body.Close()

		err = json.NewDecoder(resp.Body).Decode(&page)
		require.NoError(t, err)
		require.Equal(t, 1, page.TotalResults)
		require.Equal(t, "Beta Beans", page.Content[0].Name, "name search is case-insensitive")
	})
}

func TestCafeManagement(t *testing.T) {
	t.Run("Only owners and admins create listings", func(t *testing.T) {
		resetDB(t)

		_, regularToken := signupAndLogin(t, "walkin", "walkin@email.com", "testpass123")
		ownerId, _ := signupAndLogin(t, "barista", "barista@email.com", "testpass123")
		setRole(t, ownerId, users.RoleOwner)
		_, ownerToken := loginAgain(t, "barista", "testpass123")

		newCafe := cafes.AddCafeRequest{Id: "cafe-new", Name: "New Cafe", City: "Long Beach"}

		resp := doRequest(t, http.MethodPost, "/cafes", regularToken, newCafe)
		resp.Body.Close()
		require.Equal(t, http.StatusForbidden, resp.StatusCode)

		resp = doRequest(t, http.MethodPost, "/cafes", ownerToken, newCafe)
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var created cafes.Cafe
		err := json.NewDecoder(resp.Body).Decode(&created)
		require.NoError(t, err)
		require.Equal(t, ownerId, created.OwnerId)
		require.Zero(t, created.Stars, "new listing starts unrated")
		require.Zero(t, created.ReviewCount)

		resp = doRequest(t, http.MethodPost, "/cafes", ownerToken, newCafe)
		resp.Body.Close()
		require.Equal(t, http.StatusConflict, resp.StatusCode, "duplicate cafe id is rejected")
	})

	t.Run("Updates are restricted to the listing owner or an admin", func(t *testing.T) {
		resetDB(t)

		ownerId, _ := signupAndLogin(t, "owner", "owner@email.com", "testpass123")
		setRole(t, ownerId, users.RoleOwner)
		_, ownerToken := loginAgain(t, "owner", "testpass123")
		_, strangerToken := signupAndLogin(t, "stranger", "stranger@email.com", "testpass123")

		seedCafes(t, []interface{}{
			mongodb.CafeDb{Id: "cafe-upd", Name: "Old Name", IsOpen: 1, Category: "popular", OwnerId: ownerId},
		})

		newName := "Renamed Cafe"
		updateReq := cafes.UpdateCafeRequest{Name: &newName}

		resp := doRequest(t, http.MethodPatch, "/cafes/cafe-upd", strangerToken, updateReq)
		resp.Body.Close()
		require.Equal(t, http.StatusForbidden, resp.StatusCode)

		resp = doRequest(t, http.MethodPatch, "/cafes/cafe-upd", ownerToken, updateReq)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var updated cafes.Cafe
		err := json.NewDecoder(resp.Body).Decode(&updated)
		require.NoError(t, err)
		require.Equal(t, newName, updated.Name)
	})

	t.Run("Claiming an unowned cafe upgrades the caller to owner", func(t *testing.T) {
		resetDB(t)

		userId, token := signupAndLogin(t, "claimer", "claimer@email.com", "testpass123")
		seedCafes(t, []interface{}{
			mongodb.CafeDb{Id: "cafe-claim", Name: "Unclaimed", IsOpen: 1, Category: "popular"},
		})

		resp := doRequest(t, http.MethodPost, "/cafes/cafe-claim/claim", token, nil)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		doc := getCafeDoc(t, "cafe-claim")
		require.Equal(t, userId, doc["ownerId"])

		resp = doRequest(t, http.MethodGet, "/users/me", token, nil)
		defer resp.Body.Close()
		var me users.UserResponse
		err := json.NewDecoder(resp.Body).Decode(&me)
		require.NoError(t, err)
		require.Equal(t, users.RoleOwner, me.Role)

		_, otherToken := signupAndLogin(t, "latecomer", "latecomer@email.com", "testpass123")
		resp = doRequest(t, http.MethodPost, "/cafes/cafe-claim/claim", otherToken, nil)
		resp.Body.Close()
		require.Equal(t, http.StatusConflict, resp.StatusCode, "already claimed cafes cannot be claimed again")
	})

	t.Run("Deleting a cafe cascades to reviews, favorites and reports", func(t *testing.T) {
		resetDB(t)

		adminId, _ := signupAndLogin(t, "boss", "boss@email.com", "testpass123")
		setRole(t, adminId, users.RoleAdmin)
		_, adminToken := loginAgain(t, "boss", "testpass123")

		seedCafes(t, []interface{}{
			mongodb.CafeDb{Id: "cafe-del", Name: "Doomed", IsOpen: 1, Category: "popular"},
		})

		ctx := context.Background()
		db := testClient.Database(TEST_DB_NAME)
		_, err := db.Collection(mongodb.ReviewsCollection).InsertOne(ctx,
			mongodb.ReviewDb{Id: "rev-1", CafeId: "cafe-del", UserId: adminId, Rating: 4, Text: "fine"})
		require.NoError(t, err)
		_, err = db.Collection(mongodb.FavoritesCollection).InsertOne(ctx,
			bson.M{"_id": "fav-1", "userId": adminId, "cafeId": "cafe-del"})
		require.NoError(t, err)

		resp := doRequest(t, http.MethodDelete, "/cafes/cafe-del", adminToken, nil)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		count, err := db.Collection(mongodb.ReviewsCollection).CountDocuments(ctx, bson.M{"cafeId": "cafe-del"})
		require.NoError(t, err)
		require.Zero(t, count)
		count, err = db.Collection(mongodb.FavoritesCollection).CountDocuments(ctx, bson.M{"cafeId": "cafe-del"})
		require.NoError(t, err)
		require.Zero(t, count)
		count, err = db.Collection(mongodb.CafesCollection).CountDocuments(ctx, bson.M{"_id": "cafe-del"})
		require.NoError(t, err)
		require.Zero(t, count)
	})
}
