// Package favorites manages the per-user list of saved cafes. The list also
// feeds the recommendations flow: favorited cafe ids count as visited when
// building the scoring preferences.
package favorites

import (
	"context"
	"errors"
	"net/http"

	"github.com/lealre/cafes-backend/internal/mongodb"
	"github.com/lealre/cafes-backend/internal/services/cafes"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrAlreadyFavorited = errors.New("cafe already in favorites")
	ErrFavoriteNotFound = errors.New("cafe not in favorites")
)

var ErrorMap = map[error]int{
	ErrAlreadyFavorited: http.StatusConflict,
	ErrFavoriteNotFound: http.StatusNotFound,
}

type FavoriteCafesResponse struct {
	Cafes []cafes.Cafe `json:"cafes"`
}

func AddFavorite(db *mongodb.DB, ctx context.Context, userId, cafeId string) error {
	exists, err := db.CafeExists(ctx, cafeId)
	if err != nil {
		return err
	}
	if !exists {
		return cafes.ErrCafeNotFound
	}

	if _, err := db.AddFavorite(ctx, userId, cafeId); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrAlreadyFavorited
		}
		return err
	}

	return nil
}

// GetFavoriteCafes resolves the user's favorites into full cafe listings.
// Favorites pointing at cafes deleted in the meantime are skipped.
func GetFavoriteCafes(db *mongodb.DB, ctx context.Context, userId string) ([]cafes.Cafe, error) {
	favoritesDb, err := db.GetFavoritesByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	favoriteCafes := make([]cafes.Cafe, 0, len(favoritesDb))
	for _, favoriteDb := range favoritesDb {
		cafeDb, err := db.GetCafeById(ctx, favoriteDb.CafeId)
		if err != nil {
			if err == mongodb.ErrRecordNotFound {
				continue
			}
			return nil, err
		}
		favoriteCafes = append(favoriteCafes, cafes.MapDbCafeToApiCafe(cafeDb))
	}

	return favoriteCafes, nil
}

// GetFavoriteCafeIds returns only the ids, in the stored order.
func GetFavoriteCafeIds(db *mongodb.DB, ctx context.Context, userId string) ([]string, error) {
	favoritesDb, err := db.GetFavoritesByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(favoritesDb))
	for i, favoriteDb := range favoritesDb {
		ids[i] = favoriteDb.CafeId
	}

	return ids, nil
}

func RemoveFavorite(db *mongodb.DB, ctx context.Context, userId, cafeId string) error {
	deletedCount, err := db.DeleteFavorite(ctx, userId, cafeId)
	if err != nil {
		return err
	}
	if deletedCount == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}
