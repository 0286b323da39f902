package cafes

import (
	"github.com/lealre/cafes-backend/internal/mongodb"
	"github.com/lealre/cafes-backend/internal/recommend"
)

func MapDbCafeToApiCafe(cafeDb mongodb.CafeDb) Cafe {
	return Cafe{
		Id:          cafeDb.Id,
		Name:        cafeDb.Name,
		Address:     cafeDb.Address,
		City:        cafeDb.City,
		State:       cafeDb.State,
		PostalCode:  cafeDb.PostalCode,
		Latitude:    cafeDb.Latitude,
		Longitude:   cafeDb.Longitude,
		Stars:       cafeDb.Stars,
		ReviewCount: cafeDb.ReviewCount,
		IsOpen:      cafeDb.IsOpen,
		Attributes:  cafeDb.Attributes,
		Categories:  cafeDb.Categories,
		Hours:       cafeDb.Hours,
		Images:      cafeDb.Images,
		Category:    cafeDb.Category,
		OwnerId:     cafeDb.OwnerId,
		AddedAt:     cafeDb.AddedAt,
		UpdatedAt:   cafeDb.UpdatedAt,
	}
}

// MapDbCafeToScoringCafe projects a stored cafe into the scorer's input
// type. The raw attribute values pass through untouched; normalization
// happens inside the scorer.
func MapDbCafeToScoringCafe(cafeDb mongodb.CafeDb) recommend.Cafe {
	return recommend.Cafe{
		Id:          cafeDb.Id,
		Name:        cafeDb.Name,
		Stars:       cafeDb.Stars,
		ReviewCount: cafeDb.ReviewCount,
		Category:    cafeDb.Category,
		Amenities:   cafeDb.Attributes,
		Hours:       cafeDb.Hours,
		Latitude:    cafeDb.Latitude,
		Longitude:   cafeDb.Longitude,
	}
}
