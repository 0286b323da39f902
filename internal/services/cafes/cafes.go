package cafes

import (
	"context"
	"regexp"

	"github.com/lealre/cafes-backend/internal/generics"
	"github.com/lealre/cafes-backend/internal/mongodb"
	"github.com/lealre/cafes-backend/internal/recommend"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
GetPageOfCafes returns the paginated cafe listing.

Filters are combined with AND: city and category are exact matches, search
is a case-insensitive substring match on the cafe name.

Example on how to set limits, offsets, orderBy, ...
opts := options.Find().SetSort(bson.D{{"stars", -1}}).SetLimit(20)
*/
func GetPageOfCafes(
	db *mongodb.DB,
	ctx context.Context,
	size, page int,
	orderByField string,
	ascending *bool,
	city, category, search string,
) (generics.Page[Cafe], error) {
	if size <= 0 {
		size = 20
	}
	if size > 100 {
		size = 100
	}
	if page == 0 {
		page = 1
	}

	switch orderByField {
	case "stars", "review_count", "name", "city":
	default:
		orderByField = "name"
	}
	orderByValue := 1
	if ascending != nil && !*ascending {
		orderByValue = -1
	}

	skip := (int64(page) - 1) * int64(size)
	opts := options.Find().
		SetLimit(int64(size)).
		SetSkip(skip).
		SetSort(bson.D{{Key: orderByField, Value: orderByValue}})

	filter := bson.M{}
	if city != "" {
		filter["city"] = city
	}
	if category != "" {
		filter["category"] = category
	}
	if search != "" {
		filter["name"] = bson.M{
			"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"},
		}
	}

	totalCafesInDB, err := db.CountTotalCafes(ctx, filter)
	if err != nil {
		return generics.Page[Cafe]{}, err
	}

	allCafesDb, err := db.GetCafes(ctx, filter, opts)
	if err != nil {
		return generics.Page[Cafe]{}, err
	}

	allCafes := make([]Cafe, 0, len(allCafesDb))
	for _, cafeDb := range allCafesDb {
		allCafes = append(allCafes, MapDbCafeToApiCafe(cafeDb))
	}

	totalPages := (totalCafesInDB + size - 1) / size
	if totalCafesInDB == 0 {
		totalPages = 1
	}

	return generics.Page[Cafe]{
		TotalResults: totalCafesInDB,
		Size:         size,
		Page:         page,
		TotalPages:   totalPages,
		Content:      allCafes,
	}, nil
}

func GetCafeById(db *mongodb.DB, ctx context.Context, cafeId string) (Cafe, error) {
	cafeDb, err := db.GetCafeById(ctx, cafeId)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return Cafe{}, ErrCafeNotFound
		}
		return Cafe{}, err
	}

	return MapDbCafeToApiCafe(cafeDb), nil
}

// AddNewCafe creates a listing owned by ownerId. New listings start with no
// reviews, so the derived rating fields are zero.
func AddNewCafe(db *mongodb.DB, ctx context.Context, req AddCafeRequest, ownerId string) (Cafe, error) {
	if req.Id == "" || req.Name == "" {
		return Cafe{}, ErrMissingCafeInfo
	}

	category := req.Category
	if category == "" {
		category = recommend.CategoryPopular
	}
	if !isValidCategory(category) {
		return Cafe{}, ErrInvalidCategory
	}

	cafeDb, err := db.AddCafe(ctx, mongodb.CafeDb{
		Id:         req.Id,
		Name:       req.Name,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		IsOpen:     1,
		Attributes: req.Attributes,
		Categories: req.Categories,
		Hours:      req.Hours,
		Images:     req.Images,
		Category:   category,
		OwnerId:    ownerId,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return Cafe{}, ErrCafeAlreadyExists
		}
		return Cafe{}, err
	}

	return MapDbCafeToApiCafe(cafeDb), nil
}

// UpdateCafeListing applies the non-nil fields of the request. The derived
// stars/review_count pair is deliberately not updatable here; only the
// review flow recomputes it.
func UpdateCafeListing(db *mongodb.DB, ctx context.Context, cafeId string, req UpdateCafeRequest) (Cafe, error) {
	fields := bson.M{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.City != nil {
		fields["city"] = *req.City
	}
	if req.State != nil {
		fields["state"] = *req.State
	}
	if req.PostalCode != nil {
		fields["postal_code"] = *req.PostalCode
	}
	if req.IsOpen != nil {
		fields["is_open"] = *req.IsOpen
	}
	if req.Attributes != nil {
		fields["attributes"] = *req.Attributes
	}
	if req.Hours != nil {
		fields["hours"] = *req.Hours
	}
	if req.Images != nil {
		fields["images"] = *req.Images
	}
	if req.Category != nil {
		if !isValidCategory(*req.Category) {
			return Cafe{}, ErrInvalidCategory
		}
		fields["category"] = *req.Category
	}

	updatedCafeDb, err := db.UpdateCafe(ctx, cafeId, fields)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return Cafe{}, ErrCafeNotFound
		}
		return Cafe{}, err
	}

	return MapDbCafeToApiCafe(updatedCafeDb), nil
}

// ClaimCafe assigns the cafe to the user when it has no owner yet.
func ClaimCafe(db *mongodb.DB, ctx context.Context, cafeId, userId string) error {
	err := db.ClaimCafe(ctx, cafeId, userId)
	if err == nil {
		return nil
	}
	if err != mongodb.ErrRecordNotFound {
		return err
	}

	// Not matched: either missing or already claimed.
	exists, existsErr := db.CafeExists(ctx, cafeId)
	if existsErr != nil {
		return existsErr
	}
	if !exists {
		return ErrCafeNotFound
	}
	return ErrCafeAlreadyClaimed
}

// CascadeDeleteCafe deletes the cafe and all its related data (reviews,
// favorites and open reports).
func CascadeDeleteCafe(db *mongodb.DB, ctx context.Context, cafeId string) (int64, error) {
	deletedReviewsCount, err := db.DeleteReviewsByCafeId(ctx, cafeId)
	if err != nil {
		return 0, err
	}

	deletedFavoritesCount, err := db.DeleteFavoritesByCafeId(ctx, cafeId)
	if err != nil {
		return 0, err
	}

	deletedReportsCount, err := db.DeleteReportsByCafeId(ctx, cafeId)
	if err != nil {
		return 0, err
	}

	if _, err := db.DeleteCafe(ctx, cafeId); err != nil {
		return 0, err
	}

	return deletedReviewsCount + deletedFavoritesCount + deletedReportsCount, nil
}

func isValidCategory(category string) bool {
	switch category {
	case recommend.CategoryPopular, recommend.CategoryRecommended, recommend.CategoryNearby:
		return true
	}
	return false
}
