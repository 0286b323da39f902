package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ----- Types for the database -----

// CafeDb mirrors the cafe documents as imported from the Yelp-format data.
// The stars and review_count fields are caches of the aggregate over the
// cafe's reviews; UpdateCafeRatingStats keeps them in sync.
type CafeDb struct {
	Id          string            `json:"id" bson:"_id"`
	Name        string            `json:"name" bson:"name"`
	Address     string            `json:"address" bson:"address"`
	City        string            `json:"city" bson:"city"`
	State       string            `json:"state" bson:"state"`
	PostalCode  string            `json:"postal_code" bson:"postal_code"`
	Latitude    float64           `json:"latitude" bson:"latitude"`
	Longitude   float64           `json:"longitude" bson:"longitude"`
	Stars       float64           `json:"stars" bson:"stars"`
	ReviewCount int               `json:"review_count" bson:"review_count"`
	IsOpen      int               `json:"is_open" bson:"is_open"`
	Attributes  map[string]any    `json:"attributes" bson:"attributes"`
	Categories  string            `json:"categories" bson:"categories"`
	Hours       map[string]string `json:"hours" bson:"hours"`
	Images      []string          `json:"images,omitempty" bson:"images,omitempty"`
	Category    string            `json:"category" bson:"category"`
	OwnerId     string            `json:"ownerId,omitempty" bson:"ownerId,omitempty"`
	AddedAt     *time.Time        `json:"addedAt,omitempty" bson:"addedAt,omitempty"`
	UpdatedAt   *time.Time        `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// ----- Methods for the database -----

func (db *DB) GetCafeById(ctx context.Context, id string) (CafeDb, error) {
	coll := db.Collection(CafesCollection)

	var cafe CafeDb
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&cafe); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return CafeDb{}, ErrRecordNotFound
		}
		return CafeDb{}, err
	}

	return cafe, nil
}

func (db *DB) AddCafe(ctx context.Context, cafe CafeDb) (CafeDb, error) {
	if cafe.Id == "" {
		return CafeDb{}, fmt.Errorf("cafe missing _id")
	}

	coll := db.Collection(CafesCollection)

	now := time.Now()
	cafe.AddedAt = &now
	cafe.UpdatedAt = &now

	if _, err := coll.InsertOne(ctx, cafe); err != nil {
		return CafeDb{}, err
	}

	return cafe, nil
}

func (db *DB) UpdateCafe(ctx context.Context, id string, fields bson.M) (CafeDb, error) {
	coll := db.Collection(CafesCollection)

	if len(fields) == 0 {
		return CafeDb{}, fmt.Errorf("no fields to update")
	}
	fields["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated CafeDb
	err := coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return CafeDb{}, ErrRecordNotFound
		}
		return CafeDb{}, err
	}

	return updated, nil
}

func (db *DB) DeleteCafe(ctx context.Context, id string) (bool, error) {
	coll := db.Collection(CafesCollection)

	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (db *DB) GetCafes(ctx context.Context, args ...any) ([]CafeDb, error) {
	coll := db.Collection(CafesCollection)

	filter, opts := ResolveFilterAndOptionsSearch(args...)
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return []CafeDb{}, err
	}
	defer cursor.Close(ctx)

	var cafes []CafeDb
	if err := cursor.All(ctx, &cafes); err != nil {
		return []CafeDb{}, err
	}

	return cafes, nil
}

func (db *DB) CountTotalCafes(ctx context.Context, args ...any) (int, error) {
	coll := db.Collection(CafesCollection)

	filter, _ := ResolveFilterAndOptionsSearch(args...)
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}

	return int(total), nil
}

func (db *DB) CafeExists(ctx context.Context, id string) (bool, error) {
	coll := db.Collection(CafesCollection)

	// Only ask MongoDB for the _id field
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})

	err := coll.FindOne(ctx, bson.M{"_id": id}, opts).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ClaimCafe sets the owner of a cafe, but only when it has no owner yet.
// Returns ErrRecordNotFound when the cafe does not exist or is already
// claimed; callers distinguish the two with a prior CafeExists check.
func (db *DB) ClaimCafe(ctx context.Context, cafeId, ownerId string) error {
	coll := db.Collection(CafesCollection)

	filter := bson.M{
		"_id": cafeId,
		"$or": []bson.M{
			{"ownerId": bson.M{"$exists": false}},
			{"ownerId": ""},
		},
	}
	update := bson.M{"$set": bson.M{"ownerId": ownerId, "updatedAt": time.Now()}}

	res, err := coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// UpdateCafeRatingStats overwrites the cached stars/review_count pair. The
// caller computes the pair from the cafe's full review set.
func (db *DB) UpdateCafeRatingStats(ctx context.Context, cafeId string, stars float64, reviewCount int) error {
	coll := db.Collection(CafesCollection)

	update := bson.M{
		"$set": bson.M{
			"stars":        stars,
			"review_count": reviewCount,
			"updatedAt":    time.Now(),
		},
	}

	res, err := coll.UpdateOne(ctx, bson.M{"_id": cafeId}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrRecordNotFound
	}

	return nil
}
