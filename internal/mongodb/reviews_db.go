package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ----- Types for the database -----

type ReviewDb struct {
	Id               string         `json:"id" bson:"_id"`
	CafeId           string         `json:"cafeId" bson:"cafeId"`
	UserId           string         `json:"userId" bson:"userId"`
	User             string         `json:"user" bson:"user"`
	Rating           int            `json:"rating" bson:"rating"`
	Text             string         `json:"text" bson:"text"`
	AttributeRatings map[string]int `json:"attributeRatings,omitempty" bson:"attributeRatings,omitempty"`
	Date             time.Time      `json:"date" bson:"date"`
	CreatedAt        time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// ----- Methods for the database -----

func (db *DB) AddReview(ctx context.Context, review ReviewDb) (ReviewDb, error) {
	coll := db.Collection(ReviewsCollection)

	review.Id = primitive.NewObjectID().Hex()
	now := time.Now()
	review.Date = now
	review.CreatedAt = now
	review.UpdatedAt = now

	if _, err := coll.InsertOne(ctx, review); err != nil {
		return ReviewDb{}, err
	}

	return review, nil
}

func (db *DB) GetReviewById(ctx context.Context, reviewId string) (ReviewDb, error) {
	coll := db.Collection(ReviewsCollection)

	var review ReviewDb
	err := coll.FindOne(ctx, bson.M{"_id": reviewId}).Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return ReviewDb{}, ErrRecordNotFound
		}
		return ReviewDb{}, err
	}

	return review, nil
}

func (db *DB) GetReviewsByCafeId(ctx context.Context, cafeId string) ([]ReviewDb, error) {
	coll := db.Collection(ReviewsCollection)

	filter := bson.M{"cafeId": cafeId}

	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return []ReviewDb{}, err
	}
	defer cursor.Close(ctx)

	var reviews []ReviewDb
	if err = cursor.All(ctx, &reviews); err != nil {
		return []ReviewDb{}, err
	}

	return reviews, nil
}

func (db *DB) GetReviewByUserIdAndCafeId(ctx context.Context, userId, cafeId string) (ReviewDb, error) {
	coll := db.Collection(ReviewsCollection)

	filter := bson.M{"userId": userId, "cafeId": cafeId}

	var review ReviewDb
	err := coll.FindOne(ctx, filter).Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return ReviewDb{}, ErrRecordNotFound
		}
		return ReviewDb{}, err
	}

	return review, nil
}

// UpdateReview updates only the rating, text and attribute ratings of a
// review owned by userId.
func (db *DB) UpdateReview(ctx context.Context, reviewDb ReviewDb, userId string) error {
	coll := db.Collection(ReviewsCollection)

	filter := bson.M{"_id": reviewDb.Id, "userId": userId}

	update := bson.M{
		"$set": bson.M{
			"rating":           reviewDb.Rating,
			"text":             reviewDb.Text,
			"attributeRatings": reviewDb.AttributeRatings,
			"updatedAt":        time.Now(),
		},
	}

	result, err := coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (db *DB) DeleteReview(ctx context.Context, reviewId string) (int64, error) {
	coll := db.Collection(ReviewsCollection)

	result, err := coll.DeleteOne(ctx, bson.M{"_id": reviewId})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}

func (db *DB) DeleteReviewsByCafeId(ctx context.Context, cafeId string) (int64, error) {
	coll := db.Collection(ReviewsCollection)

	result, err := coll.DeleteMany(ctx, bson.M{"cafeId": cafeId})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}

func (db *DB) GetReviews(ctx context.Context, args ...any) ([]ReviewDb, error) {
	coll := db.Collection(ReviewsCollection)

	filter, opts := ResolveFilterAndOptionsSearch(args...)
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return []ReviewDb{}, err
	}
	defer cursor.Close(ctx)

	var reviews []ReviewDb
	if err := cursor.All(ctx, &reviews); err != nil {
		return []ReviewDb{}, err
	}

	return reviews, nil
}
