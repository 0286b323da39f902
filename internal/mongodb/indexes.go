package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateAllIndexes creates all indexes for the users, reviews, favorites and
// notifications collections
func CreateAllIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	if err := CreateUserIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	if err := CreateReviewIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create review indexes: %w", err)
	}

	if err := CreateFavoriteIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create favorite indexes: %w", err)
	}

	if err := CreateNotificationIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create notification indexes: %w", err)
	}

	return nil
}

// CreateUserIndexes creates indexes for the users collection
func CreateUserIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	coll := db.Collection(UsersCollection)

	// Create unique index on email (case-insensitive)
	// Exclude empty strings and null values from uniqueness constraint
	usersEmailIndexName := "email_unique"
	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName(usersEmailIndexName).
			SetCollation(&options.Collation{
				Locale:   "en",
				Strength: 2,
			}).
			SetPartialFilterExpression(bson.M{
				"$and": []bson.M{
					{"email": bson.M{"$type": "string"}},
					{"email": bson.M{"$gt": ""}},
				},
			}),
	}
	if err := createIndexIfNotExists(ctx, coll, emailIndex, usersEmailIndexName, reset); err != nil {
		return err
	}

	// Create unique index on username (case-insensitive)
	usersUsernameIndexName := "username_unique"
	usernameIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "username", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName(usersUsernameIndexName).
			SetCollation(&options.Collation{
				Locale:   "en",
				Strength: 2,
			}).
			SetPartialFilterExpression(bson.M{
				"$and": []bson.M{
					{"username": bson.M{"$type": "string"}},
					{"username": bson.M{"$gt": ""}},
				},
			}),
	}
	if err := createIndexIfNotExists(ctx, coll, usernameIndex, usersUsernameIndexName, reset); err != nil {
		return err
	}

	return nil
}

// CreateReviewIndexes creates indexes for the reviews collection
func CreateReviewIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	coll := db.Collection(ReviewsCollection)

	// One review per user per cafe
	reviewsIndexName := "userId_and_cafeId_unique"
	reviewsIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "cafeId", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName(reviewsIndexName),
	}
	if err := createIndexIfNotExists(ctx, coll, reviewsIndex, reviewsIndexName, reset); err != nil {
		return err
	}

	return nil
}

// CreateFavoriteIndexes creates indexes for the favorites collection
func CreateFavoriteIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	coll := db.Collection(FavoritesCollection)

	favoritesIndexName := "userId_and_cafeId_unique"
	favoritesIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "cafeId", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName(favoritesIndexName),
	}
	if err := createIndexIfNotExists(ctx, coll, favoritesIndex, favoritesIndexName, reset); err != nil {
		return err
	}

	return nil
}

// CreateNotificationIndexes creates indexes for the notifications collection
func CreateNotificationIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	coll := db.Collection(NotificationsCollection)

	notificationsIndexName := "userId_and_date"
	notificationsIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}},
		Options: options.Index().SetName(notificationsIndexName),
	}
	if err := createIndexIfNotExists(ctx, coll, notificationsIndex, notificationsIndexName, reset); err != nil {
		return err
	}

	return nil
}

// createIndexIfNotExists checks if an index exists and creates it if it doesn't
// If reset is true, it will delete the existing index and recreate it
func createIndexIfNotExists(ctx context.Context, coll *mongo.Collection, indexModel mongo.IndexModel, indexName string, reset bool) error {
	cursor, err := coll.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list indexes: %w", err)
	}
	defer cursor.Close(ctx)

	indexExists := false
	for cursor.Next(ctx) {
		var index bson.M
		if err := cursor.Decode(&index); err != nil {
			return fmt.Errorf("failed to decode index: %w", err)
		}

		if name, ok := index["name"].(string); ok && name == indexName {
			indexExists = true
			break
		}
	}

	if err := cursor.Err(); err != nil {
		return fmt.Errorf("cursor error: %w", err)
	}

	if indexExists {
		if !reset {
			fmt.Printf("ℹ️  Index '%s' already exists on collection '%s', skipping...\n", indexName, coll.Name())
			return nil
		}
		_, err := coll.Indexes().DropOne(ctx, indexName)
		if err != nil {
			return fmt.Errorf("failed to delete index '%s': %w", indexName, err)
		}
		fmt.Printf("🗑️  Deleted index '%s' on collection '%s'\n", indexName, coll.Name())
	}

	_, err = coll.Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		return fmt.Errorf("failed to create index '%s': %w", indexName, err)
	}

	fmt.Printf("✅ Created index '%s' on collection '%s'\n", indexName, coll.Name())
	return nil
}
