package mongodb

import (
	"context"
	"fmt"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	CafesCollection         = "cafes"
	ReviewsCollection       = "reviews"
	UsersCollection         = "users"
	FavoritesCollection     = "favorites"
	ReportsCollection       = "reported"
	NotificationsCollection = "notifications"
)

// DB wraps the mongo client so every storage method hangs off one value and
// the database name is resolved in a single place.
type DB struct {
	client *mongo.Client
}

// Connect connects to MongoDB using MONGODB_URI and verifies the connection
// with a ping.
func Connect(ctx context.Context) (*mongo.Client, error) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		return nil, fmt.Errorf("MONGODB_URI is required (e.g. mongodb://localhost:27017)")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect error: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping error: %w", err)
	}

	return client, nil
}

func NewDB(client *mongo.Client) *DB {
	return &DB{client: client}
}

func (db *DB) GetDatabaseName() string {
	name := os.Getenv("MONGODB_DB")
	if name == "" {
		name = "cafinity"
	}
	return name
}

func (db *DB) Collection(name string) *mongo.Collection {
	return db.client.Database(db.GetDatabaseName()).Collection(name)
}
