package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/lealre/cafes-backend/internal/mongodb"
	"github.com/lealre/cafes-backend/internal/services/reviews"
	"go.mongodb.org/mongo-driver/bson"
)

// Recomputes stars and review_count for every cafe from its stored reviews.
// Run after bulk imports or hand edits to restore the derived fields.
func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	dbClient, err := mongodb.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer dbClient.Disconnect(ctx)

	db := mongodb.NewDB(dbClient)

	if err := recomputeAllCafeStats(ctx, db); err != nil {
		log.Fatal(err)
	}
}

func recomputeAllCafeStats(ctx context.Context, db *mongodb.DB) error {
	allCafes, err := db.GetCafes(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list cafes: %w", err)
	}

	updated := 0
	for _, cafeDb := range allCafes {
		if err := reviews.RecomputeCafeRatingStats(db, ctx, cafeDb.Id); err != nil {
			return fmt.Errorf("failed to recompute stats for cafe %s: %w", cafeDb.Id, err)
		}
		updated++
	}

	fmt.Printf("✅ Recomputed rating stats for %d cafes\n", updated)
	return nil
}
