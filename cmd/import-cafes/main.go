package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lealre/cafes-backend/internal/mongodb"
	"github.com/lealre/cafes-backend/internal/recommend"
	"go.mongodb.org/mongo-driver/mongo"
)

// yelpBusiness mirrors one line of the Yelp business dataset. Attributes keep
// their raw string encodings ("True", "u'quiet'"); the scorer normalizes them
// at read time.
type yelpBusiness struct {
	BusinessId  string            `json:"business_id"`
	Name        string            `json:"name"`
	Address     string            `json:"address"`
	City        string            `json:"city"`
	State       string            `json:"state"`
	PostalCode  string            `json:"postal_code"`
	Latitude    float64           `json:"latitude"`
	Longitude   float64           `json:"longitude"`
	Stars       float64           `json:"stars"`
	ReviewCount int               `json:"review_count"`
	IsOpen      int               `json:"is_open"`
	Attributes  map[string]any    `json:"attributes"`
	Categories  string            `json:"categories"`
	Hours       map[string]string `json:"hours"`
}

func main() {
	filePath := flag.String("file", "", "path to newline-delimited Yelp business JSON")
	refLat := flag.Float64("lat", 0, "reference latitude for the nearby category")
	refLng := flag.Float64("lng", 0, "reference longitude for the nearby category")
	radiusKm := flag.Float64("radius", 5, "nearby radius in kilometers")
	flag.Parse()

	if *filePath == "" {
		log.Fatal("-file is required")
	}

	_ = godotenv.Load()

	ctx := context.Background()
	dbClient, err := mongodb.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer dbClient.Disconnect(ctx)

	db := mongodb.NewDB(dbClient)

	imported, skipped, err := importCafes(ctx, db, *filePath, *refLat, *refLng, *radiusKm)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("✅ Imported %d cafes (%d lines skipped)\n", imported, skipped)
}

func importCafes(ctx context.Context, db *mongodb.DB, filePath string, refLat, refLng, radiusKm float64) (int, int, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	imported, skipped := 0, 0
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var business yelpBusiness
		if err := json.Unmarshal(line, &business); err != nil {
			skipped++
			continue
		}

		if !isCafe(business) || business.IsOpen != 1 {
			skipped++
			continue
		}

		cafeDb := mapBusinessToCafe(business, refLat, refLng, radiusKm)
		if _, err := db.AddCafe(ctx, cafeDb); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				skipped++
				continue
			}
			return imported, skipped, fmt.Errorf("failed to insert cafe %s: %w", business.BusinessId, err)
		}
		imported++
	}

	if err := scanner.Err(); err != nil {
		return imported, skipped, fmt.Errorf("scanner error: %w", err)
	}

	return imported, skipped, nil
}

func isCafe(business yelpBusiness) bool {
	categories := strings.ToLower(business.Categories)
	return strings.Contains(categories, "cafes") || strings.Contains(categories, "coffee")
}

func mapBusinessToCafe(business yelpBusiness, refLat, refLng, radiusKm float64) mongodb.CafeDb {
	category := recommend.CategoryPopular
	if refLat != 0 || refLng != 0 {
		scoringCafe := recommend.Cafe{Latitude: business.Latitude, Longitude: business.Longitude}
		if recommend.WithinRadius(scoringCafe, refLat, refLng, radiusKm) {
			category = recommend.CategoryNearby
		}
	}

	return mongodb.CafeDb{
		Id:          business.BusinessId,
		Name:        business.Name,
		Address:     business.Address,
		City:        business.City,
		State:       business.State,
		PostalCode:  business.PostalCode,
		Latitude:    business.Latitude,
		Longitude:   business.Longitude,
		Stars:       business.Stars,
		ReviewCount: business.ReviewCount,
		IsOpen:      business.IsOpen,
		Attributes:  business.Attributes,
		Categories:  business.Categories,
		Hours:       business.Hours,
		Category:    category,
	}
}
