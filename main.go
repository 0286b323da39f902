package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/lealre/cafes-backend/internal/mongodb"
	"github.com/lealre/cafes-backend/internal/server"
)

func main() {
	godotenv.Load()

	ctx := context.Background()

	client, err := mongodb.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	if err := server.ListenAndServe(client); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
