package server

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/justinas/alice"
	"github.com/lealre/cafes-backend/internal/api"
	"github.com/lealre/cafes-backend/internal/cache"
	"github.com/lealre/cafes-backend/internal/mongodb"
	"github.com/rs/cors"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewServer wires the full handler chain: request-id logging, CORS, auth and
// the route table. The token secret comes from TOKEN_SECRET and must be set.
func NewServer(client *mongo.Client) http.Handler {
	secret := os.Getenv("TOKEN_SECRET")
	if secret == "" {
		log.Fatal("TOKEN_SECRET environment variable is not set")
	}

	db := mongodb.NewDB(client)
	handlers := api.NewAPI(db, &secret, cache.NewFromEnv())

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", api.RootHandler)

	mux.HandleFunc("POST /users", handlers.CreateUser)
	mux.HandleFunc("POST /login", handlers.LoginHandler)
	mux.HandleFunc("GET /users", handlers.GetUsers)
	mux.HandleFunc("GET /users/me", handlers.GetCurrentUser)
	mux.HandleFunc("PATCH /users/{id}/role", handlers.UpdateUserRole)
	mux.HandleFunc("PATCH /users/{id}/deactivate", handlers.DeactivateUser)

	mux.HandleFunc("GET /cafes", handlers.GetCafes)
	mux.HandleFunc("GET /cafes/{id}", handlers.GetCafeById)
	mux.HandleFunc("POST /cafes", handlers.AddCafe)
	mux.HandleFunc("PATCH /cafes/{id}", handlers.UpdateCafe)
	mux.HandleFunc("DELETE /cafes/{id}", handlers.DeleteCafe)
	mux.HandleFunc("POST /cafes/{id}/claim", handlers.ClaimCafe)

	mux.HandleFunc("GET /cafes/{id}/reviews", handlers.GetCafeReviews)
	mux.HandleFunc("POST /cafes/{id}/reviews", handlers.AddReview)
	mux.HandleFunc("PATCH /reviews/{id}", handlers.UpdateReview)
	mux.HandleFunc("DELETE /reviews/{id}", handlers.DeleteReview)

	mux.HandleFunc("POST /recommendations", handlers.GetRecommendations)

	mux.HandleFunc("GET /favorites", handlers.GetFavorites)
	mux.HandleFunc("POST /favorites", handlers.AddFavorite)
	mux.HandleFunc("DELETE /favorites/{cafeId}", handlers.RemoveFavorite)

	mux.HandleFunc("POST /reports", handlers.FlagReview)
	mux.HandleFunc("GET /reports", handlers.GetReports)
	mux.HandleFunc("DELETE /reports/{id}", handlers.DismissReport)
	mux.HandleFunc("DELETE /reports/{id}/review", handlers.ResolveReport)

	mux.HandleFunc("GET /notifications", handlers.GetNotifications)
	mux.HandleFunc("PATCH /notifications/{id}/read", handlers.MarkNotificationRead)
	mux.HandleFunc("DELETE /notifications/{id}", handlers.DeleteNotification)

	chain := alice.New(
		RequestIdMiddleware,
		corsMiddleware().Handler,
		AuthMiddleware(secret, db),
	)

	return chain.Then(mux)
}

func ListenAndServe(client *mongo.Client) error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: NewServer(client),
	}

	log.Println("Server is running on port " + port)
	return server.ListenAndServe()
}

func corsMiddleware() *cors.Cors {
	origins := []string{"*"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
}
