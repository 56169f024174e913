package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/Synchroneyes/keskonmange/docs"
	"github.com/Synchroneyes/keskonmange/internal/config"
	"github.com/Synchroneyes/keskonmange/internal/live"
	"github.com/Synchroneyes/keskonmange/internal/proposal"
	"github.com/Synchroneyes/keskonmange/internal/room"
	"github.com/Synchroneyes/keskonmange/internal/storage"
	"github.com/Synchroneyes/keskonmange/internal/vote"
	"github.com/Synchroneyes/keskonmange/pkg/response"
)

// @title        KESKONMANGE API
// @version      1.0
// @description  Shared rooms where a small group proposes restaurants for each weekday and votes for or against them.
// @BasePath     /api
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// All state is in memory: one shared guard, three stores.
	store := storage.NewMemory()
	roomRepo := room.NewRepository()
	proposalRepo := proposal.NewRepository()
	voteRepo := vote.NewRepository()

	// Services. The vote repository doubles as the cascade target for
	// proposal deletion.
	roomService := room.NewService(store, roomRepo, logger)
	proposalService := proposal.NewService(store, proposalRepo, roomRepo, voteRepo, logger)
	voteService := vote.NewService(store, voteRepo, proposalRepo, roomRepo, logger)

	// Live room feed
	hub := live.NewHub(logger)
	feedHandler := live.NewHandler(hub, roomService, logger)

	// HTTP handlers
	roomHandler := room.NewHandler(roomService, feedHandler.ServeRoom)
	proposalHandler := proposal.NewHandler(proposalService, hub)
	voteHandler := vote.NewHandler(voteService, hub)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, fmt.Sprintf("Route %s non trouvée", req.URL.Path))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthCheck)

		r.Mount("/salles", roomHandler.Routes())
		r.Mount("/propositions", proposalHandler.Routes())
		r.Mount("/votes", voteHandler.Routes())
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

// healthCheck handles GET /api/health
func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":    "OK",
		"message":   "Backend KESKONMANGE fonctionne correctement",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
