package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env file loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/kipkoech-dev/pitch-hire/internal/config"     // Internal config loader
	"github.com/kipkoech-dev/pitch-hire/internal/database"   // MySQL connection pool
	"github.com/kipkoech-dev/pitch-hire/internal/handler"    // HTTP handlers
	"github.com/kipkoech-dev/pitch-hire/internal/queue"      // booking event consumer
	"github.com/kipkoech-dev/pitch-hire/internal/repository" // data access layer
	"github.com/kipkoech-dev/pitch-hire/internal/router"     // Internal router setup
)

func main() {
	// Load a local .env when present; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis backs the revoked-token deny-list.  A nil client falls back to
	// the in-process store, so the service still starts without Redis.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; using in-process token deny-list")
	}
	deny := repository.NewDenyList(rdb)

	users := repository.NewUserRepo(db)
	pitches := repository.NewPitchRepo(db)
	bookings := repository.NewBookingRepo(db)
	ratings := repository.NewRatingRepo(db)

	h := router.Handlers{
		Auth:     handler.NewAuthHandler(cfg, users, deny),
		Users:    handler.NewUserHandler(cfg, users),
		Pitches:  handler.NewPitchHandler(pitches),
		Bookings: handler.NewBookingHandler(bookings, pitches),
		Ratings:  handler.NewRatingHandler(ratings, pitches),
	}

	e := echo.New() // Create Echo instance
	router.RegisterRoutes(e, h, cfg.JWTSecret, deny)

	// Consume booking.created events in the background; the consumer has
	// its own reconnect loop and never stops the server.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
