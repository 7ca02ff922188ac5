package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/cors"

	"github.com/parkeasy/parking-reservation-client/internal/backend"
	"github.com/parkeasy/parking-reservation-client/internal/config"
	"github.com/parkeasy/parking-reservation-client/internal/handler"
	"github.com/parkeasy/parking-reservation-client/internal/middleware"
	"github.com/parkeasy/parking-reservation-client/internal/queue"
	"github.com/parkeasy/parking-reservation-client/internal/router"
	"github.com/parkeasy/parking-reservation-client/internal/session"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	// Redis backs sessions and rate limiting. A nil client is fine:
	// sessions degrade to process memory and the limiter passes through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; sessions held in memory, rate limiting disabled")
	}

	sessions := session.NewStore(rdb)
	client := backend.New(cfg.BackendBaseURL, cfg.BackendTimeout)

	// Background consumer writing the booking audit log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	// Browser SPA origin; echo.WrapMiddleware adapts the net/http
	// CORS handler.
	e.Use(echo.WrapMiddleware(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}).Handler))
	e.Use(middleware.Identity(cfg.SessionSecret, sessions))
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	auth := handler.NewAuthHandler(cfg, client, sessions)
	dashboard := handler.NewDashboardHandler(client)
	admin := handler.NewAdminHandler()
	home := handler.NewHomeHandler()

	router.RegisterRoutes(e, home)
	router.RegisterAuth(e, auth)
	router.RegisterPages(e, dashboard, admin)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, backend=%s)", addr, cfg.Env, cfg.BackendBaseURL)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
