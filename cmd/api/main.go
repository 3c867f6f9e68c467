package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"rentify/internal/backend"
	"rentify/internal/config"
	"rentify/internal/middleware"
	"rentify/internal/modules/composer"
	"rentify/internal/modules/events"
	"rentify/internal/modules/uploads"
	jwtsvc "rentify/internal/pkg/jwt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(cfg.JWTSecret, 24*time.Hour)
	client := backend.NewClient(cfg.BackendBaseURL, cfg.RequestTimeout)

	store := composer.NewStore(cfg.SessionTTL)
	store.StartSweeper(context.Background(), cfg.SweepInterval)

	hub := events.NewHub()
	defer hub.Close()

	pipeline := uploads.NewPipeline(client)

	composerService := composer.NewService(store, client, pipeline, hub)
	composerHandler := composer.NewHandler(composerService)
	wsHandler := events.NewWSHandler(hub, j, store)

	r := gin.Default()
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// event stream authenticates via query token, not the header
		v1.GET("/composer/:id/events", wsHandler.HandleWebSocket)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			composerHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
