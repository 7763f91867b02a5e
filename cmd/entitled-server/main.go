package main

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/mikepea/entitled/pkg/entitled/auth"
	"github.com/mikepea/entitled/pkg/entitled/config"
	"github.com/mikepea/entitled/pkg/entitled/database"
	"github.com/mikepea/entitled/pkg/entitled/groups"
	"github.com/mikepea/entitled/pkg/entitled/logger"
	"github.com/mikepea/entitled/pkg/entitled/models"
	"github.com/mikepea/entitled/pkg/entitled/store"
	"github.com/mikepea/entitled/pkg/entitled/users"
)

func main() {
	cfg, err := config.Load(context.Background())
	if err != nil {
		l := logger.Get()
		l.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := database.Connect(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("Failed to connect to database")
	}

	if err := models.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}
	log.Info().Msg("Database migrations completed")

	// Seed the default groups before accepting traffic
	s := store.New(db)
	if err := s.SeedDefaultGroups(); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed default groups")
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// Every route, health included, sits behind the API key check
	api := r.Group("/api")
	api.Use(auth.APIKeyMiddleware(cfg.APIKeyHeader, cfg.APIKey))
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
			})
		})

		groupsHandler := groups.NewHandler(s)
		groupsHandler.RegisterRoutes(api.Group("/groups"))

		usersHandler := users.NewHandler(s)
		usersHandler.RegisterRoutes(api.Group("/users"))
	}

	log.Info().Str("port", cfg.Port).Msg("Starting entitled server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
