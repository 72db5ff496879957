package main

import (
	"log"

	"github.com/redis/go-redis/v9"

	"anoa.com/clanportal/internal/bootstrap"
	"anoa.com/clanportal/internal/config"
	"anoa.com/clanportal/internal/server"
	"anoa.com/clanportal/pkg/database"
	"anoa.com/clanportal/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := bootstrap.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if cfg.AppEnv == "development" {
		if err := bootstrap.SeedAdminUser(db); err != nil {
			log.Fatalf("failed to seed admin user: %v", err)
		}
		if err := bootstrap.SeedDemoClan(db); err != nil {
			log.Fatalf("failed to seed demo clan: %v", err)
		}
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
	} else {
		log.Println("REDIS_URL not set, oauth state falls back to a per-process nonce")
	}

	imageStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		log.Fatalf("failed to initialize cloudinary storage: %v", err)
	}

	srv := server.NewServer(db, redisClient, imageStorage, cfg)

	log.Printf("Server running at http://localhost:%s", cfg.Port)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
