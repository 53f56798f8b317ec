package main

import (
	"multibranch-backend/internal/config"
	"multibranch-backend/internal/database"
	"multibranch-backend/internal/server"
	"multibranch-backend/internal/store"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	cfg := config.Load()
	log.SetLevel(cfg.Level())

	var kv store.KV
	if cfg.StorageDriver == "memory" {
		log.Warn("STORAGE_DRIVER=memory, nothing survives a restart")
		kv = store.NewMemoryKV()
	} else {
		db, err := database.Open(cfg)
		if err != nil {
			log.Fatalf("Database: %v", err)
		}
		kv = store.NewGormKV(db)
	}

	app, err := server.New(cfg, kv)
	if err != nil {
		log.Fatalf("Server setup: %v", err)
	}

	log.Infof("Server listening on port %s", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
