package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/Irfansyah001/223-APIKeyGenerator/internal/app"
	"github.com/Irfansyah001/223-APIKeyGenerator/internal/config"
)

func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
