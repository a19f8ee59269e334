// @title CraftConnect API
// @version 1.0
// @description Backend for the CraftConnect artisan marketplace.

// @contact.name Team CraftConnect
// @contact.email teamcraftconnect@gmail.com

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"log"
	"path/filepath"

	"craftconnect_backend/internal/app"
	"craftconnect_backend/internal/config"
	"craftconnect_backend/pkg/configwatcher"
	"craftconnect_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// Rotating the AI key or model only needs a config file edit.
	go configwatcher.WatchConfig(filepath.Join("configs", "config.yaml"), application.ReloadConfig)

	application.Run()
}
