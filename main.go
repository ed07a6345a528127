package main

import (
	"flag"
	"log"

	"biocatalog_backend/internal/app"
	"biocatalog_backend/internal/config"
	"biocatalog_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "ejecutar solo la migración de base de datos y salir")
	migrate := flag.Bool("migrate", false, "forzar la migración al arrancar, incluso en modo release")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
