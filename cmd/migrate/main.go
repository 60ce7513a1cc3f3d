// Command migrate prepares the user database: it applies the schema and
// seeds the default admin account. The server does the same on boot, so
// this exists for provisioning a database ahead of the first start.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	identityapp "github.com/bizmaster/backend/internal/application/identity"
	"github.com/bizmaster/backend/internal/infrastructure/config"
	"github.com/bizmaster/backend/internal/infrastructure/logger"
	"github.com/bizmaster/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

func main() {
	var dbPath string
	flag.StringVar(&dbPath, "db", "", "database path override")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
		os.Exit(1)
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}

	log := logger.New(cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	db, err := persistence.NewDatabase(cfg.Database)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	userRepo := persistence.NewGormUserRepository(db.DB)
	userService := identityapp.NewUserService(userRepo, log)
	if err := userService.EnsureAdmin(context.Background(), cfg.Admin); err != nil {
		log.Fatal("Failed to seed admin account", zap.Error(err))
	}

	log.Info("Database ready",
		zap.String("path", cfg.Database.Path),
		zap.String("admin", cfg.Admin.Username),
	)
}
