package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"gin-storefront/internal/handler/middleware"
	"gin-storefront/internal/infra/db"
	"gin-storefront/internal/infra/seed"
	sqlc "gin-storefront/internal/infra/sqlc/generated"
	"gin-storefront/internal/pkg/config"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type seedConfig struct {
	AdminPassword    string `envconfig:"SEED_ADMIN_PASSWORD" default:"admin123"`
	CustomerPassword string `envconfig:"SEED_CUSTOMER_PASSWORD" default:"customer123"`
}

func main() {
	timeout := flag.Duration("timeout", time.Minute, "overall timeout")
	flag.Parse()

	_ = godotenv.Load()

	var (
		dbCfg   config.DBConfig
		logCfg  config.LogConfig
		seedCfg seedConfig
	)
	for name, target := range map[string]any{"database": &dbCfg, "log": &logCfg, "seed": &seedCfg} {
		if err := envconfig.Process("", target); err != nil {
			slog.Error("failed to load config", "section", name, "error", err)
			os.Exit(1)
		}
	}
	middleware.NewLogger(logCfg)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, dbCfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	seeder := seed.NewSeeder(sqlc.New(), pool)
	result, err := seeder.Run(ctx, seed.Default(seedCfg.AdminPassword, seedCfg.CustomerPassword))
	if err != nil {
		slog.Error("seed failed", "error", err)
		cleanup()
		os.Exit(1)
	}
	slog.Info("seed completed",
		"users", result.Users,
		"products", result.Products,
		"discount_codes", result.Discounts)
}
