package main

import (
	"context"
	"database/sql"
	"flag"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/deepaksolulab007/payment-system-stripe/internal/config"
	"github.com/deepaksolulab007/payment-system-stripe/internal/db"
	"github.com/deepaksolulab007/payment-system-stripe/internal/logger"
)

func main() {
	versionOnly := flag.Bool("version", false, "print the current schema version and exit")
	flag.Parse()

	config.LoadDotEnv()
	logger.InitLogger(config.Stage())
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	databaseURL, err := config.DatabaseURL(ctx)
	if err != nil {
		logger.Fatal("Failed to resolve database url", zap.Error(err))
	}

	sqlDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		logger.Fatal("Unable to open database", zap.Error(err))
	}
	defer sqlDB.Close()

	if !*versionOnly {
		if err := db.MigrateDB(ctx, sqlDB); err != nil {
			logger.Error("Migration failed", zap.Error(err))
			os.Exit(1)
		}
	}

	version, err := db.MigrationVersion(ctx, sqlDB)
	if err != nil {
		logger.Fatal("Unable to read schema version", zap.Error(err))
	}
	logger.Info("Database schema is current", zap.Int64("version", version))
}
