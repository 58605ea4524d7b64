package cmd

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/ms-go-doclocks/app/repository"
	"github.com/vibast-solutions/ms-go-doclocks/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the lock tables",
	Long:  "Apply the embedded MySQL schema. Tables that already exist are left untouched.",
	Run:   runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(_ *cobra.Command, _ []string) {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := openMySQL(ctx, cfg)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open database")
	}
	defer db.Close()

	if err := repository.Migrate(ctx, db); err != nil {
		logger.WithError(err).Fatal("Migration failed")
	}
	logger.Info("Schema is up to date")
}
