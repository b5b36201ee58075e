package main

import (
	"context"
	"fmt"
	"os"

	"github.com/2beens/ascend/internal/config"
	"github.com/2beens/ascend/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	envFlag    string
	configFlag string
	userFlag   int
)

var rootCmd = &cobra.Command{
	Use:   "ascendctl",
	Short: "Maintenance and inspection tool for the ascend backend",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "development", "environment [prod | production | dev | development | ddev | dockerdev]")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "./config.toml", "path to TOML config file")

	rootCmd.AddCommand(migrateCmd, recordsCmd, volumeCmd, importCmd)
}

func openPool(ctx context.Context) (*config.Config, *pgxpool.Pool, error) {
	cfg, err := config.Load(envFlag, configFlag)
	if err != nil {
		return nil, nil, err
	}

	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("ASCEND_DB_PASSWORD"),
		MaxConns:   2,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("db pool: %w", err)
	}
	return cfg, pool, nil
}
