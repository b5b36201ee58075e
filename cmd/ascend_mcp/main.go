// Package main serves the ascend recommendation tools over stdio, for agents
// running next to the database. The backend exposes the same tools at /mcp.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/2beens/ascend/internal/assistant"
	"github.com/2beens/ascend/internal/catalog"
	"github.com/2beens/ascend/internal/config"
	"github.com/2beens/ascend/internal/db"
	"github.com/2beens/ascend/internal/stats"
	"github.com/2beens/ascend/internal/users"

	"github.com/coocood/freecache"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout carries the protocol
	log.SetOutput(os.Stderr)
	_ = godotenv.Load()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("ASCEND_DB_PASSWORD"),
		MaxConns:   4,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	statsService := stats.NewService(stats.NewServiceParams{
		Repo:       stats.NewRepo(dbPool),
		Catalog:    catalog.NewRepo(dbPool),
		Users:      users.NewRepo(dbPool),
		Cache:      freecache.NewCache(cfg.CatalogCacheSizeBytes),
		CacheTTL:   cfg.CatalogCacheTTL(),
		WindowDays: cfg.RecentWindowDays,
	})

	if err := assistant.NewServer(statsService).Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
