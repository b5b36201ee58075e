package db

import (
	"context"
	_ "embed"
	"fmt"

	log "github.com/sirupsen/logrus"
)

//go:embed schema.sql
var schemaSQL string

// Schema returns the DDL applied by Migrate.
func Schema() string {
	return schemaSQL
}

// Migrate creates missing tables and indexes. Safe to run repeatedly.
func Migrate(ctx context.Context, db Querier) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	log.Debugln("db schema applied")
	return nil
}
