package main

import (
	"fmt"

	"github.com/2beens/ascend/internal/db"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, pool, err := openPool(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := db.Migrate(cmd.Context(), pool); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		color.New(color.FgGreen, color.Bold).Println("schema up to date")
		return nil
	},
}
