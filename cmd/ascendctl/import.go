package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/2beens/ascend/internal/workout"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <session.json>...",
	Short: "Log workout sessions from JSON files, same payload as POST /sessions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, pool, err := openPool(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		builder := workout.NewBuilder(workout.NewPgTransactor(pool), nil)
		green := color.New(color.FgGreen).SprintFunc()
		red := color.New(color.FgRed, color.Bold).SprintFunc()

		for _, path := range args {
			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			var req workout.NewSessionRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				return fmt.Errorf("decode %s: %w", path, err)
			}

			session, err := builder.CreateSession(cmd.Context(), userFlag, req)
			if err != nil {
				fmt.Printf("%s %s: %s\n", red("✗"), path, err)
				return err
			}

			prs := 0
			for _, set := range session.WorkoutSets {
				if set.NewPersonalRecord {
					prs++
				}
			}
			fmt.Printf("%s %s: session %d, %d sets, %d new PRs\n", green("✓"), path, session.ID, len(session.WorkoutSets), prs)
		}
		return nil
	},
}

func init() {
	importCmd.Flags().IntVar(&userFlag, "user", 0, "user id")
	_ = importCmd.MarkFlagRequired("user")
}
