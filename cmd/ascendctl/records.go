package main

import (
	"fmt"

	"github.com/2beens/ascend/internal/records"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show personal records and lifetime reps of a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, pool, err := openPool(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		list, err := records.NewRepo(pool).ListForUser(cmd.Context(), userFlag)
		if err != nil {
			return fmt.Errorf("list records: %w", err)
		}
		if len(list) == 0 {
			fmt.Printf("no records for user %d\n", userFlag)
			return nil
		}

		cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		for _, rec := range list {
			pr := "-"
			if rec.DateOfPR != nil {
				pr = fmt.Sprintf("%s kg on %s", rec.PersonalRecord.StringFixed(1), rec.DateOfPR)
			}
			fmt.Printf("%s\n  PR: %s\n  lifetime reps: %s\n", cyanBold(rec.ExerciseName), pr, yellow(rec.LifetimeReps))
		}
		return nil
	},
}

func init() {
	recordsCmd.Flags().IntVar(&userFlag, "user", 0, "user id")
	_ = recordsCmd.MarkFlagRequired("user")
}
