package main

import (
	"fmt"

	"github.com/2beens/ascend/internal/catalog"
	"github.com/2beens/ascend/internal/stats"
	"github.com/2beens/ascend/internal/users"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var volumeWeeks int

var volumeCmd = &cobra.Command{
	Use:   "volume",
	Short: "Show recent and weekly training volume of a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, pool, err := openPool(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		svc := stats.NewService(stats.NewServiceParams{
			Repo:       stats.NewRepo(pool),
			Catalog:    catalog.NewRepo(pool),
			Users:      users.NewRepo(pool),
			WindowDays: cfg.RecentWindowDays,
		})

		header := color.New(color.FgGreen, color.Bold)
		header.Printf("Volume in the last %d days: ", svc.WindowDays())
		fmt.Printf("%.1f kg\n", svc.TotalVolume(cmd.Context(), userFlag))

		weekly, err := svc.WeeklyVolume(cmd.Context(), userFlag, volumeWeeks)
		if err != nil {
			return fmt.Errorf("weekly volume: %w", err)
		}
		header.Printf("Weekly volume (last %d weeks):\n", volumeWeeks)
		magenta := color.New(color.FgMagenta).SprintFunc()
		for _, w := range weekly {
			fmt.Printf("  • %s: %s kg\n", magenta(w.WeekStart), w.Volume.StringFixed(1))
		}
		return nil
	},
}

func init() {
	volumeCmd.Flags().IntVar(&userFlag, "user", 0, "user id")
	volumeCmd.Flags().IntVar(&volumeWeeks, "weeks", 8, "number of weeks")
	_ = volumeCmd.MarkFlagRequired("user")
}
