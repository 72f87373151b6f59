package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tableshare/tableshare/internal/daemon"
)

func init() {
	rootCmd.AddCommand(summaryCmd)
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the engagement profile",
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	sum := d.Engine.Summary()

	fmt.Printf("Level %d — %s\n", sum.CurrentLevel, sum.LevelTitle)
	fmt.Printf("  Points:     %d (%.0f%% to next level)\n", sum.TotalPoints, sum.ProgressPercent)
	fmt.Printf("  Streak:     %d day(s), %d action(s) today\n", sum.DayStreak, sum.ActionsToday)
	fmt.Printf("  Pledged:    $%.2f\n", sum.TotalDonations)
	fmt.Printf("  Lives:      %d\n", sum.LivesImpacted)
	if sum.IsMaxLevel {
		fmt.Println("  Max level reached.")
	}

	total, err := d.Donations.Total()
	if err != nil {
		return err
	}
	fmt.Printf("Community counter: $%.2f\n", total)
	return nil
}
