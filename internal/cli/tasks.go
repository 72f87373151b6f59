package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/tableshare/tableshare/internal/daemon"
)

func init() {
	tasksCmd.Flags().BoolVar(&tasksAll, "all", false, "Show the full catalog instead of today's rotation")
	rootCmd.AddCommand(tasksCmd)
}

var tasksAll bool

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List engagement tasks and their cooldowns",
	RunE:  runTasks,
}

func runTasks(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	tasks := d.Engine.DailyTasks()
	if tasksAll {
		tasks = d.Engine.Tasks()
	}

	now := time.Now()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tPOINTS\tCATEGORY\tSTATUS")
	for _, t := range tasks {
		st, _ := d.Engine.TaskStatusAt(t.ID, now)
		status := "available"
		switch {
		case st.CanComplete:
		case !t.Repeatable:
			status = "completed"
		default:
			status = fmt.Sprintf("cooldown %s", st.CooldownRemaining.Round(time.Second))
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", t.ID, t.Title, t.Points, t.Category, status)
	}
	return w.Flush()
}
