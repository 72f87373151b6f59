package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tableshare/tableshare/internal/daemon"
)

func init() {
	rootCmd.AddCommand(completeCmd)
}

var completeCmd = &cobra.Command{
	Use:   "complete <task-id>",
	Short: "Complete an engagement task",
	Args:  cobra.ExactArgs(1),
	RunE:  runComplete,
}

func runComplete(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	id := args[0]
	if d.Engine.CompleteTask(id) {
		sum := d.Engine.Summary()
		fmt.Printf("Completed %q. %d points, level %d (%s).\n",
			id, sum.TotalPoints, sum.CurrentLevel, sum.LevelTitle)
		return nil
	}

	st, ok := d.Engine.TaskStatus(id)
	if !ok {
		fmt.Printf("No task %q in the catalog.\n", id)
		return nil
	}
	if st.CooldownRemaining > 0 {
		fmt.Printf("%q is cooling down (%s remaining).\n", id, st.CooldownRemaining)
	} else {
		fmt.Printf("%q is already completed.\n", id)
	}
	return nil
}
