package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tableshare/tableshare/internal/daemon"
	"github.com/tableshare/tableshare/internal/domain"
)

func init() {
	volunteersCmd.Flags().StringVar(&volunteersStatus, "status", "", "Filter by status (pending, approved, declined)")
	volunteersCmd.Flags().IntVar(&volunteersLimit, "limit", 50, "Maximum rows to show")
	rootCmd.AddCommand(volunteersCmd)
}

var (
	volunteersStatus string
	volunteersLimit  int
)

var volunteersCmd = &cobra.Command{
	Use:   "volunteers",
	Short: "List volunteer signups",
	RunE:  runVolunteers,
}

func runVolunteers(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	signups, err := d.Volunteers.List(domain.SignupStatus(volunteersStatus), volunteersLimit)
	if err != nil {
		return err
	}

	if len(signups) == 0 {
		fmt.Println("No volunteer signups yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tEMAIL\tINTEREST\tSTATUS\tSUBMITTED")
	for _, v := range signups {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			v.Name, v.Email, v.Interest, v.Status,
			v.SubmittedAt.Format("2006-01-02 15:04"),
		)
	}
	return w.Flush()
}
