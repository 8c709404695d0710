package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewResetCommand creates the reset command: clear all data and re-arm
// the routine start date.
func NewResetCommand(opts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear the schedule, the outcome log, and the streaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("reset deletes all recorded data; re-run with --yes to confirm")
			}

			e, _, closeStore, err := openEngine(opts)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := e.Reset(cmd.Context()); err != nil {
				return err
			}

			if opts.Format == "json" {
				return printJSON(cmd.OutOrStdout(), map[string]string{"result": "reset"})
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All data has been reset.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")

	return cmd
}
