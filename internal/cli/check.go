package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lvidal/trainstreak/internal/engine"
	"github.com/lvidal/trainstreak/internal/routine"
)

// NewCheckCommand creates the check command: toggle today across the
// pending/completed boundary.
func NewCheckCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Toggle today's training between pending and completed",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			e, _, closeStore, err := openEngine(opts)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := startSession(ctx, e); err != nil {
				return err
			}

			res, err := e.ToggleToday(ctx)
			if err != nil {
				var te *engine.ToggleError
				if errors.As(err, &te) {
					return fmt.Errorf("%s", te.Reason)
				}
				return err
			}

			if opts.Format == "json" {
				return printJSON(cmd.OutOrStdout(), res)
			}

			w := cmd.OutOrStdout()
			switch res.Status {
			case routine.StatusCompleted:
				fmt.Fprintf(w, "Checked %s: completed. Streak: %d (longest %d)\n",
					res.Date, res.Streak.Current, res.Streak.Max)
			default:
				fmt.Fprintf(w, "Unchecked %s: back to pending. Streak: %d (longest %d)\n",
					res.Date, res.Streak.Current, res.Streak.Max)
			}
			return nil
		},
	}
}
