package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lvidal/trainstreak/internal/routine"
)

// NewLogCommand creates the log command: the recorded outcome log,
// optionally bounded by dates.
func NewLogCommand(opts *RootOptions) *cobra.Command {
	var fromSpec, toSpec string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "List recorded outcomes in date order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			e, s, closeStore, err := openEngine(opts)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := startSession(ctx, e); err != nil {
				return err
			}

			var from, to *routine.Date
			if fromSpec != "" {
				d, err := routine.ParseDate(fromSpec)
				if err != nil {
					return err
				}
				from = &d
			}
			if toSpec != "" {
				d, err := routine.ParseDate(toSpec)
				if err != nil {
					return err
				}
				to = &d
			}

			records, err := s.ListOutcomes(ctx, from, to)
			if err != nil {
				return err
			}

			if opts.Format == "json" {
				return printJSON(cmd.OutOrStdout(), records)
			}

			w := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(w, "No outcomes recorded.")
				return nil
			}
			for _, rec := range records {
				fmt.Fprintf(w, "%s  %s\n", rec.Date, rec.Status)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fromSpec, "from", "", "earliest date to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toSpec, "to", "", "latest date to include (YYYY-MM-DD)")

	return cmd
}
