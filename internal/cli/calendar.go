package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lvidal/trainstreak/internal/engine"
	"github.com/lvidal/trainstreak/internal/routine"
)

// NewCalendarCommand creates the calendar command: a month grid of
// per-day statuses.
func NewCalendarCommand(opts *RootOptions) *cobra.Command {
	var monthSpec string

	cmd := &cobra.Command{
		Use:   "calendar [--month 2026-03]",
		Short: "Show a month of day statuses",
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

			snap, err := e.Load(ctx)
			if err != nil {
				return err
			}

			year, month := snap.Today.Year, snap.Today.Month
			if monthSpec != "" {
				t, err := time.Parse("2006-01", monthSpec)
				if err != nil {
					return fmt.Errorf("invalid month %q: expected YYYY-MM", monthSpec)
				}
				year, month = t.Year(), t.Month()
			}

			if opts.Format == "json" {
				first := routine.Date{Year: year, Month: month, Day: 1}
				last := first.AddDays(daysIn(year, month) - 1)
				return printJSON(cmd.OutOrStdout(), snap.ProjectSlice(first, last))
			}

			fmt.Fprint(cmd.OutOrStdout(), renderMonth(snap, year, month))
			return nil
		},
	}

	cmd.Flags().StringVar(&monthSpec, "month", "", "month to show as YYYY-MM (default: current)")

	return cmd
}

// daysIn returns the number of days in a month.
func daysIn(year int, month time.Month) int {
	// Day 0 of the next month normalizes to this month's last day.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// renderMonth renders a 6x7 grid anchored at the Sunday on or before
// the 1st. Out-of-month cells are blank - month boundaries are purely a
// display concern, the classification is month-agnostic.
func renderMonth(snap engine.Snapshot, year int, month time.Month) string {
	first := routine.Date{Year: year, Month: month, Day: 1}
	gridStart := first.AddDays(-int(first.Weekday()))

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", month, year)
	b.WriteString("  Su  Mo  Tu  We  Th  Fr  Sa\n")

	d := gridStart
	for row := 0; row < 6; row++ {
		for col := 0; col < 7; col++ {
			if d.Month != month {
				b.WriteString("    ")
			} else {
				fmt.Fprintf(&b, " %2d%s", d.Day, statusGlyph(snap.Status(d)))
			}
			d = d.AddDays(1)
		}
		b.WriteString("\n")
	}
	return b.String()
}
