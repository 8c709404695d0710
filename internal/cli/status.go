package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lvidal/trainstreak/internal/engine"
	"github.com/lvidal/trainstreak/internal/routine"
)

// statusOutput is the JSON shape of the status command.
type statusOutput struct {
	Today      routine.Date        `json:"today"`
	Status     routine.DayStatus   `json:"status"`
	Streak     routine.StreakState `json:"streak"`
	Schedule   []int               `json:"schedule"`
	NextDay    *routine.Date       `json:"next_training_day,omitempty"`
	Week       []engine.Day        `json:"week"`
	Configured bool                `json:"configured"`
}

// NewStatusCommand creates the status command: today's classification,
// the streak counters, and the current week at a glance.
func NewStatusCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show today's status and the streak counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			e, _, closeStore, err := openEngine(opts)
			if err != nil {
				return err
			}
			defer closeStore()

			configured, err := e.HasConfiguredRoutine(ctx)
			if err != nil {
				return err
			}
			if !configured {
				if opts.Format == "json" {
					return printJSON(cmd.OutOrStdout(), statusOutput{Configured: false, Schedule: []int{}, Week: []engine.Day{}})
				}
				fmt.Fprintln(cmd.OutOrStdout(), "No routine configured. Run: trainstreak configure --days mon,wed,fri")
				return nil
			}

			// Backfill before anything reads day or streak state.
			if err := startSession(ctx, e); err != nil {
				return err
			}

			snap, err := e.Load(ctx)
			if err != nil {
				return err
			}
			streak, err := e.Streak(ctx)
			if err != nil {
				return err
			}

			weekStart := snap.Today.AddDays(-int(snap.Today.Weekday()))
			week := snap.ProjectSlice(weekStart, weekStart.AddDays(6))

			out := statusOutput{
				Today:      snap.Today,
				Status:     snap.Status(snap.Today),
				Streak:     streak,
				Schedule:   scheduleInts(snap.Schedule),
				Week:       week,
				Configured: true,
			}
			if next, ok := snap.NextTrainingDay(); ok {
				out.NextDay = &next
			}

			if opts.Format == "json" {
				return printJSON(cmd.OutOrStdout(), out)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Today %s: %s\n", out.Today, out.Status)
			fmt.Fprintf(w, "Streak: %d (longest %d)\n", streak.Current, streak.Max)
			fmt.Fprintf(w, "Schedule: %s\n", snap.Schedule)
			if out.NextDay != nil {
				fmt.Fprintf(w, "Next training day: %s (%s)\n", out.NextDay.Weekday(), out.NextDay)
			}
			fmt.Fprintf(w, "Week:%s\n", renderWeekRow(week))
			return nil
		},
	}
}

// renderWeekRow renders the current week as " Su[ ] Mo[✓] ..." cells.
func renderWeekRow(week []engine.Day) string {
	var b strings.Builder
	for _, day := range week {
		fmt.Fprintf(&b, " %s[%s]", day.Date.Weekday().String()[:2], statusGlyph(day.Status))
	}
	return b.String()
}
