package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lvidal/trainstreak/internal/routine"
)

// weekdayNames maps accepted spellings to weekdays. Both three-letter
// and full names are accepted, plus the raw index 0-6.
var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday, "0": time.Sunday,
	"mon": time.Monday, "monday": time.Monday, "1": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday, "2": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday, "3": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday, "4": time.Thursday,
	"fri": time.Friday, "friday": time.Friday, "5": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday, "6": time.Saturday,
}

// parseWeekdays parses a comma-separated weekday list like
// "mon,wed,fri" into a schedule.
func parseWeekdays(spec string) (routine.Schedule, error) {
	var days []time.Weekday
	for _, part := range strings.Split(spec, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		w, ok := weekdayNames[name]
		if !ok {
			return routine.Schedule{}, fmt.Errorf("unknown weekday %q", part)
		}
		days = append(days, w)
	}
	if len(days) == 0 {
		return routine.Schedule{}, fmt.Errorf("no weekdays given")
	}
	return routine.NewSchedule(days...), nil
}

// NewConfigureCommand creates the configure command: install a new
// routine, clearing any previous data.
func NewConfigureCommand(opts *RootOptions) *cobra.Command {
	var daysSpec string

	cmd := &cobra.Command{
		Use:   "configure --days mon,wed,fri",
		Short: "Set the weekly training days (clears previous data)",
		Long: "Installs a new routine: the given weekdays become the schedule and\n" +
			"today becomes the routine start date. All previous outcomes and\n" +
			"streak counters are cleared first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			sched, err := parseWeekdays(daysSpec)
			if err != nil {
				return err
			}

			e, _, closeStore, err := openEngine(opts)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := e.Configure(cmd.Context(), sched); err != nil {
				return err
			}

			if opts.Format == "json" {
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"schedule": scheduleInts(sched),
					"start":    routine.Today(),
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Routine saved: %s (starting %s)\n", sched, routine.Today())
			return nil
		},
	}

	cmd.Flags().StringVar(&daysSpec, "days", "", "comma-separated training weekdays (required)")
	cmd.MarkFlagRequired("days")

	return cmd
}

// scheduleInts renders a schedule as raw weekday indices for JSON.
func scheduleInts(s routine.Schedule) []int {
	out := make([]int, 0, s.Len())
	for _, w := range s.Days() {
		out = append(out, int(w))
	}
	return out
}
