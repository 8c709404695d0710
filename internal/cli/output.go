package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lvidal/trainstreak/internal/routine"
)

// printJSON writes v as indented JSON followed by a newline.
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// statusGlyph maps a day status to its one-character calendar marker.
func statusGlyph(s routine.DayStatus) string {
	switch s {
	case routine.StatusCompleted:
		return "✓"
	case routine.StatusFailed:
		return "✗"
	case routine.StatusPending:
		return "·"
	default:
		return " "
	}
}
