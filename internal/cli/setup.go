package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lvidal/trainstreak/internal/config"
	"github.com/lvidal/trainstreak/internal/engine"
	"github.com/lvidal/trainstreak/internal/store"
)

// openEngine resolves configuration, opens the store, and builds the
// engine. The returned closer must be called when the command is done.
func openEngine(opts *RootOptions) (*engine.Engine, *store.Store, func(), error) {
	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, nil, err
	}

	dbPath := cfg.DBPath
	if opts.DBPath != "" {
		dbPath = opts.DBPath
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, nil, nil, fmt.Errorf("create data directory: %w", err)
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, nil, err
	}

	e := engine.New(s)
	return e, s, func() { s.Close() }, nil
}

// startSession runs the one-per-session backfill pass. A partial
// backfill failure is reported on stderr but does not abort the
// command: the kept writes are valid and the next session retries the
// rest.
func startSession(ctx context.Context, e *engine.Engine) error {
	_, _, err := e.OnSessionStart(ctx)
	if err != nil {
		if engine.IsPartialBackfill(err) {
			fmt.Fprintf(os.Stderr, "warning: %v (will retry next run)\n", err)
			return nil
		}
		return err
	}
	return nil
}
