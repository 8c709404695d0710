// Package store provides durable SQLite storage for the training
// routine: the weekday schedule, the per-date outcome log, and the
// streak counters.
//
// The engine sees these as three narrow collaborators (schedule store,
// outcome log store, streak store); they share one database file so the
// full reset can be a single transaction.
//
// Layout follows a singleton-user design: user_metadata holds exactly
// one row (id = 1) with the streak counters and the routine start date,
// target_days holds the scheduled weekday indices, and training_logs
// holds at most one outcome row per calendar date.
package store
