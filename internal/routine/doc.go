// Package routine defines the domain vocabulary of the training tracker:
// calendar dates, weekday schedules, recorded outcomes, derived day
// statuses, and the streak counters.
//
// Everything in this package is pure data and pure computation. No I/O,
// no clocks, no stores - those live in internal/store and internal/engine.
// This keeps the classification and streak rules trivially testable and
// deterministic for a given set of inputs.
package routine
