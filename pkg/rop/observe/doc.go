// Package observe reports railway outcomes to logs and metrics.
//
// Highlights:
// - Observer: receives one Outcome per reported result
// - LogObserver: slog record per failure, level chosen by status
// - PrometheusObserver: outcome and failure counters on a caller registry
// - Multi/Noop/Func: composition helpers
package observe
