// Package tiny provides a minimal fluent Chain[T] for synchronous
// composition of Result[T] values.
//
// It parallels the chain package but keeps the value type fixed:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the value
// - Ensure/Tap: guard the value, trigger side effects
// - Or/And: pick among alternative chains, require several
// - RepeatUntil/While: loop a step while the chain succeeds
// - Compensate: recover from a failure
// - Finally: reduce to a concrete value via handlers
//
// Tiny is ideal for small services or tests where lightweight synchronous
// chaining improves readability without introducing channels.
package tiny
