// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. These functions form the core building blocks for error-aware
// pipelines without channels.
//
// Highlights:
// - Succeed/Fail/FailError/Cancel: construct Result[T]
// - Validate/AndValidate/ValidateAll: failures become validation problems
// - Bind/Then/Map: move from Result[In] to Result[Out]
// - Try/Check/FailOnError: errors and panics become failures via the problem bridge
// - Tap/TapIf/TapError/DoubleTap/Finally: side-effect helpers
// - Ensure/EnsureCode/Where/FailIf/OkIf/Verify: guard a success
// - Compensate/CompensateWith: recover from a failure
// - Match/Fold/SwitchFirst: branch on the state or the value
// - Merge/MergeAll/Combine/CombineAll: aggregate several results
// - Report: hand an outcome to an observer
package solo
