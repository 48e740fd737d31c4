// Package mass lifts solo primitives onto goroutines. Each adapter runs the
// caller's computation asynchronously and delivers exactly one result on
// the returned channel.
//
// A context that ends before the computation finishes yields a canceled
// result (rop.Cancel) instead of the computed one. Errors and panics of the
// awaited computation become failures through the problem bridge.
//
// Highlights:
// - FromAsync: run a (T, error) function asynchronously
// - Validating/Mapping/Binding/Trying/Tapping/Compensating: async solo steps
// - Await: block for the single result of an adapter
package mass
