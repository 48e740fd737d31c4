// Package problem defines Problem, an RFC 7807 style description of a
// failure, and the bridge between problems and Go errors.
//
// A Problem carries the five standard members (type, title, status, detail,
// instance) plus an open extension bag. Several typed views live inside
// that bag under reserved keys:
// - ErrorCode: a string classifier for programmatic branching
// - ValidationErrors: field name to ordered list of messages
// - exceptionType and exception.* entries: recorded by FromError so that
//   ToError can rebuild an error of the original type
// - problems: the ordered members of an aggregate problem
//
// Constructors:
// - New, FromStatus, FromCode, FromError, Validation, Aggregate, Canceled
//
// ToError rebuilds an error through a Registry of factories keyed by the
// qualified type name. Unknown types, validation problems and factories
// that fail fall back to *Error, which always carries the Problem itself.
// Stack traces and wrapped causes never survive the round trip.
package problem
