package rutego

import "fmt"

// Result is the two-variant outcome of a call: success carrying a value or
// failure carrying a message, never both. The zero Result is a failure with
// an empty message; use Ok or Fail to construct meaningful values. Expected
// failures (unresolved path parameters, non-2xx statuses) are reported this
// way instead of through the error return.
type Result[T any] struct {
	value T
	err   string
	ok    bool
}

// Ok returns a successful Result carrying v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Fail returns a failed Result carrying the given message.
func Fail[T any](msg string) Result[T] {
	return Result[T]{err: msg}
}

// Failf returns a failed Result with a formatted message.
func Failf[T any](format string, args ...any) Result[T] {
	return Result[T]{err: fmt.Sprintf(format, args...)}
}

// OK reports whether the Result is the success variant.
func (r Result[T]) OK() bool {
	return r.ok
}

// Value returns the carried value. For a failed Result it is the zero value
// of T; check OK first.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure message, or "" for a successful Result.
func (r Result[T]) Err() string {
	return r.err
}

// String renders the Result for logging.
func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("ok(%v)", r.value)
	}
	return fmt.Sprintf("fail(%s)", r.err)
}
