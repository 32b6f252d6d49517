package domain

// Result is a two-state validation outcome: it holds either a valid value or
// a single human-readable failure message, never both.
type Result[T any] struct {
	value   T
	message string
	ok      bool
}

// Ok wraps a validated value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Failure wraps a failure message.
func Failure[T any](message string) Result[T] {
	return Result[T]{message: message}
}

// IsFailure reports whether the result carries a failure message.
func (r Result[T]) IsFailure() bool {
	return !r.ok
}

// Value returns the validated value. Only meaningful when IsFailure is false.
func (r Result[T]) Value() T {
	return r.value
}

// Message returns the failure message, or "" on success.
func (r Result[T]) Message() string {
	return r.message
}
