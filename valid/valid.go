// Package valid provides an accumulating validation result.
//
// A [Valid] is either a success holding a value or a failure holding one or
// more diagnostics. Failures are terminal for the computation they belong to:
// [Map] and [AndThen] pass them through untouched, and [Valid.ToResult]
// surfaces every diagnostic in a single error.
//
//	v := valid.AndThen(valid.Succeed(cfg), checkFields)
//	v = valid.AndThen(v, checkTypes)
//	cfg, err := v.ToResult()
package valid

import "strings"

// Valid is the outcome of a validation step.
type Valid[T any] struct {
	value    T
	failures []error
}

// Succeed returns a successful validation holding v.
func Succeed[T any](v T) Valid[T] {
	return Valid[T]{value: v}
}

// Fail returns a failed validation holding a single diagnostic.
// Multiple diagnostics are combined by the caller before failing.
// It panics if err is nil, since a failure must never be empty.
func Fail[T any](err error) Valid[T] {
	if err == nil {
		panic("valid: Fail called with a nil diagnostic")
	}
	return Valid[T]{failures: []error{err}}
}

// IsSucceed reports whether v holds a value.
func (v Valid[T]) IsSucceed() bool {
	return len(v.failures) == 0
}

// Failures returns the diagnostics held by a failed validation, in order.
func (v Valid[T]) Failures() []error {
	return v.failures
}

// ToResult collapses v into a value or an error. The error's message is every
// diagnostic joined by newlines, and errors.Is/As reach each of them.
func (v Valid[T]) ToResult() (T, error) {
	if v.IsSucceed() {
		return v.value, nil
	}
	var zero T
	return zero, &Failure{Diagnostics: v.failures}
}

// Map transforms the value of a successful validation.
func Map[T, U any](v Valid[T], f func(T) U) Valid[U] {
	if !v.IsSucceed() {
		return Valid[U]{failures: v.failures}
	}
	return Succeed(f(v.value))
}

// AndThen runs f on the value of a successful validation.
// A failed v is returned unchanged and f is never called.
func AndThen[T, U any](v Valid[T], f func(T) Valid[U]) Valid[U] {
	if !v.IsSucceed() {
		return Valid[U]{failures: v.failures}
	}
	return f(v.value)
}

// Failure is the error produced by [Valid.ToResult].
type Failure struct {
	// Diagnostics holds every failure in the order it was produced
	Diagnostics []error
}

// Error returns all diagnostics joined by newlines.
func (f *Failure) Error() string {
	msgs := make([]string, 0, len(f.Diagnostics))
	for _, d := range f.Diagnostics {
		msgs = append(msgs, d.Error())
	}
	return strings.Join(msgs, "\n")
}

// Unwrap exposes the diagnostics to errors.Is and errors.As.
func (f *Failure) Unwrap() []error {
	return f.Diagnostics
}
