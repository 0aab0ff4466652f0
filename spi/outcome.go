// SPDX-License-Identifier: EPL-2.0

package spi

import "fmt"

// Kind classifies the result of a provider action.
type Kind int

const (
	// Unsupported means the provider does not handle the input; the next
	// candidate is tried.
	Unsupported Kind = iota
	// Success carries the action's value.
	Success
	// Failure means the input or output itself broke; dispatch stops.
	Failure
)

func (k Kind) String() string {
	switch k {
	case Unsupported:
		return "unsupported"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Outcome is what a provider action returns. The zero Outcome is an
// unsupported result.
type Outcome[V any] struct {
	kind   Kind
	value  V
	reason string
	err    error
}

// Ok returns a successful outcome holding v.
func Ok[V any](v V) Outcome[V] {
	return Outcome[V]{kind: Success, value: v}
}

// Reject returns an unsupported outcome. reason is kept for diagnostics.
func Reject[V any](reason string) Outcome[V] {
	return Outcome[V]{kind: Unsupported, reason: reason}
}

// Rejectf is Reject with a formatted reason.
func Rejectf[V any](format string, args ...any) Outcome[V] {
	return Reject[V](fmt.Sprintf(format, args...))
}

// Fail returns a failed outcome carrying err.
func Fail[V any](err error) Outcome[V] {
	if err == nil {
		err = ErrProviderFailed
	}
	return Outcome[V]{kind: Failure, err: err}
}

func (o Outcome[V]) Kind() Kind     { return o.kind }
func (o Outcome[V]) Value() V       { return o.value }
func (o Outcome[V]) Reason() string { return o.reason }
func (o Outcome[V]) Err() error     { return o.err }

// Map converts a successful value with fn and passes other outcomes through.
func Map[V, W any](o Outcome[V], fn func(V) W) Outcome[W] {
	return Outcome[W]{kind: o.kind, reason: o.reason, err: o.err, value: mapValue(o, fn)}
}

func mapValue[V, W any](o Outcome[V], fn func(V) W) W {
	if o.kind != Success {
		var zero W
		return zero
	}
	return fn(o.value)
}
