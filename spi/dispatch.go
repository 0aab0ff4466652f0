// SPDX-License-Identifier: EPL-2.0

package spi

import (
	"errors"
	"fmt"
	"io"
)

// Attempt describes one provider invocation made by Dispatch.
type Attempt struct {
	Op       string
	Provider string
	Domain   Domain
	Kind     Kind
	Reason   string
	Err      error
}

// Observer is told about every attempt a dispatch makes.
type Observer interface {
	Observe(a Attempt)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(a Attempt)

func (f ObserverFunc) Observe(a Attempt) { f(a) }

func observe[T, V any](obs Observer, op string, c Candidate[T], out Outcome[V]) {
	if obs == nil {
		return
	}
	obs.Observe(Attempt{
		Op:       op,
		Provider: c.Name,
		Domain:   c.Domain,
		Kind:     out.kind,
		Reason:   out.reason,
		Err:      out.err,
	})
}

// Dispatch runs action on each candidate in order. The first success is
// returned. A failure is returned unchanged and later candidates are not
// tried. When all candidates reject, or there are none, the error is an
// *UnsupportedError naming op and subject.
func Dispatch[T, V any](obs Observer, op, subject string, cands []Candidate[T], action func(T) Outcome[V]) (V, error) {
	var zero V
	unsupported := &UnsupportedError{Op: op, Subject: subject}

	for _, c := range cands {
		out := action(c.Provider)
		observe(obs, op, c, out)

		switch out.kind {
		case Success:
			return out.value, nil
		case Failure:
			return zero, out.err
		default:
			unsupported.Reasons = append(unsupported.Reasons, out.reason)
		}
	}

	return zero, unsupported
}

// DispatchStream is Dispatch for actions that read from rs. Every candidate
// starts reading at the position rs had when DispatchStream was called, and
// rs is back at that position when every candidate rejected. Failing to
// restore the position is reported as a failure.
func DispatchStream[T, V any](obs Observer, op, subject string, cands []Candidate[T], rs io.ReadSeeker,
	action func(T, io.ReadSeeker) Outcome[V]) (V, error) {
	var zero V

	reset, err := Mark(rs)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	first := true
	v, err := Dispatch(obs, op, subject, cands, func(p T) Outcome[V] {
		if !first {
			if err := reset(); err != nil {
				return Fail[V](fmt.Errorf("%s: %w", op, err))
			}
		}
		first = false
		return action(p, rs)
	})

	var unsupported *UnsupportedError
	if errors.As(err, &unsupported) {
		if rerr := reset(); rerr != nil {
			return zero, fmt.Errorf("%s: %w", op, rerr)
		}
	}
	return v, err
}

// Mark records the current offset of s and returns a function seeking back
// to it.
func Mark(s io.Seeker) (reset func() error, err error) {
	pos, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("marking stream position: %w", err)
	}

	return func() error {
		if _, err := s.Seek(pos, io.SeekStart); err != nil {
			return fmt.Errorf("restoring stream position %d: %w", pos, err)
		}
		return nil
	}, nil
}
