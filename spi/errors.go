// SPDX-License-Identifier: EPL-2.0

package spi

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupported matches every *UnsupportedError.
	ErrUnsupported = errors.New("unsupported")
	// ErrSourceNotFound is wrapped around failures to open a named source.
	ErrSourceNotFound = errors.New("source not found")
	// ErrProviderFailed stands in when a provider fails without a cause.
	ErrProviderFailed = errors.New("provider failed")
)

// UnsupportedError is returned when no candidate accepted an action.
type UnsupportedError struct {
	Op      string
	Subject string
	// Reasons holds the rejection reason of each candidate, in order.
	Reasons []string
}

func (e *UnsupportedError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	if e.Subject == "" {
		b.WriteString("no provider accepted the input")
	} else {
		fmt.Fprintf(&b, "%s not supported", e.Subject)
	}
	if len(e.Reasons) == 0 {
		b.WriteString(" (no providers)")
	}
	return b.String()
}

func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// SourceNotFound wraps err, the failure to open name, so that it matches
// ErrSourceNotFound.
func SourceNotFound(name string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrSourceNotFound, name, err)
}
