// SPDX-License-Identifier: EPL-2.0

package audsys

import (
	"errors"

	"github.com/ik5/audsys/spi"
)

var (
	// ErrNilArgument is returned before any provider is consulted when a
	// required argument is nil or empty.
	ErrNilArgument = errors.New("required argument is nil")
	// ErrConversionUnsupported is returned by Convert when the target
	// format cannot be reached from the stream.
	ErrConversionUnsupported = errors.New("conversion not supported")

	// ErrUnsupported matches every error reporting that no provider
	// accepted an input.
	ErrUnsupported = spi.ErrUnsupported
	// ErrSourceNotFound matches failures to open a named file or resource.
	ErrSourceNotFound = spi.ErrSourceNotFound
)
