// SPDX-License-Identifier: EPL-2.0

package bridge

import (
	"errors"
	"io"
	"slices"

	"github.com/ik5/audsys/audio"
	"github.com/ik5/audsys/format"
	"github.com/ik5/audsys/spi"
)

// CompressionWriter writes streams through the codec-domain writers of a
// registry. Encoder properties are accepted and ignored.
type CompressionWriter struct {
	registry *spi.Registry
	observer spi.Observer
}

// NewCompressionWriter returns a CompressionWriter dispatching over the codec
// writers of r. obs, when not nil, sees every delegated attempt.
func NewCompressionWriter(r *spi.Registry, obs spi.Observer) *CompressionWriter {
	return &CompressionWriter{registry: r, observer: obs}
}

func (*CompressionWriter) Name() string { return "bridge.CompressionWriter" }

func (*CompressionWriter) Types() []format.Type {
	return slices.Clone(writerTypes)
}

// TypesFor is the union of what every codec writer can make of s.
func (w *CompressionWriter) TypesFor(s audio.Stream) []format.Type {
	return spi.Aggregate(codecWriters(w.registry), func(fw spi.FileWriter) []format.Type {
		return fw.TypesFor(s)
	})
}

func (w *CompressionWriter) Write(s audio.Stream, t format.Type, _ format.Properties, sink io.Writer) spi.Outcome[int64] {
	n, err := spi.Dispatch(w.observer, "write", "file type "+t.Name(), codecWriters(w.registry),
		func(fw spi.FileWriter) spi.Outcome[int64] {
			return fw.Write(s, t, sink)
		})
	return settle(n, err)
}

// settle turns the result of a nested dispatch back into an outcome, so an
// exhausted dispatch reads as a rejection to the caller's dispatcher.
func settle[V any](v V, err error) spi.Outcome[V] {
	var unsupported *spi.UnsupportedError
	switch {
	case err == nil:
		return spi.Ok(v)
	case errors.As(err, &unsupported):
		return spi.Reject[V](err.Error())
	default:
		return spi.Fail[V](err)
	}
}
