// SPDX-License-Identifier: EPL-2.0

package bridge

import (
	"errors"
	"io"
	"io/fs"

	"github.com/ik5/audsys/audio"
	"github.com/ik5/audsys/format"
	"github.com/ik5/audsys/internal/rewind"
	"github.com/ik5/audsys/spi"
)

// ResourceReader reads named files out of an fs.FS with the codec-domain
// readers of a registry.
type ResourceReader struct {
	registry *spi.Registry
	observer spi.Observer
}

// NewResourceReader returns a ResourceReader dispatching over the codec
// readers of r. obs may be nil.
func NewResourceReader(r *spi.Registry, obs spi.Observer) *ResourceReader {
	return &ResourceReader{registry: r, observer: obs}
}

func (*ResourceReader) Name() string { return "bridge.ResourceReader" }

func open(fsys fs.FS, name string) (fs.File, io.ReadSeeker, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, nil, spi.SourceNotFound(name, err)
	}
	return f, rewind.Wrap(f), nil
}

func (rr *ResourceReader) DescribeResource(fsys fs.FS, name string) spi.Outcome[*format.ExtendedFileFormat] {
	f, rs, err := open(fsys, name)
	if err != nil {
		return spi.Fail[*format.ExtendedFileFormat](err)
	}
	defer f.Close()

	ff, err := spi.DispatchStream(rr.observer, "describe", "resource "+name, codecReaders(rr.registry), rs,
		func(p spi.FileReader, rs io.ReadSeeker) spi.Outcome[*format.ExtendedFileFormat] {
			return p.Describe(rs)
		})
	return settle(ff, err)
}

// DecodeResource decodes name. The returned stream owns the opened file and
// closes it on Close.
func (rr *ResourceReader) DecodeResource(fsys fs.FS, name string) spi.Outcome[audio.Stream] {
	f, rs, err := open(fsys, name)
	if err != nil {
		return spi.Fail[audio.Stream](err)
	}

	s, err := spi.DispatchStream(rr.observer, "decode", "resource "+name, codecReaders(rr.registry), rs,
		func(p spi.FileReader, rs io.ReadSeeker) spi.Outcome[audio.Stream] {
			return p.Decode(rs)
		})
	out := settle(s, err)
	if out.Kind() != spi.Success {
		f.Close()
		return out
	}
	return spi.Map(out, func(s audio.Stream) audio.Stream {
		return &ownedStream{Stream: s, file: f}
	})
}

// ownedStream closes the file it was decoded from after the stream itself.
type ownedStream struct {
	audio.Stream

	file io.Closer
}

func (s *ownedStream) Close() error {
	return errors.Join(s.Stream.Close(), s.file.Close())
}
