// SPDX-License-Identifier: EPL-2.0

// Package snd provides a writer for the SND file type. SND files share the
// AU layout, so the writer delegates to another writer producing the
// delegate type and reports the result as its own.
package snd

import (
	"io"

	"github.com/ik5/audsys/audio"
	"github.com/ik5/audsys/format"
	"github.com/ik5/audsys/formats/au"
	"github.com/ik5/audsys/spi"
)

// Writer claims format.SND and writes it with Delegate as Target.
type Writer struct {
	Delegate spi.FileWriter
	Target   format.Type
}

// NewWriter returns a Writer backed by the AU writer.
func NewWriter() *Writer {
	return &Writer{Delegate: au.Writer{}, Target: format.AU}
}

func (w *Writer) Name() string { return "snd.Writer" }

func (w *Writer) Types() []format.Type {
	return []format.Type{format.SND}
}

func (w *Writer) TypesFor(s audio.Stream) []format.Type {
	if !format.ContainsType(w.Delegate.TypesFor(s), w.Target) {
		return []format.Type{}
	}
	return []format.Type{format.SND}
}

func (w *Writer) Write(s audio.Stream, t format.Type, sink io.Writer) spi.Outcome[int64] {
	if t != format.SND {
		return spi.Rejectf[int64]("SND writer cannot produce %s", t)
	}
	return w.Delegate.Write(s, w.Target, sink)
}

func init() {
	Register(spi.Default())
}

// Register installs the SND writer into r.
func Register(r *spi.Registry) {
	r.Register(spi.DomainCodec, NewWriter())
}
