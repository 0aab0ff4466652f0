// SPDX-License-Identifier: EPL-2.0

package snd

import (
	"bytes"
	"io"
	"testing"

	"github.com/ik5/audsys/audio"
	"github.com/ik5/audsys/format"
	"github.com/ik5/audsys/formats/au"
	"github.com/ik5/audsys/internal/audiotest"
	"github.com/ik5/audsys/spi"
)

func TestWriter_WritesAUBytes(t *testing.T) {
	t.Parallel()

	var viaSnd, viaAu bytes.Buffer

	out := NewWriter().Write(audiotest.NewRampSource(8000, 2, 300), format.SND, &viaSnd)
	if out.Kind() != spi.Success {
		t.Fatalf("Write(SND) kind = %v (%s)", out.Kind(), out.Reason())
	}
	if (au.Writer{}).Write(audiotest.NewRampSource(8000, 2, 300), format.AU, &viaAu).Kind() != spi.Success {
		t.Fatal("AU write failed")
	}

	if !bytes.Equal(viaSnd.Bytes(), viaAu.Bytes()) {
		t.Error("SND output differs from AU output")
	}
	if string(viaSnd.Bytes()[:4]) != ".snd" {
		t.Errorf("magic = %q", viaSnd.Bytes()[:4])
	}
	if out.Value() != int64(viaSnd.Len()) {
		t.Errorf("Write() = %d, want %d", out.Value(), viaSnd.Len())
	}
}

func TestWriter_Types(t *testing.T) {
	t.Parallel()

	w := NewWriter()
	if got := w.Types(); len(got) != 1 || got[0] != format.SND {
		t.Errorf("Types() = %v, want [SND]", got)
	}

	pcm := audiotest.NewSilentSource(8000, 1, 1)
	if got := w.TypesFor(pcm); len(got) != 1 || got[0] != format.SND {
		t.Errorf("TypesFor(pcm) = %v, want [SND]", got)
	}

	ulaw := audiotest.NewSilentSource(8000, 1, 1).WithFormat(format.New(format.ULaw, 8000, 8, 1, 1, 8000, false, nil))
	if got := w.TypesFor(ulaw); len(got) != 0 {
		t.Errorf("TypesFor(ulaw) = %v, want none", got)
	}
}

func TestWriter_RejectsOtherTypes(t *testing.T) {
	t.Parallel()

	out := NewWriter().Write(audiotest.NewSilentSource(8000, 1, 1), format.AU, io.Discard)
	if out.Kind() != spi.Unsupported {
		t.Errorf("Write(AU) kind = %v, want unsupported", out.Kind())
	}
}

// recorder is a delegate that remembers the type it was asked for.
type recorder struct{ asked format.Type }

func (r *recorder) Types() []format.Type                { return []format.Type{format.AIFF} }
func (r *recorder) TypesFor(audio.Stream) []format.Type { return []format.Type{format.AIFF} }
func (r *recorder) Write(_ audio.Stream, t format.Type, _ io.Writer) spi.Outcome[int64] {
	r.asked = t
	return spi.Ok[int64](7)
}

func TestWriter_CustomDelegate(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	w := &Writer{Delegate: rec, Target: format.AIFF}

	out := w.Write(audiotest.NewSilentSource(8000, 1, 1), format.SND, io.Discard)
	if out.Value() != 7 || rec.asked != format.AIFF {
		t.Errorf("delegate asked for %v, returned %d", rec.asked, out.Value())
	}
}
