// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"

	"github.com/ik5/audsys/format"
	"github.com/ik5/audsys/internal/audiotest"
)

func TestNewStream(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(16000, 1, 10, 0.25)
	f := format.NewPCM(16000, 24, 1, true, true, nil)

	s := NewStream(src, f, 10)
	if s.Format().SampleSizeInBits() != 24 || !s.Format().BigEndian() {
		t.Errorf("Format() = %v, want 24 bit big-endian", s.Format())
	}
	if s.FrameLength() != 10 {
		t.Errorf("FrameLength() = %d, want 10", s.FrameLength())
	}

	samples, err := audiotest.Collect(s)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(samples) != 10 || samples[0] != 0.25 {
		t.Errorf("samples = %v, want ten values of 0.25", samples)
	}

	if err := s.Close(); err != nil || !src.Closed() {
		t.Errorf("Close() = %v, closed = %v", err, src.Closed())
	}
}

func TestNewStream_Unwraps(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 2, 4)
	inner := NewStream(src, src.Format(), 4)
	outer := NewStream(inner, src.Format(), 4)

	if outer.(*stream).Source != Source(src) {
		t.Error("NewStream() nested a stream wrapper")
	}
}

func TestFormatOf(t *testing.T) {
	t.Parallel()

	f := FormatOf(plainSource{rate: 44100, channels: 2})
	if f.Encoding() != format.PCMFloat || f.FrameSize() != 8 || f.SampleSizeInBits() != 32 {
		t.Errorf("FormatOf(plain) = %v", f)
	}
	if FrameLengthOf(plainSource{rate: 1, channels: 1}) != format.NotSpecified {
		t.Error("FrameLengthOf(plain) should be NotSpecified")
	}

	src := audiotest.NewSilentSource(8000, 1, 3)
	if FormatOf(src).Encoding() != format.PCMSigned || FrameLengthOf(src) != 3 {
		t.Errorf("FormatOf(stream) = %v, %d", FormatOf(src), FrameLengthOf(src))
	}
}

func TestRelabel(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 2, 3)

	tests := []struct {
		name    string
		target  format.Format
		wantErr bool
	}{
		{"bit depth", format.NewPCM(8000, 24, 2, true, false, nil), false},
		{"unsigned", format.NewPCM(8000, 8, 2, false, false, nil), false},
		{"float", format.New(format.PCMFloat, 8000, 32, 2, 8, 8000, true, nil), false},
		{"rate differs", format.NewPCM(16000, 16, 2, true, false, nil), true},
		{"channels differ", format.NewPCM(8000, 16, 1, true, false, nil), true},
		{"not pcm", format.New(format.ULaw, 8000, 8, 2, 2, 8000, false, nil), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := Relabel(src, tt.target)
			if tt.wantErr {
				if !errors.Is(err, ErrLayoutMismatch) {
					t.Errorf("Relabel() error = %v, want ErrLayoutMismatch", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Relabel() error = %v", err)
			}
			if s.Format().Encoding() != tt.target.Encoding() || s.FrameLength() != 3 {
				t.Errorf("Relabel() = %v/%d", s.Format(), s.FrameLength())
			}
		})
	}
}
