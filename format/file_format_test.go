// SPDX-License-Identifier: EPL-2.0

package format

import (
	"math"
	"testing"
)

func TestExtendedFileFormat_NarrowAndWide(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		frameLength int64
		byteLength  int64
		wantFrames  int32
		wantBytes   int32
	}{
		{"fits", 1000, 4044, 1000, 4044},
		{"frames overflow", 5_000_000_000, 4044, NotSpecified, 4044},
		{"bytes overflow", 1000, 1 << 40, 1000, NotSpecified},
		{"both unspecified", NotSpecified, NotSpecified, NotSpecified, NotSpecified},
		{"max int32", math.MaxInt32, math.MaxInt32, math.MaxInt32, math.MaxInt32},
		{"just past int32", math.MaxInt32 + 1, math.MinInt32 - 1, NotSpecified, NotSpecified},
	}

	pcm := NewPCM(44100, 16, 2, true, false, nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ff := NewExtendedFileFormat(WAVE, pcm, tt.frameLength, tt.byteLength, nil)

			if got := ff.FrameLength(); got != tt.wantFrames {
				t.Errorf("FrameLength() = %d, want %d", got, tt.wantFrames)
			}
			if got := ff.ByteLength(); got != tt.wantBytes {
				t.Errorf("ByteLength() = %d, want %d", got, tt.wantBytes)
			}
			if got := ff.FrameLengthLong(); got != tt.frameLength {
				t.Errorf("FrameLengthLong() = %d, want %d", got, tt.frameLength)
			}
			if got := ff.ByteLengthLong(); got != tt.byteLength {
				t.Errorf("ByteLengthLong() = %d, want %d", got, tt.byteLength)
			}
		})
	}
}

func TestExtendedFileFormat_PropertiesAreSnapshots(t *testing.T) {
	t.Parallel()

	src := Properties{"title": "first"}
	ff := NewExtendedFileFormat(AU, NewPCM(8000, 8, 1, true, true, nil), 10, 34, src)

	src["title"] = "changed"
	src["author"] = "someone"

	got := ff.Properties()
	if got["title"] != "first" {
		t.Errorf("Properties()[title] = %v, want first", got["title"])
	}
	if _, ok := got["author"]; ok {
		t.Error("Properties() picked up a key added to the source map")
	}

	got["title"] = "mutated"
	delete(got, "title")

	again := ff.Properties()
	if again["title"] != "first" {
		t.Errorf("second Properties()[title] = %v, want first", again["title"])
	}

	if v, ok := ff.Property("title"); !ok || v != "first" {
		t.Errorf("Property(title) = %v, %v", v, ok)
	}
}

func TestExtendedFileFormat_NilPropertiesIsEmpty(t *testing.T) {
	t.Parallel()

	ff := NewExtendedFileFormat(AIFF, NewPCM(8000, 16, 1, true, true, nil), 1, 1, nil)

	props := ff.Properties()
	if props == nil {
		t.Fatal("Properties() returned nil map")
	}
	if len(props) != 0 {
		t.Errorf("len(Properties()) = %d, want 0", len(props))
	}
}

func TestExtendFileFormat(t *testing.T) {
	t.Parallel()

	pcm := NewPCM(22050, 16, 1, true, false, nil)
	narrowFF := NewFileFormat(WAVE, pcm, NotSpecified, NotSpecified, Properties{"comment": "narrow"})

	wide := ExtendFileFormat(narrowFF, 3_000_000_000, 6_000_000_044, nil)

	if wide.Type() != WAVE {
		t.Errorf("Type() = %v, want WAVE", wide.Type())
	}
	if wide.Format().SampleRate() != 22050 {
		t.Errorf("SampleRate() = %v, want 22050", wide.Format().SampleRate())
	}
	if wide.FrameLength() != NotSpecified || wide.FrameLengthLong() != 3_000_000_000 {
		t.Errorf("frame lengths = %d/%d", wide.FrameLength(), wide.FrameLengthLong())
	}
	if v, _ := wide.Property("comment"); v != "narrow" {
		t.Errorf("Property(comment) = %v, want narrow", v)
	}

	replaced := ExtendFileFormat(narrowFF, 1, 1, Properties{"comment": "wide"})
	if v, _ := replaced.Property("comment"); v != "wide" {
		t.Errorf("Property(comment) = %v, want wide", v)
	}
}

func TestNewPCM_FrameSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bits     int
		channels int
		signed   bool
		wantSize int
		wantEnc  Encoding
	}{
		{"16 bit stereo", 16, 2, true, 4, PCMSigned},
		{"8 bit mono unsigned", 8, 1, false, 1, PCMUnsigned},
		{"24 bit stereo", 24, 2, true, 6, PCMSigned},
		{"12 bit rounds up", 12, 1, true, 2, PCMSigned},
		{"unknown bits", NotSpecified, 2, true, NotSpecified, PCMSigned},
		{"unknown channels", 16, NotSpecified, true, NotSpecified, PCMSigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := NewPCM(8000, tt.bits, tt.channels, tt.signed, false, nil)
			if f.FrameSize() != tt.wantSize {
				t.Errorf("FrameSize() = %d, want %d", f.FrameSize(), tt.wantSize)
			}
			if f.Encoding() != tt.wantEnc {
				t.Errorf("Encoding() = %v, want %v", f.Encoding(), tt.wantEnc)
			}
			if f.FrameRate() != 8000 {
				t.Errorf("FrameRate() = %v, want 8000", f.FrameRate())
			}
		})
	}
}

func TestFormat_Matches(t *testing.T) {
	t.Parallel()

	base := NewPCM(44100, 16, 2, true, false, nil)

	tests := []struct {
		name  string
		other Format
		want  bool
	}{
		{"identical", NewPCM(44100, 16, 2, true, false, nil), true},
		{"wildcard rate", New(PCMSigned, NotSpecified, 16, 2, 4, NotSpecified, false, nil), true},
		{"other endianness", NewPCM(44100, 16, 2, true, true, nil), false},
		{"other encoding", NewPCM(44100, 16, 2, false, false, nil), false},
		{"other channels", NewPCM(44100, 16, 1, true, false, nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := base.Matches(tt.other); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormat_WithChannelsAndRate(t *testing.T) {
	t.Parallel()

	f := NewPCM(44100, 16, 2, true, false, Properties{"k": 1})
	mono := f.WithChannels(1).WithSampleRate(8000)

	if mono.Channels() != 1 || mono.FrameSize() != 2 {
		t.Errorf("channels/frame size = %d/%d, want 1/2", mono.Channels(), mono.FrameSize())
	}
	if mono.SampleRate() != 8000 || mono.FrameRate() != 8000 {
		t.Errorf("rate/frame rate = %v/%v, want 8000/8000", mono.SampleRate(), mono.FrameRate())
	}
	if v, _ := mono.Property("k"); v != 1 {
		t.Errorf("Property(k) = %v, want 1", v)
	}
	if f.Channels() != 2 {
		t.Error("WithChannels modified the receiver")
	}
}

func TestType_Equality(t *testing.T) {
	t.Parallel()

	if NewType("WAVE", ".wav") != WAVE {
		t.Error("NewType(WAVE, .wav) != WAVE")
	}
	if AU == SND {
		t.Error("AU == SND")
	}
	if !(Type{}).IsZero() || WAVE.IsZero() {
		t.Error("IsZero() mismatch")
	}
	if !ContainsType([]Type{AU, WAVE}, WAVE) || ContainsType([]Type{AU}, WAVE) {
		t.Error("ContainsType() mismatch")
	}
	if !ContainsEncoding([]Encoding{PCMFloat}, PCMFloat) || ContainsEncoding(nil, PCMFloat) {
		t.Error("ContainsEncoding() mismatch")
	}
}

func TestProperties_Float32(t *testing.T) {
	t.Parallel()

	p := Properties{"a": float32(0.5), "b": 0.25, "c": 1, "d": "x"}

	tests := []struct {
		key    string
		want   float32
		wantOK bool
	}{
		{"a", 0.5, true},
		{"b", 0.25, true},
		{"c", 1, true},
		{"d", 0, false},
		{"missing", 0, false},
	}

	for _, tt := range tests {
		got, ok := p.Float32(tt.key)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Float32(%q) = %v, %v, want %v, %v", tt.key, got, ok, tt.want, tt.wantOK)
		}
	}
}

func BenchmarkExtendedFileFormat_Properties(b *testing.B) {
	ff := NewExtendedFileFormat(WAVE, NewPCM(44100, 16, 2, true, false, nil), 1, 1,
		Properties{"title": "t", "author": "a", "comment": "c"})

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_ = ff.Properties()
	}
}
