// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"
	"testing/iotest"

	"github.com/ik5/audsys/format"
	"github.com/ik5/audsys/internal/audiotest"
	"github.com/ik5/audsys/internal/rewind"
	"github.com/ik5/audsys/spi"
)

// Helper function to create a minimal WAV file with the given chunks
// between fmt and data.
func createWAVFile(audioFormat uint16, sampleRate, channels, bitsPerSample int, data []byte, extra ...[]byte) []byte {
	buf := new(bytes.Buffer)

	blockAlign := channels * bitsPerSample / 8
	var extraLen int
	for _, e := range extra {
		extraLen += len(e)
	}

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+extraLen+len(data)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, audioFormat)
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate*blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	for _, e := range extra {
		buf.Write(e)
	}

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)

	return buf.Bytes()
}

func int16Data(samples ...int16) []byte {
	buf := new(bytes.Buffer)
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}
	return buf.Bytes()
}

func TestReader_Describe(t *testing.T) {
	t.Parallel()

	data := createWAVFile(formatPCM, 8000, 2, 16, make([]byte, 8000*4))

	out := Reader{}.Describe(bytes.NewReader(data))
	if out.Kind() != spi.Success {
		t.Fatalf("Describe() kind = %v (%s)", out.Kind(), out.Reason())
	}

	ff := out.Value()
	if ff.Type() != format.WAVE {
		t.Errorf("Type() = %v, want WAVE", ff.Type())
	}
	if ff.FrameLengthLong() != 8000 {
		t.Errorf("FrameLengthLong() = %d, want 8000", ff.FrameLengthLong())
	}
	if ff.ByteLengthLong() != int64(len(data)) {
		t.Errorf("ByteLengthLong() = %d, want %d", ff.ByteLengthLong(), len(data))
	}

	f := ff.Format()
	if f.Encoding() != format.PCMSigned || f.SampleSizeInBits() != 16 || f.Channels() != 2 || f.BigEndian() {
		t.Errorf("Format() = %v", f)
	}
	if d, _ := ff.Property(format.PropDuration); d != int64(1_000_000) {
		t.Errorf("duration = %v, want 1s", d)
	}
}

func TestReader_EightBitIsUnsigned(t *testing.T) {
	t.Parallel()

	data := createWAVFile(formatPCM, 8000, 1, 8, []byte{128, 192, 64, 0})

	out := Reader{}.Decode(bytes.NewReader(data))
	if out.Kind() != spi.Success {
		t.Fatalf("Decode() kind = %v (%s)", out.Kind(), out.Reason())
	}
	stream := out.Value()
	if stream.Format().Encoding() != format.PCMUnsigned {
		t.Errorf("encoding = %v, want PCM_UNSIGNED", stream.Format().Encoding())
	}

	samples, err := audiotest.Collect(stream)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	expected := []float32{0, 0.5, -0.5, -1}
	if len(samples) != len(expected) {
		t.Fatalf("got %d samples, want %d", len(samples), len(expected))
	}
	for i := range expected {
		if samples[i] != expected[i] {
			t.Errorf("sample %d = %v, want %v", i, samples[i], expected[i])
		}
	}
}

func TestReader_SkipsUnknownChunks(t *testing.T) {
	t.Parallel()

	junk := append([]byte("JUNK\x04\x00\x00\x00"), 1, 2, 3, 4)
	data := createWAVFile(formatPCM, 8000, 1, 16, int16Data(100, 200), junk)
	// Trailing chunk after data must not leak into the samples.
	data = append(data, []byte("LIST\x04\x00\x00\x00INFO")...)

	out := Reader{}.Decode(bytes.NewReader(data))
	if out.Kind() != spi.Success {
		t.Fatalf("Decode() kind = %v (%s)", out.Kind(), out.Reason())
	}

	samples, err := audiotest.Collect(out.Value())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("got %d samples, want 2", len(samples))
	}
	if samples[0] != 100.0/32768 || samples[1] != 200.0/32768 {
		t.Errorf("samples = %v", samples)
	}
}

func TestReader_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"not riff", []byte("NOT A WAV FILE DATA")},
		{"bad wave marker", []byte("RIFF\x24\x00\x00\x00NOPE")},
		{"truncated header", []byte("RIFF\x00")},
		{"float", createWAVFile(3, 8000, 1, 32, make([]byte, 8))},
		{"12 bit", createWAVFile(formatPCM, 8000, 1, 12, make([]byte, 8))},
		{"au file", []byte(".snd\x00\x00\x00\x18\xff\xff\xff\xff\x00\x00\x00\x03")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if out := (Reader{}).Describe(bytes.NewReader(tt.data)); out.Kind() != spi.Unsupported {
				t.Errorf("Describe() kind = %v, want unsupported", out.Kind())
			}
			if out := (Reader{}).Decode(bytes.NewReader(tt.data)); out.Kind() != spi.Unsupported {
				t.Errorf("Decode() kind = %v, want unsupported", out.Kind())
			}
		})
	}
}

func TestReader_IOFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk error")
	rs := rewind.New(io.MultiReader(bytes.NewReader([]byte("RIFF")), iotest.ErrReader(boom)))

	out := Reader{}.Describe(rs)
	if out.Kind() != spi.Failure {
		t.Fatalf("Describe() kind = %v, want failure", out.Kind())
	}
	if !errors.Is(out.Err(), boom) {
		t.Errorf("Err() = %v, want %v", out.Err(), boom)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format format.Format
	}{
		{"unsigned 8 bit", format.NewPCM(8000, 8, 1, false, false, nil)},
		{"16 bit stereo", format.NewPCM(44100, 16, 2, true, false, nil)},
		{"24 bit", format.NewPCM(48000, 24, 1, true, false, nil)},
		{"32 bit", format.NewPCM(16000, 32, 2, true, false, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rate := int(tt.format.SampleRate())
			channels := tt.format.Channels()
			src := audiotest.NewRampSource(rate, channels, 700).WithFormat(tt.format)

			var buf bytes.Buffer
			out := Writer{}.Write(src, format.WAVE, &buf)
			if out.Kind() != spi.Success {
				t.Fatalf("Write() kind = %v (%s, %v)", out.Kind(), out.Reason(), out.Err())
			}
			if out.Value() != int64(buf.Len()) {
				t.Errorf("Write() = %d, buffer holds %d", out.Value(), buf.Len())
			}

			ff := Reader{}.Describe(bytes.NewReader(buf.Bytes()))
			if ff.Kind() != spi.Success {
				t.Fatalf("Describe() kind = %v (%s)", ff.Kind(), ff.Reason())
			}
			if !ff.Value().Format().Matches(tt.format) {
				t.Errorf("Format() = %v, want %v", ff.Value().Format(), tt.format)
			}
			if ff.Value().FrameLengthLong() != 700 {
				t.Errorf("FrameLengthLong() = %d, want 700", ff.Value().FrameLengthLong())
			}

			dec := Reader{}.Decode(bytes.NewReader(buf.Bytes()))
			if dec.Kind() != spi.Success {
				t.Fatalf("Decode() kind = %v (%s)", dec.Kind(), dec.Reason())
			}

			samples, err := audiotest.Collect(dec.Value())
			if err != nil {
				t.Fatalf("Collect() error = %v", err)
			}
			expected, _ := audiotest.Collect(audiotest.NewRampSource(rate, channels, 700))
			if len(samples) != len(expected) {
				t.Fatalf("decoded %d samples, want %d", len(samples), len(expected))
			}
			for i := range expected {
				if math.Abs(float64(samples[i]-expected[i])) > 1.0/64 {
					t.Fatalf("sample %d = %v, want %v", i, samples[i], expected[i])
				}
			}
		})
	}
}

func TestWriter_EmptyStream(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 0)

	var buf bytes.Buffer
	out := Writer{}.Write(src, format.WAVE, &buf)
	if out.Kind() != spi.Success {
		t.Fatalf("Write() kind = %v (%v)", out.Kind(), out.Err())
	}
	if buf.Len() != 44 {
		t.Errorf("WAV file size = %d, want 44 (header only)", buf.Len())
	}

	ff := Reader{}.Describe(bytes.NewReader(buf.Bytes()))
	if ff.Kind() != spi.Success || ff.Value().FrameLengthLong() != 0 {
		t.Errorf("Describe() = %v, %v", ff.Kind(), ff.Value())
	}
}

func TestWriter_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		typ    format.Type
		format format.Format
	}{
		{"aiff type", format.AIFF, format.NewPCM(8000, 16, 1, true, false, nil)},
		{"float", format.WAVE, format.New(format.PCMFloat, 8000, 32, 1, 4, 8000, false, nil)},
		{"signed 8 bit", format.WAVE, format.NewPCM(8000, 8, 1, true, false, nil)},
		{"mu-law", format.WAVE, format.New(format.ULaw, 8000, 8, 1, 1, 8000, false, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewSilentSource(8000, 1, 10).WithFormat(tt.format)

			var buf bytes.Buffer
			if out := (Writer{}).Write(src, tt.typ, &buf); out.Kind() != spi.Unsupported {
				t.Errorf("Write() kind = %v, want unsupported", out.Kind())
			}
			if buf.Len() != 0 {
				t.Errorf("rejected write emitted %d bytes", buf.Len())
			}
		})
	}
}

func TestWriter_SourceFailure(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(8000, 1, 10000, 440).FailAfter(100)

	var buf bytes.Buffer
	out := Writer{}.Write(src, format.WAVE, &buf)
	if out.Kind() != spi.Failure {
		t.Fatalf("Write() kind = %v, want failure", out.Kind())
	}
	if !errors.Is(out.Err(), audiotest.ErrInjected) {
		t.Errorf("Err() = %v, want ErrInjected", out.Err())
	}
	if buf.Len() != 0 {
		t.Errorf("failed write emitted %d bytes", buf.Len())
	}
}

func TestWriter_TypesFor(t *testing.T) {
	t.Parallel()

	pcm16 := audiotest.NewSilentSource(8000, 1, 1)
	if got := (Writer{}).TypesFor(pcm16); len(got) != 1 || got[0] != format.WAVE {
		t.Errorf("TypesFor(pcm16) = %v, want [WAVE]", got)
	}

	float := audiotest.NewSilentSource(8000, 1, 1).WithFormat(format.New(format.PCMFloat, 8000, 32, 1, 4, 8000, false, nil))
	if got := (Writer{}).TypesFor(float); len(got) != 0 {
		t.Errorf("TypesFor(float) = %v, want none", got)
	}
}

func TestWriteWAV16(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, -100, 32767, -32768}
	buf := new(bytes.Buffer)

	if err := WriteWAV16(buf, 8000, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()
	if len(data) != 44+len(samples)*2 {
		t.Fatalf("WAV file size = %d, want %d", len(data), 44+len(samples)*2)
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Errorf("markers = %q/%q", data[0:4], data[8:12])
	}
	if got := binary.LittleEndian.Uint32(data[4:8]); got != uint32(len(data)-8) {
		t.Errorf("RIFF size = %d, want %d", got, len(data)-8)
	}
	if got := binary.LittleEndian.Uint32(data[40:44]); got != uint32(len(samples)*2) {
		t.Errorf("data size = %d, want %d", got, len(samples)*2)
	}

	for i, s := range samples {
		got := int16(binary.LittleEndian.Uint16(data[44+i*2:]))
		if got != s {
			t.Errorf("sample %d = %d, want %d", i, got, s)
		}
	}
}

func TestWriteWAV16_WriteError(t *testing.T) {
	t.Parallel()

	boom := errors.New("pipe closed")
	if err := WriteWAV16(errWriter{boom}, 8000, []int16{1, 2}); !errors.Is(err, boom) {
		t.Errorf("WriteWAV16() error = %v, want %v", err, boom)
	}
}

type errWriter struct{ err error }

func (w errWriter) Write([]byte) (int, error) { return 0, w.err }

func BenchmarkWriteWAV16(b *testing.B) {
	samples := make([]int16, 44100)
	for i := range samples {
		samples[i] = int16((i % 1000) - 500)
	}

	b.ReportAllocs()
	for b.Loop() {
		if err := WriteWAV16(io.Discard, 44100, samples); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReader_Decode(b *testing.B) {
	var buf bytes.Buffer
	WriteWAV16(&buf, 44100, make([]int16, 44100))
	data := buf.Bytes()

	b.ReportAllocs()
	for b.Loop() {
		stream := Reader{}.Decode(bytes.NewReader(data)).Value()
		if _, err := audiotest.Collect(stream); err != nil {
			b.Fatal(err)
		}
	}
}
