// SPDX-License-Identifier: EPL-2.0

package audsys

import (
	"fmt"

	"github.com/ik5/audsys/audio"
	"github.com/ik5/audsys/format"
	"github.com/ik5/audsys/internal/pcm"
)

// Streams carry float samples whatever they were decoded from, so every PCM
// stream can be relabelled as any of these.
var pcmTargets = []format.Encoding{format.PCMSigned, format.PCMUnsigned, format.PCMFloat}

// TargetEncodings lists the encodings a stream in source can be converted
// to.
func (s *System) TargetEncodings(source format.Format) []format.Encoding {
	if !source.Encoding().IsPCM() {
		return []format.Encoding{}
	}
	return append([]format.Encoding(nil), pcmTargets...)
}

// IsConversionSupported reports whether Convert can turn a stream in source
// into target. NotSpecified or zero fields of target keep the source value. Sample
// rates can change freely; channels can only be kept or mixed down to mono.
func (s *System) IsConversionSupported(target, source format.Format) bool {
	_, err := resolve(target, source)
	return err == nil
}

// Convert returns stream converted to target. Rate changes go through
// audio.Resampler and mixing down through audio.MonoMixer; encoding, sample
// size and byte order are relabelled, since writers pack samples themselves.
func (s *System) Convert(target format.Format, stream audio.Stream) (audio.Stream, error) {
	out, err := s.convert(target, stream)
	s.finish("convert", err)
	return out, err
}

func (s *System) convert(target format.Format, stream audio.Stream) (audio.Stream, error) {
	if stream == nil {
		return nil, ErrNilArgument
	}

	f, err := resolve(target, stream.Format())
	if err != nil {
		return nil, err
	}

	var src audio.Stream = stream
	if int(f.SampleRate()) != src.SampleRate() {
		src = audio.NewResampler(src, int(f.SampleRate()))
	}
	if f.Channels() != src.Channels() {
		src = audio.NewMonoMixer(src)
	}

	s.logger.Debug("converting stream",
		"from", stream.Format().String(), "to", f.String())

	return audio.NewStream(src, f, src.FrameLength()), nil
}

// resolve fills the NotSpecified fields of target from source and checks
// the result can be produced.
func resolve(target, source format.Format) (format.Format, error) {
	unsupported := func(why string) (format.Format, error) {
		return format.Format{}, fmt.Errorf("%w: %s to %s: %s", ErrConversionUnsupported, source, target, why)
	}

	if !source.Encoding().IsPCM() {
		return unsupported("source is not PCM")
	}
	enc := target.Encoding()
	if enc.IsZero() {
		enc = source.Encoding()
	}
	if !enc.IsPCM() {
		return unsupported("target is not PCM")
	}

	rate := target.SampleRate()
	if rate <= 0 {
		rate = source.SampleRate()
	}
	if rate <= 0 || rate != float32(int(rate)) {
		return unsupported("sample rate must be a whole positive number")
	}

	channels := target.Channels()
	if channels <= 0 {
		channels = source.Channels()
	}
	if channels != source.Channels() && channels != 1 {
		return unsupported("channels can only be kept or mixed down to mono")
	}

	bits := target.SampleSizeInBits()
	switch {
	case bits > 0:
	case enc == format.PCMFloat:
		bits = 32
	default:
		bits = source.SampleSizeInBits()
	}
	switch {
	case enc == format.PCMFloat && bits != 32:
		return unsupported("float samples are 32 bit")
	case !pcm.ValidBitDepth(bits):
		return unsupported("unsupported sample size")
	}

	if enc == format.PCMFloat {
		return format.New(enc, rate, bits, channels, 4*channels, rate, target.BigEndian(), nil), nil
	}
	return format.NewPCM(rate, bits, channels, enc == format.PCMSigned, target.BigEndian(), nil), nil
}
