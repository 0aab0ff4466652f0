// SPDX-License-Identifier: EPL-2.0

package bridge

import (
	"github.com/ik5/audsys/audio"
	"github.com/ik5/audsys/format"
	"github.com/ik5/audsys/spi"
)

var (
	pcmEncodings = []format.Encoding{format.PCMSigned, format.PCMUnsigned, format.PCMFloat}
	readerTypes  = []format.Type{format.WAVE, format.AU, format.SND, format.AIFF, format.AIFC}
	writerTypes  = []format.Type{format.WAVE, format.AU, format.SND, format.AIFF}
)

// EncodingProvider declares the capabilities of the PCM codec family. Its
// stream-dependent writer queries are answered by the codec-domain writers
// and the bridge CompressionWriter of the registry it was built for.
type EncodingProvider struct {
	*spi.EncodingTable
}

// NewEncodingProvider returns an EncodingProvider consulting r.
func NewEncodingProvider(r *spi.Registry) *EncodingProvider {
	return &EncodingProvider{
		EncodingTable: &spi.EncodingTable{
			ID:             "bridge.EncodingProvider",
			ReadEncodings:  pcmEncodings,
			WriteEncodings: pcmEncodings,
			ReadTypes:      readerTypes,
			WriteTypes:     writerTypes,
			StreamTypes: func(s audio.Stream) []format.Type {
				return streamTypes(r, s)
			},
		},
	}
}

func streamTypes(r *spi.Registry, s audio.Stream) []format.Type {
	writers := codecWriters(r)
	compressors := spi.Filter(spi.Discover[spi.CompressionWriter](r), spi.OfType[*CompressionWriter]())

	types := spi.Aggregate(writers, func(w spi.FileWriter) []format.Type { return w.TypesFor(s) })
	for _, t := range spi.Aggregate(compressors, func(w spi.CompressionWriter) []format.Type { return w.TypesFor(s) }) {
		if !format.ContainsType(types, t) {
			types = append(types, t)
		}
	}
	return types
}

func codecWriters(r *spi.Registry) []spi.Candidate[spi.FileWriter] {
	return spi.Filter(spi.Discover[spi.FileWriter](r), spi.InDomain(spi.DomainCodec))
}

func codecReaders(r *spi.Registry) []spi.Candidate[spi.FileReader] {
	return spi.Filter(spi.Discover[spi.FileReader](r), spi.InDomain(spi.DomainCodec))
}
