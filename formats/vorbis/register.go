// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"github.com/ik5/audsys/format"
	"github.com/ik5/audsys/spi"
)

func init() {
	Register(spi.Default())
}

// Encodings declares what the Vorbis reader handles. There is no Vorbis
// writer.
func Encodings() *spi.EncodingTable {
	return &spi.EncodingTable{
		ID:            "vorbis.Encodings",
		ReadEncodings: []format.Encoding{format.Vorbis},
		ReadTypes:     []format.Type{format.OGG},
	}
}

// Register installs the Vorbis reader and its encoding table into r.
func Register(r *spi.Registry) {
	r.Register(spi.DomainCodec, Reader{})
	r.Register(spi.DomainCodec, Encodings())
}
