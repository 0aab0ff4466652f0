// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"github.com/ik5/audsys/format"
	"github.com/ik5/audsys/spi"
)

func init() {
	Register(spi.Default())
}

// Encodings declares what the MP3 reader handles. There is no MP3 writer.
func Encodings() *spi.EncodingTable {
	return &spi.EncodingTable{
		ID:            "mp3.Encodings",
		ReadEncodings: []format.Encoding{format.MPEG1L3},
		ReadTypes:     []format.Type{format.MP3},
	}
}

// Register installs the MP3 reader and its encoding table into r.
func Register(r *spi.Registry) {
	r.Register(spi.DomainCodec, Reader{})
	r.Register(spi.DomainCodec, Encodings())
}
