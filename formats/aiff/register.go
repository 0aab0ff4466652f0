// SPDX-License-Identifier: EPL-2.0

package aiff

import "github.com/ik5/audsys/spi"

func init() {
	Register(spi.Default())
}

// Register installs the AIFF reader and writer into r.
func Register(r *spi.Registry) {
	r.Register(spi.DomainCodec, Reader{})
	r.Register(spi.DomainCodec, Writer{})
}
