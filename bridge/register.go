// SPDX-License-Identifier: EPL-2.0

package bridge

import (
	"github.com/ik5/audsys/formats/aiff"
	"github.com/ik5/audsys/formats/au"
	"github.com/ik5/audsys/formats/mp3"
	"github.com/ik5/audsys/formats/snd"
	"github.com/ik5/audsys/formats/vorbis"
	"github.com/ik5/audsys/formats/wav"
	"github.com/ik5/audsys/spi"
)

func init() {
	RegisterProviders(spi.Default(), nil)
}

// Register installs every format package and the bridge providers into r.
// The format packages already register themselves into spi.Default(), so
// this is meant for private registries.
func Register(r *spi.Registry, obs spi.Observer) {
	wav.Register(r)
	aiff.Register(r)
	au.Register(r)
	snd.Register(r)
	mp3.Register(r)
	vorbis.Register(r)

	RegisterProviders(r, obs)
}

// RegisterProviders installs only the facade-domain bridge providers into r.
func RegisterProviders(r *spi.Registry, obs spi.Observer) {
	r.Register(spi.DomainFacade, NewEncodingProvider(r))
	r.Register(spi.DomainFacade, NewCompressionWriter(r, obs))
	r.Register(spi.DomainFacade, NewResourceReader(r, obs))
}
