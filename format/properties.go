// SPDX-License-Identifier: EPL-2.0

package format

// Properties is an open key/value bag attached to formats and handed to
// writers. Keys a consumer does not know are ignored.
type Properties map[string]any

// Well known property keys.
const (
	// PropQuality is a float32 in [0,1] asking writers for a quality level.
	PropQuality = "quality"
	// PropDuration is the play time in microseconds (int64).
	PropDuration = "duration"
	// PropBitrate is the average bit rate in bits per second (int).
	PropBitrate = "bitrate"
	// PropVBR tells whether the file uses a variable bit rate (bool).
	PropVBR = "vbr"
	// PropTitle, PropAuthor and PropComment carry descriptive tags (string).
	PropTitle   = "title"
	PropAuthor  = "author"
	PropComment = "comment"
)

// Clone returns an independent shallow copy of p. The result is never nil.
func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Float32 returns the value stored under key as float32 when it holds any
// numeric type.
func (p Properties) Float32(key string) (float32, bool) {
	switch v := p[key].(type) {
	case float32:
		return v, true
	case float64:
		return float32(v), true
	case int:
		return float32(v), true
	case int64:
		return float32(v), true
	default:
		return 0, false
	}
}
