// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"errors"
	"math"
)

// ErrUnsupportedBitDepth is returned for bit depths other than 8, 16, 24 and 32.
var ErrUnsupportedBitDepth = errors.New("unsupported bit depth")

// ValidBitDepth reports whether bits is a whole-byte depth this package packs.
func ValidBitDepth(bits int) bool {
	switch bits {
	case 8, 16, 24, 32:
		return true
	default:
		return false
	}
}

// Scale returns the magnitude of full scale for a signed integer of bits bits.
func Scale(bits int) float64 {
	return float64(int64(1) << (bits - 1))
}

// FloatToInt clamps x to [-1,1] and scales it to a signed integer of the
// given bit depth.
func FloatToInt(x float32, bits int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	scale := Scale(bits)
	v := math.Round(float64(x) * scale)
	if v > scale-1 {
		v = scale - 1
	}
	return int(v)
}

// IntToFloat maps a signed integer of the given bit depth to [-1,1).
func IntToFloat(v int, bits int) float32 {
	return float32(float64(v) / Scale(bits))
}

// Float32ToInt16 converts a float sample to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 for the positive side keeps 1.0 from wrapping around.
	return int16(x * 32767.0)
}

// Put stores the signed sample v into dst using bits/8 bytes. 8-bit samples
// are stored unsigned when signed is false.
func Put(dst []byte, v int, bits int, signed, bigEndian bool) {
	switch bits {
	case 8:
		if signed {
			dst[0] = byte(int8(v))
		} else {
			dst[0] = byte(v + 128)
		}
	case 16:
		if bigEndian {
			binary.BigEndian.PutUint16(dst, uint16(int16(v)))
		} else {
			binary.LittleEndian.PutUint16(dst, uint16(int16(v)))
		}
	case 24:
		u := uint32(int32(v))
		if bigEndian {
			dst[0], dst[1], dst[2] = byte(u>>16), byte(u>>8), byte(u)
		} else {
			dst[0], dst[1], dst[2] = byte(u), byte(u>>8), byte(u>>16)
		}
	case 32:
		if bigEndian {
			binary.BigEndian.PutUint32(dst, uint32(int32(v)))
		} else {
			binary.LittleEndian.PutUint32(dst, uint32(int32(v)))
		}
	}
}

// Get reads a sample of bits/8 bytes from src and returns it as a signed
// integer. 8-bit samples are read as unsigned when signed is false.
func Get(src []byte, bits int, signed, bigEndian bool) int {
	switch bits {
	case 8:
		if signed {
			return int(int8(src[0]))
		}
		return int(src[0]) - 128
	case 16:
		if bigEndian {
			return int(int16(binary.BigEndian.Uint16(src)))
		}
		return int(int16(binary.LittleEndian.Uint16(src)))
	case 24:
		var u uint32
		if bigEndian {
			u = uint32(src[0])<<16 | uint32(src[1])<<8 | uint32(src[2])
		} else {
			u = uint32(src[2])<<16 | uint32(src[1])<<8 | uint32(src[0])
		}
		// sign extend from bit 23
		return int(int32(u<<8) >> 8)
	case 32:
		if bigEndian {
			return int(int32(binary.BigEndian.Uint32(src)))
		}
		return int(int32(binary.LittleEndian.Uint32(src)))
	}
	return 0
}

// PutFloat32 stores an IEEE-754 float sample.
func PutFloat32(dst []byte, x float32, bigEndian bool) {
	bits := math.Float32bits(x)
	if bigEndian {
		binary.BigEndian.PutUint32(dst, bits)
	} else {
		binary.LittleEndian.PutUint32(dst, bits)
	}
}

// GetFloat32 reads an IEEE-754 float sample.
func GetFloat32(src []byte, bigEndian bool) float32 {
	if bigEndian {
		return math.Float32frombits(binary.BigEndian.Uint32(src))
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(src))
}
