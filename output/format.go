package output

import "math"

// Format enumerates the closed set of PCM sample representations spindle
// understands. Every format stores equilibrium (silence) as the value
// produced by converting 0.0: the signed integer and float formats store it
// as the numeric zero, the unsigned formats as the mid-scale value.
type Format int

const (
	FormatI8 Format = iota
	FormatI16
	FormatI32
	FormatU8
	FormatU16
	FormatU32
	FormatF32
	FormatF64
)

func (f Format) String() string {
	switch f {
	case FormatI8:
		return "i8"
	case FormatI16:
		return "i16"
	case FormatI32:
		return "i32"
	case FormatU8:
		return "u8"
	case FormatU16:
		return "u16"
	case FormatU32:
		return "u32"
	case FormatF32:
		return "f32"
	case FormatF64:
		return "f64"
	default:
		return "unknown"
	}
}

// BytesPerSample reports the storage width of one sample in this format.
func (f Format) BytesPerSample() int {
	switch f {
	case FormatI8, FormatU8:
		return 1
	case FormatI16, FormatU16:
		return 2
	case FormatI32, FormatU32, FormatF32:
		return 4
	case FormatF64:
		return 8
	default:
		return 0
	}
}

// PortAudioNative reports whether this format can be streamed directly by
// the portaudio backend. u16, u32, and f64 have no native portaudio stream
// type; Output never opens a device in these formats, though the
// conversion functions below remain usable for other producers/consumers
// of the same closed set (e.g. a future file-based sink).
func (f Format) PortAudioNative() bool {
	switch f {
	case FormatI8, FormatI16, FormatI32, FormatU8, FormatF32:
		return true
	default:
		return false
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// scaleSigned maps a unit sample in [-1.0, 1.0] onto an asymmetric signed
// integer's full range, using the positive-side scale for v >= 0 and the
// (one larger) negative-side scale for v < 0 — the standard PCM convention
// that keeps 0.0 exactly representable.
func scaleSigned(v, maxPos, maxNeg float64) float64 {
	v = clamp(v, -1, 1)
	if v >= 0 {
		return v * maxPos
	}
	return v * maxNeg
}

// ToInt8 converts a unit sample to 8-bit signed PCM, saturating at [-1, 1].
func ToInt8(v float64) int8 {
	return int8(math.Round(scaleSigned(v, 127, 128)))
}

// ToInt16 converts a unit sample to 16-bit signed PCM, saturating at [-1, 1].
func ToInt16(v float64) int16 {
	return int16(math.Round(scaleSigned(v, 32767, 32768)))
}

// ToInt32 converts a unit sample to 32-bit signed PCM, saturating at [-1, 1].
func ToInt32(v float64) int32 {
	return int32(math.Round(scaleSigned(v, 2147483647, 2147483648)))
}

// ToUint8 converts a unit sample to 8-bit unsigned PCM (midpoint 128),
// saturating at [-1, 1].
func ToUint8(v float64) uint8 {
	u := int32(math.Round(scaleSigned(v, 127, 128))) + 128
	return uint8(clampInt32(u, 0, 255))
}

// ToUint16 converts a unit sample to 16-bit unsigned PCM (midpoint 32768),
// saturating at [-1, 1].
func ToUint16(v float64) uint16 {
	u := int32(math.Round(scaleSigned(v, 32767, 32768))) + 32768
	return uint16(clampInt32(u, 0, 65535))
}

// ToUint32 converts a unit sample to 32-bit unsigned PCM (midpoint
// 2147483648), saturating at [-1, 1].
func ToUint32(v float64) uint32 {
	u := int64(math.Round(scaleSigned(v, 2147483647, 2147483648))) + 2147483648
	return uint32(clampInt64(u, 0, 4294967295))
}

// ToFloat32 saturates a unit sample to [-1, 1] and narrows it to float32.
func ToFloat32(v float64) float32 {
	return float32(clamp(v, -1, 1))
}

// ToFloat64 saturates a unit sample to [-1, 1].
func ToFloat64(v float64) float64 {
	return clamp(v, -1, 1)
}

func clampInt32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt64(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
