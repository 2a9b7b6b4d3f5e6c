package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignedConversionsAtEquilibrium(t *testing.T) {
	assert.Equal(t, int8(0), ToInt8(0))
	assert.Equal(t, int16(0), ToInt16(0))
	assert.Equal(t, int32(0), ToInt32(0))
	assert.Equal(t, float32(0), ToFloat32(0))
}

func TestUnsignedConversionsAtEquilibriumAreMidScale(t *testing.T) {
	assert.Equal(t, uint8(128), ToUint8(0))
	assert.Equal(t, uint16(32768), ToUint16(0))
	assert.Equal(t, uint32(2147483648), ToUint32(0))
}

func TestSignedConversionsSaturateAtFullScale(t *testing.T) {
	assert.Equal(t, int8(127), ToInt8(1))
	assert.Equal(t, int8(-128), ToInt8(-1))
	assert.Equal(t, int16(32767), ToInt16(1))
	assert.Equal(t, int16(-32768), ToInt16(-1))
	assert.Equal(t, int32(2147483647), ToInt32(1))
	assert.Equal(t, int32(-2147483648), ToInt32(-1))
}

func TestUnsignedConversionsSaturateAtFullScale(t *testing.T) {
	assert.Equal(t, uint8(255), ToUint8(1))
	assert.Equal(t, uint8(0), ToUint8(-1))
	assert.Equal(t, uint16(65535), ToUint16(1))
	assert.Equal(t, uint16(0), ToUint16(-1))
	assert.Equal(t, uint32(4294967295), ToUint32(1))
	assert.Equal(t, uint32(0), ToUint32(-1))
}

func TestConversionsClampBeyondUnitRange(t *testing.T) {
	assert.Equal(t, int8(127), ToInt8(5))
	assert.Equal(t, int8(-128), ToInt8(-5))
	assert.Equal(t, float32(1), ToFloat32(5))
	assert.Equal(t, float32(-1), ToFloat32(-5))
}

func TestBytesPerSample(t *testing.T) {
	cases := map[Format]int{
		FormatI8: 1, FormatU8: 1,
		FormatI16: 2, FormatU16: 2,
		FormatI32: 4, FormatU32: 4, FormatF32: 4,
		FormatF64: 8,
	}
	for f, want := range cases {
		assert.Equal(t, want, f.BytesPerSample(), "format %s", f)
	}
}

func TestPortAudioNative(t *testing.T) {
	assert.True(t, FormatF32.PortAudioNative())
	assert.True(t, FormatI16.PortAudioNative())
	assert.False(t, FormatU16.PortAudioNative())
	assert.False(t, FormatU32.PortAudioNative())
	assert.False(t, FormatF64.PortAudioNative())
}
