package bytesutil_test

import (
	"testing"

	"github.com/prysmaticlabs/remote-signer/encoding/bytesutil"
	"github.com/prysmaticlabs/remote-signer/testing/assert"
)

func TestToBytes(t *testing.T) {
	tests := []struct {
		a uint64
		b []byte
	}{
		{0, []byte{0}},
		{255, []byte{255}},
		{256, []byte{0, 1}},
		{65535, []byte{255, 255, 0}},
		{16777217, []byte{1, 0, 0, 1}},
		{4294967297, []byte{1, 0, 0, 0, 1, 0, 0, 0}},
		{9223372036854775807, []byte{255, 255, 255, 255, 255, 255, 255, 127}},
	}
	for _, tt := range tests {
		b := bytesutil.ToBytes(tt.a, len(tt.b))
		assert.DeepEqual(t, tt.b, b)
	}
}

func TestBytes4(t *testing.T) {
	assert.DeepEqual(t, []byte{1, 0, 0, 1}, bytesutil.Bytes4(16777217))
	assert.DeepEqual(t, []byte{0, 0, 0, 0}, bytesutil.Bytes4(0))
}

func TestBytes8_FromBytes8(t *testing.T) {
	for _, x := range []uint64{0, 1, 256, 0xc137, 1<<64 - 1} {
		assert.Equal(t, x, bytesutil.FromBytes8(bytesutil.Bytes8(x)))
	}
	assert.Equal(t, uint64(0), bytesutil.FromBytes8([]byte{1, 2}))
}

func TestBytes32(t *testing.T) {
	b := bytesutil.Bytes32(0xc137)
	assert.Equal(t, 32, len(b))
	assert.Equal(t, byte(0x37), b[0])
	assert.Equal(t, byte(0xc1), b[1])
}

func TestToBytes32_Truncates(t *testing.T) {
	in := make([]byte, 40)
	in[31] = 9
	in[39] = 1
	out := bytesutil.ToBytes32(in)
	assert.Equal(t, byte(9), out[31])
}

func TestPadTo(t *testing.T) {
	assert.DeepEqual(t, []byte{'a', 0, 0, 0}, bytesutil.PadTo([]byte{'a'}, 4))
	long := []byte{1, 2, 3, 4, 5}
	assert.DeepEqual(t, long, bytesutil.PadTo(long, 4))
}

func TestSafeCopyBytes(t *testing.T) {
	assert.IsNil(t, bytesutil.SafeCopyBytes(nil))
	orig := []byte{1, 2}
	cp := bytesutil.SafeCopyBytes(orig)
	cp[0] = 9
	assert.Equal(t, byte(1), orig[0])
}

func TestZeroRoot(t *testing.T) {
	assert.Equal(t, true, bytesutil.ZeroRoot(make([]byte, 32)))
	assert.Equal(t, false, bytesutil.ZeroRoot(make([]byte, 31)))
	assert.Equal(t, false, bytesutil.ZeroRoot(bytesutil.Bytes32(1)))
}
