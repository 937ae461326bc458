package s2

import (
	"bytes"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCompressedDecodeRoundTrip(t *testing.T) {
	loop := RegularLoop(PointFromLatLng(LatLngFromDegrees(20, -40)), s1.Angle(5)*s1.Degree, 50)
	loop.SetDepth(1)

	var buf bytes.Buffer
	require.NoError(t, loop.EncodeCompressed(&buf))

	decoded, err := DecodeCompressedLoop(&buf)
	require.NoError(t, err)
	require.Equal(t, loop.NumVertices(), decoded.NumVertices())
	assert.Equal(t, 1, decoded.Depth())

	// Quantization loses precision, so compare approximately rather than
	// with exact equality.
	for i := 0; i < loop.NumVertices(); i++ {
		assert.True(t, loop.Vertex(i).ApproxEqualWithin(decoded.Vertex(i), 1e-6))
	}
}

func TestEncodeCompressedRejectsEmptyLoop(t *testing.T) {
	empty := NewLoopFromPoints(nil)
	var buf bytes.Buffer
	err := empty.EncodeCompressed(&buf)
	require.Error(t, err)
}

func TestDecodeCompressedRejectsZeroVertexCount(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(compressedVersion)
	buf.Write([]byte{0, 0, 0, 0}) // n = 0

	_, err := DecodeCompressedLoop(&buf)
	require.Error(t, err)
}

func TestPackUnpackComponentsRoundTrip(t *testing.T) {
	components := []uint32{1, 2, 3, 4, 5, 6, 7}
	packed := packComponents(components)
	unpacked, err := unpackComponents(packed, len(components))
	require.NoError(t, err)
	assert.Equal(t, components, unpacked)
}

func TestQuantizeDequantizeRoundTripIsCloseToIdentity(t *testing.T) {
	for _, v := range []float64{-1, -0.5, 0, 0.25, 0.999999} {
		q := quantizeComponent(v)
		got := dequantizeComponent(q)
		assert.InDelta(t, v, got, 1e-9)
	}
}
