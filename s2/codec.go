package s2

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/goedderz/s2geometry/x"
)

// losslessVersion is the wire format version for the fixed-layout encoder:
// a version byte, a vertex count, and three raw float64 components per
// vertex. It never loses precision, at roughly 24 bytes/vertex.
const losslessVersion = 1

// Encode writes l's lossless on-wire representation to w: a version byte,
// a uint32 vertex count, then each vertex as three big-endian float64s.
// Unlike the compressed format, N == 0 is accepted here and round-trips
// to a loop with zero vertices - useful for encoding partially-built
// polygon state - even though such a loop fails IsValid with
// ErrNotEnoughVertices.
func (l *Loop) Encode(w io.Writer) error {
	if err := binary.Write(w, binary.BigEndian, uint8(losslessVersion)); err != nil {
		return x.Wrap(err, "encode loop version")
	}
	if err := binary.Write(w, binary.BigEndian, uint32(len(l.vertices))); err != nil {
		return x.Wrap(err, "encode loop vertex count")
	}
	for _, v := range l.vertices {
		if err := writePoint(w, v); err != nil {
			return x.Wrap(err, "encode vertex")
		}
	}
	if err := binary.Write(w, binary.BigEndian, int32(l.depth)); err != nil {
		return x.Wrap(err, "encode loop depth")
	}
	return nil
}

// DecodeLoop reads a loop previously written by Encode. It rebuilds
// origin/bound state from the decoded vertices rather than trusting any
// cached values on the wire, so a corrupted bound cannot silently produce
// wrong containment answers.
func DecodeLoop(r io.Reader) (*Loop, error) {
	var version uint8
	if err := binary.Read(r, binary.BigEndian, &version); err != nil {
		return nil, newValidationError(ErrDecodeFailure, -1, "read loop version: %v", err)
	}
	if version != losslessVersion {
		return nil, newValidationError(ErrDecodeFailure, -1, "unsupported loop encoding version %d", version)
	}
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, newValidationError(ErrDecodeFailure, -1, "read loop vertex count: %v", err)
	}
	if int(n) > Config.DecodeMaxNumVertices {
		return nil, newValidationError(ErrDecodeFailure, -1, "loop vertex count %d exceeds configured maximum %d", n, Config.DecodeMaxNumVertices)
	}
	vertices := make([]Point, n)
	for i := range vertices {
		p, err := readPoint(r)
		if err != nil {
			return nil, newValidationError(ErrDecodeFailure, i, "read vertex %d: %v", i, err)
		}
		vertices[i] = p
	}
	var depth int32
	if err := binary.Read(r, binary.BigEndian, &depth); err != nil {
		return nil, newValidationError(ErrDecodeFailure, -1, "read loop depth: %v", err)
	}
	if len(vertices) == 0 {
		return &Loop{vertices: vertices, bound: EmptyRect(), depth: int(depth)}, nil
	}
	loop := NewLoopFromPoints(vertices)
	loop.SetDepth(int(depth))
	return loop, nil
}

func writePoint(w io.Writer, p Point) error {
	var buf [24]byte
	binary.BigEndian.PutUint64(buf[0:8], math.Float64bits(p.X))
	binary.BigEndian.PutUint64(buf[8:16], math.Float64bits(p.Y))
	binary.BigEndian.PutUint64(buf[16:24], math.Float64bits(p.Z))
	_, err := w.Write(buf[:])
	return err
}

func readPoint(r io.Reader) (Point, error) {
	var buf [24]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Point{}, err
	}
	px := math.Float64frombits(binary.BigEndian.Uint64(buf[0:8]))
	py := math.Float64frombits(binary.BigEndian.Uint64(buf[8:16]))
	pz := math.Float64frombits(binary.BigEndian.Uint64(buf[16:24]))
	return PointFromCoords(px, py, pz), nil
}
