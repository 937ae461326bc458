package s2

import (
	"math"
	"sync/atomic"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/s1"
)

// findVertexBruteForceVertices and findVertexBruteForceCalls are the vertex
// count and call count below which
// FindVertex does a linear scan instead of building a lookup map; mirrors
// the "is it worth indexing yet" trade-off used throughout this package.
const (
	findVertexBruteForceVertices = 10
	findVertexBruteForceCalls    = 20
)

// Loop represents a simple spherical polygon: a single closed chain of
// vertices, implicitly connected (last back to first), whose interior lies
// to the left of each directed edge. A clockwise chain therefore describes
// the complement of the region a naive reading of its vertices would
// suggest - a small clockwise loop encloses everything except that small
// region. Loops may not have duplicate or non-unit-length vertices, and
// non-adjacent edges may not cross; see IsValid.
//
// Two vertex configurations are sentinel, not geometric: a single vertex
// equal to emptyVertex denotes the empty loop (containing no points), and
// a single vertex equal to fullVertex denotes the full loop (containing
// every point). Every other Loop has at least 3 vertices.
//
// Loop builds a ShapeIndex over its own edges lazily: queries below
// maxUnindexedContainsCalls answer directly from the vertex chain, and the
// index is built only once a caller has shown it intends to query the
// loop repeatedly. Because many goroutines may share a read-only Loop
// concurrently, index construction uses an atomic compare-and-swap guard
// so that only one goroutine actually builds it while the rest either see
// it already built or fall back to an unindexed answer for that call.
type Loop struct {
	vertices     []Point
	bound        Rect
	subregion    Rect
	originInside bool
	depth        int

	index           *ShapeIndex
	indexBuilt      int32
	buildingIndex   int32
	unindexedCalls  int32

	numFindVertexCalls int
	vertexToIndex      map[uint64][]int
}

// NewLoopFromPoints constructs a loop from an ordered vertex chain. The
// caller must not modify vertices afterward; Loop takes ownership of the
// slice without copying it; pass a copy if the caller needs to keep
// mutating its own slice independently.
func NewLoopFromPoints(vertices []Point) *Loop {
	if len(vertices) == 0 {
		return &Loop{vertices: vertices, bound: EmptyRect(), subregion: EmptyRect()}
	}
	l := &Loop{vertices: vertices, bound: FullRect()}
	l.resetMutableFields()
	l.initOrigin()
	l.initBound()
	if !Config.LazyIndexing {
		l.ensureIndex()
	}
	if Config.DebugValidation {
		if err := l.FindValidationError(); err != nil {
			panic(err)
		}
	}
	return l
}

// NewLoopFromCell constructs a loop from the four vertices of cell, in
// CCW order, for use as a cheap indexable region standing in for the cell
// itself during crossing tests.
func NewLoopFromCell(cell Cell) *Loop {
	vertices := make([]Point, 4)
	for i := range vertices {
		vertices[i] = cell.Vertex(i)
	}
	return NewLoopFromPoints(vertices)
}

// EmptyLoop returns the canonical loop containing no points.
func EmptyLoop() *Loop {
	return NewLoopFromPoints([]Point{emptyVertex()})
}

// FullLoop returns the canonical loop containing every point.
func FullLoop() *Loop {
	return NewLoopFromPoints([]Point{fullVertex()})
}

// IsEmpty reports whether l is the sentinel empty loop.
func (l *Loop) IsEmpty() bool {
	return l.isEmptyOrFull() && !l.originInside
}

// IsFull reports whether l is the sentinel full loop.
func (l *Loop) IsFull() bool {
	return l.isEmptyOrFull() && l.originInside
}

func (l *Loop) isEmptyOrFull() bool {
	return len(l.vertices) == 1
}

// NumVertices returns the number of vertices in the loop's chain.
func (l *Loop) NumVertices() int {
	return len(l.vertices)
}

// Vertex returns the i-th vertex, where indices outside [0, NumVertices())
// wrap cyclically; Vertex(NumVertices()) is the same as Vertex(0), which
// lets callers walk "edge i" as the pair (Vertex(i), Vertex(i+1)) without
// special-casing the closing edge.
func (l *Loop) Vertex(i int) Point {
	return l.vertex(i)
}

func (l *Loop) vertex(i int) Point {
	n := len(l.vertices)
	j := i % n
	if j < 0 {
		j += n
	}
	return l.vertices[j]
}

// Depth returns the nesting depth of the loop within its parent polygon,
// if any; 0 for a top-level shell. Set by callers that assemble loops into
// polygons, not computed by Loop itself.
func (l *Loop) Depth() int {
	return l.depth
}

// SetDepth sets the loop's nesting depth.
func (l *Loop) SetDepth(depth int) {
	l.depth = depth
}

// IsHole reports whether the loop is a hole (odd nesting depth), in which
// case it is oriented clockwise relative to its parent shell.
func (l *Loop) IsHole() bool {
	return l.depth&1 != 0
}

// Sign returns -1 if the loop is a hole, +1 otherwise; the multiplier that
// should be applied to Area when summing a polygon's component loops.
func (l *Loop) Sign() int {
	if l.IsHole() {
		return -1
	}
	return 1
}

// Bound returns the loop's bounding latitude-longitude rectangle.
func (l *Loop) Bound() Rect {
	return l.bound
}

// CapBound returns a bounding cap for the loop, derived from its Rect.
func (l *Loop) CapBound() Cap {
	return l.bound.CapBound()
}

// Clone returns a deep copy of the loop, with its own freshly-lazy index.
func (l *Loop) Clone() *Loop {
	vertices := make([]Point, len(l.vertices))
	copy(vertices, l.vertices)
	clone := &Loop{
		vertices:     vertices,
		bound:        l.bound,
		subregion:    l.subregion,
		originInside: l.originInside,
		depth:        l.depth,
	}
	clone.resetMutableFields()
	return clone
}

func (l *Loop) resetMutableFields() {
	l.index = nil
	atomic.StoreInt32(&l.indexBuilt, 0)
	atomic.StoreInt32(&l.buildingIndex, 0)
	atomic.StoreInt32(&l.unindexedCalls, 0)
	l.numFindVertexCalls = 0
	l.vertexToIndex = nil
}

// ensureIndex lazily builds the loop's ShapeIndex, using an atomic
// compare-and-swap so that concurrent callers never build it twice: the
// first caller to win the CAS on buildingIndex does the work and then
// publishes indexBuilt; any caller that loses the race, or arrives after
// the index is already built, just reads the published result. This
// mirrors the lock-free "single builder, many readers" discipline used
// for lazily-materialized postings elsewhere in this module.
func (l *Loop) ensureIndex() {
	if atomic.LoadInt32(&l.indexBuilt) != 0 {
		return
	}
	if !atomic.CompareAndSwapInt32(&l.buildingIndex, 0, 1) {
		return
	}
	l.index = BuildShapeIndex(l.vertices, l.originInside)
	atomic.StoreInt32(&l.indexBuilt, 1)
}

// shouldUseIndex reports whether a containment-style query against this
// loop should consult the spatial index rather than brute-force every
// edge. Loops of at most maxBruteForceVertices vertices always use brute
// force. Larger loops use the index once it is built, and build it once
// repeated queries have crossed the maxUnindexedContainsCalls threshold
// where paying the one-time indexing cost starts to pay for itself.
func (l *Loop) shouldUseIndex() bool {
	if len(l.vertices) <= maxBruteForceVertices {
		return false
	}
	if atomic.LoadInt32(&l.indexBuilt) != 0 {
		return true
	}
	if atomic.AddInt32(&l.unindexedCalls, 1) >= maxUnindexedContainsCalls {
		l.ensureIndex()
		return atomic.LoadInt32(&l.indexBuilt) != 0
	}
	return false
}

// initOrigin determines whether OriginPoint lies inside the loop, by
// guessing it does not and then checking whether that guess is consistent
// with a direct wedge test at vertex 1. See spec component 4.1 for the
// derivation: a loop with consecutive vertices A,B,C contains vertex B iff
// Ortho(B) lies on the left side of wedge ABC, so comparing that to what
// Contains(B) computes under the "origin outside" assumption reveals
// whether the assumption was wrong.
func (l *Loop) initOrigin() {
	l.originInside = false
	if l.isEmptyOrFull() {
		l.originInside = l.IsFullSentinel()
		return
	}
	v1 := l.vertex(1)
	v1Inside := OrderedCCW(Point{v1.Ortho()}, l.vertex(0), l.vertex(2), v1)
	if v1Inside != containsUsingAllEdges(l.vertices, false, v1) {
		l.originInside = true
	}
}

// IsFullSentinel reports whether the loop's single sentinel vertex is the
// full-loop marker rather than the empty-loop marker. Only meaningful when
// isEmptyOrFull is true.
func (l *Loop) IsFullSentinel() bool {
	return len(l.vertices) == 1 && l.vertices[0] == fullVertex()
}

// initBound computes the loop's bounding rectangle, accounting for loops
// that wrap around the sphere or contain one or both poles: a loop's
// vertex bound alone understates its true extent in both of those cases.
func (l *Loop) initBound() {
	if l.isEmptyOrFull() {
		if l.IsFullSentinel() {
			l.bound = FullRect()
		} else {
			l.bound = EmptyRect()
		}
		l.subregion = l.bound
		return
	}

	bounder := NewRectBounder()
	for i := 0; i <= len(l.vertices); i++ {
		bounder.AddPoint(l.vertex(i))
	}
	b := bounder.Bound()

	// Contains() below does its own bounding-box check first, so the
	// bound must hold a permissive placeholder value until the real
	// bound is computed.
	l.bound = FullRect()
	if l.Contains(PointFromCoords(0, 0, 1)) {
		b = Rect{Lat: r1.Interval{Lo: b.Lat.Lo, Hi: math.Pi / 2}, Lng: s1.FullInterval()}
	}
	if b.Lng.IsFull() && l.Contains(PointFromCoords(0, 0, -1)) {
		b.Lat.Lo = -math.Pi / 2
	}
	l.bound = b
	l.subregion = expandForSubregions(b)
}

// subregionMargin pads a loop's bound so that "A.subregionBound contains
// B.bound" is a sound precondition for "A may contain B": floating-point
// error in the bound computation itself could otherwise make a true
// containment relationship look like it fails the bound check.
const subregionMargin = 10 * dblEpsilon

// expandForSubregions returns bound expanded just enough that any rounding
// error in computing it cannot cause a real containment relationship to be
// missed by a caller that only checks the expanded rect.
func expandForSubregions(bound Rect) Rect {
	if bound.IsFull() || bound.IsEmpty() {
		return bound
	}
	margin := LatLng{Lat: s1.Angle(subregionMargin), Lng: s1.Angle(subregionMargin)}
	expanded := bound.Expanded(margin)
	if expanded.Lat.Hi < math.Pi/2 && expanded.Lat.Hi > math.Pi/2-subregionMargin {
		expanded.Lat.Hi = math.Pi / 2
	}
	if expanded.Lat.Lo > -math.Pi/2 && expanded.Lat.Lo < -math.Pi/2+subregionMargin {
		expanded.Lat.Lo = -math.Pi / 2
	}
	return expanded
}

// SubregionBound returns l's bound expanded by a numeric margin, suitable
// as a sound precondition check before an expensive exact containment test
// against another loop's Bound.
func (l *Loop) SubregionBound() Rect {
	return l.subregion
}

// Contains reports whether the loop contains p. Small or infrequently
// queried loops count edge crossings from the fixed OriginPoint to p;
// larger or repeatedly queried loops instead locate p in the loop's
// ShapeIndex and count crossings from that cell's precomputed center
// containment, touching only the edges stored in that one cell.
func (l *Loop) Contains(p Point) bool {
	if l.isEmptyOrFull() {
		return l.IsFullSentinel()
	}
	if !l.bound.Contains(p) {
		return false
	}

	inside := l.originInside
	origin := OriginPoint()

	if !l.shouldUseIndex() {
		crosser := NewEdgeCrosser(origin, p)
		crosser.RestartAt(l.vertex(0))
		for i := 1; i <= len(l.vertices); i++ {
			inside = inside != crosser.EdgeOrVertexCrossing(l.vertex(i))
		}
		return inside
	}

	// Locate p's cell in the index rather than scanning every bucket: if
	// the cell is indexed, its precomputed containsCenter already accounts
	// for every edge in the loop except the handful stored in that one
	// bucket, so crossing from the cell's center to p against just those
	// edges is enough to answer the query. Only a point whose cell has no
	// nearby edges at all - meaning the index can't localize it - falls
	// back to the full origin-to-p crossing count.
	it := l.index.Iterator()
	switch it.LocatePoint(p) {
	case Indexed:
		center := CellFromCellID(it.CellID()).CenterPoint()
		inside = it.ContainsCenter()
		crosser := NewEdgeCrosser(center, p)
		crosser.RestartAt(l.vertex(it.Edges()[0]))
		prev := it.Edges()[0]
		for _, i := range it.Edges() {
			if i != prev {
				crosser.RestartAt(l.vertex(i))
			}
			inside = inside != crosser.EdgeOrVertexCrossing(l.vertex(i+1))
			prev = i + 1
		}
		return inside
	default:
		crosser := NewEdgeCrosser(origin, p)
		crosser.RestartAt(l.vertex(0))
		for i := 1; i <= len(l.vertices); i++ {
			inside = inside != crosser.EdgeOrVertexCrossing(l.vertex(i))
		}
		return inside
	}
}

// ContainsCell reports whether the loop contains the given cell, using the
// loop's bound as a fast rejection test before falling back to a full
// ContainsLoop comparison against the cell's four edges. A cell that only
// partially overlaps the loop - one corner inside, the rest outside - has
// a boundary that crosses the loop's, so ContainsNested's no-crossing
// precondition would not hold; ContainsLoop checks for that crossing
// itself before concluding containment.
func (l *Loop) ContainsCell(cell Cell) bool {
	if l.isEmptyOrFull() {
		return l.IsFullSentinel()
	}
	if !l.bound.Contains(cell.Vertex(0)) {
		return false
	}
	cellAsLoop := NewLoopFromCell(cell)
	return l.ContainsLoop(cellAsLoop)
}

// IntersectsCell reports whether the loop and the given cell share any
// point.
func (l *Loop) IntersectsCell(cell Cell) bool {
	if l.isEmptyOrFull() {
		return l.IsFullSentinel()
	}
	if !l.bound.Intersects(cell.RectBound()) {
		return false
	}
	return l.Intersects(NewLoopFromCell(cell))
}

// MayIntersect reports whether the loop and the given cell share any
// point. It rejects cells outside the loop's bound first and otherwise
// returns IntersectsCell's exact answer.
func (l *Loop) MayIntersect(cell Cell) bool {
	if !l.bound.Intersects(cell.RectBound()) {
		return false
	}
	return l.IntersectsCell(cell)
}

// FindVertex returns the index of the first vertex equal to p, or -1 if no
// vertex equals p. For loops queried repeatedly this builds a lookup map
// after a handful of calls rather than scanning the vertex chain every
// time; small loops and infrequent callers never pay that cost at all.
func (l *Loop) FindVertex(p Point) int {
	l.numFindVertexCalls++
	if len(l.vertices) < findVertexBruteForceVertices || l.numFindVertexCalls < findVertexBruteForceCalls {
		for i := 0; i < len(l.vertices); i++ {
			if l.vertices[i] == p {
				return i
			}
		}
		return -1
	}
	if l.vertexToIndex == nil {
		l.vertexToIndex = make(map[uint64][]int, len(l.vertices))
		for i := len(l.vertices) - 1; i >= 0; i-- {
			fp := l.vertices[i].fingerprint()
			l.vertexToIndex[fp] = append(l.vertexToIndex[fp], i)
		}
	}
	for _, idx := range l.vertexToIndex[p.fingerprint()] {
		if l.vertices[idx] == p {
			return idx
		}
	}
	return -1
}

// Distance returns the angular distance from p to the loop: zero if p is
// inside (or on the boundary of) the loop, otherwise the distance to the
// nearest point on the boundary.
func (l *Loop) Distance(p Point) s1.Angle {
	if l.Contains(p) {
		return 0
	}
	return l.DistanceToBoundary(p)
}

// DistanceToBoundary returns the angular distance from p to the nearest
// point on the loop's boundary, regardless of whether p is inside or
// outside the loop.
func (l *Loop) DistanceToBoundary(p Point) s1.Angle {
	if l.isEmptyOrFull() {
		return s1.Angle(math.Inf(1))
	}
	best := s1.Angle(math.Inf(1))
	n := len(l.vertices)
	for i := 0; i < n; i++ {
		if d := p.DistanceToEdge(l.vertex(i), l.vertex(i+1)); d < best {
			best = d
		}
	}
	return best
}

// Project returns the point on the loop's closed region (interior plus
// boundary) nearest to p: p itself if it is already inside, otherwise the
// nearest point on the boundary.
func (l *Loop) Project(p Point) Point {
	if l.Contains(p) {
		return p
	}
	return l.ProjectToBoundary(p)
}

// ProjectToBoundary returns the point on the loop's boundary nearest to p.
func (l *Loop) ProjectToBoundary(p Point) Point {
	if l.isEmptyOrFull() {
		return p
	}
	n := len(l.vertices)
	best := s1.Angle(math.Inf(1))
	var bestPoint Point
	for i := 0; i < n; i++ {
		a, b := l.vertex(i), l.vertex(i+1)
		if d := p.DistanceToEdge(a, b); d < best {
			best = d
			bestPoint = projectToEdge(p, a, b)
		}
	}
	return bestPoint
}

// projectToEdge returns the point on the great-circle edge (a, b) nearest
// to p, clamped to the edge's endpoints if the perpendicular projection
// falls outside the edge.
func projectToEdge(p, a, b Point) Point {
	if a == b {
		return a
	}
	normal := a.PointCross(b)
	c := Point{normal.Cross(p.Vector).Cross(normal.Vector).Normalize()}
	if RobustSign(a, b, c) != RobustSign(a, b, p) {
		if p.Distance(a) <= p.Distance(b) {
			return a
		}
		return b
	}
	if OrderedCCW(a, c, b, Point{normal.Normalize()}) {
		return c
	}
	if p.Distance(a) <= p.Distance(b) {
		return a
	}
	return b
}

// surfaceIntegrand computes a per-triangle contribution summed by
// GetSurfaceIntegral; the two uses in this file (Area, Centroid) each
// supply their own.
type surfaceIntegrand func(a, b, c Point) surfaceTerm

// surfaceTerm holds either a scalar or vector partial sum, since Area
// needs a float64 accumulator and Centroid needs a Point accumulator; a
// single generic summer avoids writing the fan-triangulation walk twice.
type surfaceTerm struct {
	area     float64
	centroid Point
}

// getSurfaceIntegral sums fn over a triangle fan from vertex 0 covering
// the loop's interior, relocating the fan's apex away from vertex 0
// whenever doing so would create a numerically unstable (near-180-degree)
// edge. See davidreynolds' GetSurfaceIntegral for the derivation; the
// relocation keeps every edge the algorithm controls short, which is what
// keeps l'Huilier's theorem (used inside PointArea/TrueCentroid) accurate.
func (l *Loop) getSurfaceIntegral(fn surfaceIntegrand) surfaceTerm {
	const maxLength = math.Pi - 1e-5
	var sum surfaceTerm
	add := func(t surfaceTerm) {
		sum.area += t.area
		sum.centroid = Point{sum.centroid.Add(t.centroid.Vector)}
	}

	origin := l.vertex(0)
	n := len(l.vertices)
	for i := 1; i+1 < n; i++ {
		if float64(l.vertex(i+1).Angle(origin.Vector)) > maxLength {
			oldOrigin := origin
			switch {
			case origin == l.vertex(0):
				origin = Point{l.vertex(0).PointCross(l.vertex(i)).Normalize()}
			case float64(l.vertex(i).Angle(l.vertex(0).Vector)) < maxLength:
				origin = l.vertex(0)
			default:
				origin = Point{l.vertex(0).Cross(oldOrigin.Vector)}
				add(fn(l.vertex(0), oldOrigin, origin))
			}
			add(fn(oldOrigin, l.vertex(i), origin))
		}
		add(fn(origin, l.vertex(i), l.vertex(i+1)))
	}
	if origin != l.vertex(0) {
		add(fn(origin, l.vertex(n-1), l.vertex(0)))
	}
	return sum
}

func areaIntegrand(a, b, c Point) surfaceTerm {
	return surfaceTerm{area: SignedArea(a, b, c)}
}

func centroidIntegrand(a, b, c Point) surfaceTerm {
	return surfaceTerm{centroid: TrueCentroid(a, b, c)}
}

// Area returns the surface area enclosed by the loop's interior, in the
// range [0, 4*pi]. The full loop has area 4*pi; the empty loop has area 0.
func (l *Loop) Area() float64 {
	if l.isEmptyOrFull() {
		if l.IsFullSentinel() {
			return 4 * math.Pi
		}
		return 0
	}
	area := l.getSurfaceIntegral(areaIntegrand).area
	maxError := l.TurningAngleMaxError()

	// The triangle-fan sum gives better relative accuracy for small loops,
	// but its sign can flip on loops whose area is close to 0 or 4*pi; the
	// Gauss-Bonnet-based IsNormalized is the tie-breaker for that case.
	if area < 0 {
		area += 4 * math.Pi
	}
	area = math.Max(0, math.Min(4*math.Pi, area))

	if area < maxError && !l.IsNormalized() {
		return 4 * math.Pi
	} else if area > (4*math.Pi-maxError) && l.IsNormalized() {
		return 0
	}
	return area
}

// Centroid returns the true centroid of the loop's interior, multiplied by
// its signed area, so that centroids of adjacent loops can be summed
// directly before normalizing.
func (l *Loop) Centroid() Point {
	if l.isEmptyOrFull() {
		return Point{}
	}
	return l.getSurfaceIntegral(centroidIntegrand).centroid
}

// TurningAngle returns the sum of the loop's exterior turning angles, with
// sign. By the Gauss-Bonnet theorem this equals 2*pi minus the loop's area:
// close to 2*pi for a small CCW loop and close to -2*pi for a small CW one
// (whose area is nearly 4*pi). Vertices are visited starting
// from a canonical choice so the result is independent of vertex rotation
// and flips sign cleanly when the loop is reversed.
func (l *Loop) TurningAngle() float64 {
	if l.isEmptyOrFull() {
		if l.originInside {
			return -2 * math.Pi
		}
		return 2 * math.Pi
	}
	if len(l.vertices) < 3 {
		return 0
	}
	n := l.NumVertices()
	i, dir := l.canonicalFirstVertex()
	var sum kahanAccumulator
	sum.add(float64(TurnAngle(l.vertex(i+n-dir), l.vertex(i), l.vertex(i+dir))))
	for k := n - 1; k > 0; k-- {
		i += dir
		sum.add(float64(TurnAngle(l.vertex(i-dir), l.vertex(i), l.vertex(i+dir))))
	}
	return float64(dir) * sum.value()
}

// turningAngleMaxErrorPerVertex is the conservative per-vertex rounding
// error bound for TurningAngle, expressed as a multiple of DBL_EPSILON;
// matches the error analysis used throughout this package's area and
// turning-angle computations.
const turningAngleMaxErrorPerVertex = 9.73

// TurningAngleMaxError returns a conservative upper bound on the error in
// TurningAngle's result, proportional to the number of vertices summed.
func (l *Loop) TurningAngleMaxError() float64 {
	return turningAngleMaxErrorPerVertex * dblEpsilon * float64(l.NumVertices())
}

// canonicalFirstVertex returns (first, dir) such that walking
// first, first+dir, first+2*dir, ... visits every vertex exactly once,
// always starting from the lexicographically smallest vertex; this gives
// TurningAngle a vertex-rotation-independent starting point.
func (l *Loop) canonicalFirstVertex() (first, dir int) {
	n := l.NumVertices()
	first = 0
	for i := 1; i < n; i++ {
		if l.vertex(i).LessThan(l.vertex(first).Vector) {
			first = i
		}
	}
	if l.vertex(first+1).LessThan(l.vertex(first+n-1).Vector) {
		return first, 1
	}
	return first + n, -1
}

// IsNormalized reports whether the loop encloses at most half the sphere,
// which is the canonical orientation this package expects for any loop
// used as a polygon shell (as opposed to a hole).
func (l *Loop) IsNormalized() bool {
	if l.isEmptyOrFull() {
		return !l.IsFullSentinel()
	}
	if l.bound.Lng.Length() < math.Pi {
		return true
	}
	return l.TurningAngle() >= -1e-14
}

// Normalize inverts the loop in place if doing so is needed to make it
// enclose at most half the sphere.
func (l *Loop) Normalize() {
	if !l.IsNormalized() {
		l.Invert()
	}
}

// Invert reverses the orientation of the loop in place, exchanging its
// interior and exterior.
func (l *Loop) Invert() {
	l.resetMutableFields()
	if l.isEmptyOrFull() {
		if l.IsFullSentinel() {
			l.vertices[0] = emptyVertex()
		} else {
			l.vertices[0] = fullVertex()
		}
		l.originInside = !l.originInside
		return
	}
	for i, j := 0, len(l.vertices)-1; i < j; i, j = i+1, j-1 {
		l.vertices[i], l.vertices[j] = l.vertices[j], l.vertices[i]
	}
	l.originInside = !l.originInside
	if l.bound.Lat.Lo > -math.Pi/2 && l.bound.Lat.Hi < math.Pi/2 {
		// The complement contains both poles; no tighter bound exists.
		l.bound = FullRect()
		l.subregion = l.bound
	} else {
		l.initBound()
	}
}

// Equals reports whether l and other trace the same sequence of vertices
// starting from the same index - a stricter, cheaper test than
// BoundaryEquals when callers know they want exact vertex-array equality.
func (l *Loop) Equals(other *Loop) bool {
	if len(l.vertices) != len(other.vertices) {
		return false
	}
	for i, v := range l.vertices {
		if v != other.vertices[i] {
			return false
		}
	}
	return true
}

// BoundaryEquals reports whether l and other describe the same boundary,
// allowing the vertex chain to start at a different (but cyclically
// consistent) offset.
func (l *Loop) BoundaryEquals(other *Loop) bool {
	if len(l.vertices) != len(other.vertices) {
		return false
	}
	n := len(l.vertices)
	for offset := 0; offset < n; offset++ {
		match := true
		for i := 0; i < n; i++ {
			if l.vertex(i+offset) != other.vertex(i) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// BoundaryApproxEquals reports whether l and other have the same number of
// vertices and each corresponding vertex (at some consistent cyclic
// offset) is within maxError radians of the other's.
func (l *Loop) BoundaryApproxEquals(other *Loop, maxError float64) bool {
	n := len(l.vertices)
	if n != len(other.vertices) {
		return false
	}
	for offset := 0; offset < n; offset++ {
		if !l.vertex(offset).ApproxEqualWithin(other.vertex(0), maxError) {
			continue
		}
		match := true
		for i := 0; i < n; i++ {
			if !l.vertex(i+offset).ApproxEqualWithin(other.vertex(i), maxError) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// intPair is a small helper key for the boundary-matching dynamic program
// below.
type intPair struct{ i, j int }

// BoundaryNear reports whether l and other's boundaries stay within
// maxError of each other everywhere, even if they have different numbers
// of vertices (e.g. one has extra vertices along what is geometrically the
// same edge as the other).
func (l *Loop) BoundaryNear(other *Loop, maxError float64) bool {
	for offset := 0; offset < len(l.vertices); offset++ {
		if matchBoundaries(l, other, offset, maxError) {
			return true
		}
	}
	return false
}

// matchBoundaries is a small backtracking search (memoized so no state is
// ever revisited) over pairs of positions (i, j) into l and other,
// advancing i or j whenever doing so keeps every skipped vertex within
// maxError of the other loop's current edge. Reaching (len(l), len(other))
// means every vertex of both loops was accounted for within tolerance.
func matchBoundaries(a, b *Loop, offset int, maxError float64) bool {
	alen, blen := len(a.vertices), len(b.vertices)
	done := make(map[intPair]bool)
	pending := []intPair{{0, 0}}
	for len(pending) > 0 {
		top := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		i, j := top.i, top.j
		if i == alen && j == blen {
			return true
		}
		if done[top] {
			continue
		}
		done[top] = true

		io := i + offset
		if io >= alen {
			io -= alen
		}
		if i < alen && !done[intPair{i + 1, j}] {
			if float64(a.vertex(io+1).DistanceToEdge(b.vertex(j), b.vertex(j+1))) <= maxError {
				pending = append(pending, intPair{i + 1, j})
			}
		}
		if j < blen && !done[intPair{i, j + 1}] {
			if float64(b.vertex(j+1).DistanceToEdge(a.vertex(io), a.vertex(io+1))) <= maxError {
				pending = append(pending, intPair{i, j + 1})
			}
		}
	}
	return false
}

// ContainsLoop reports whether loop a's interior contains loop b entirely.
func (a *Loop) ContainsLoop(b *Loop) bool {
	if a.isEmptyOrFull() || b.isEmptyOrFull() {
		return a.IsFullSentinel() || b.IsEmpty()
	}
	if !a.subregion.ContainsRect(b.bound) {
		return false
	}

	// A quick rejection test: if a vertex of B that is not shared with A
	// lies outside A, A cannot contain B. Acceptance still needs the
	// crossing check below.
	if !a.Contains(b.vertex(0)) && a.FindVertex(b.vertex(0)) < 0 {
		return false
	}

	var wedge ContainsWedgeProcessor
	crosser := NewLoopCrosser(a, b)
	if crosser.AreBoundariesCrossing(&wedge) || wedge.DoesntContain {
		return false
	}

	if a.bound.Union(b.bound).IsFull() {
		if b.Contains(a.vertex(0)) && b.FindVertex(a.vertex(0)) < 0 {
			return false
		}
	}
	return true
}

// ContainsNested reports whether a contains b, given that the caller
// already knows a and b's boundaries do not cross (e.g. they were produced
// as sibling loops of the same polygon and are known to be properly
// nested or disjoint).
func (a *Loop) ContainsNested(b *Loop) bool {
	if a.isEmptyOrFull() || b.isEmptyOrFull() {
		return a.IsFullSentinel() || b.IsEmpty()
	}
	if !a.subregion.ContainsRect(b.bound) {
		return false
	}
	return a.ContainsNonCrossingBoundary(b, false)
}

// ContainsNonCrossingBoundary implements the shared-vertex wedge test used
// once the caller already knows the two boundaries do not properly cross;
// reverseB inverts the interpretation of a's vertex order, used when the
// caller is testing a against b's complement rather than b itself.
func (a *Loop) ContainsNonCrossingBoundary(b *Loop, reverseB bool) bool {
	m := a.FindVertex(b.vertex(1))
	if m < 0 {
		inside := a.Contains(b.vertex(1))
		if reverseB {
			return !inside
		}
		return inside
	}
	contains := WedgeContains(a.vertex(m-1), a.vertex(m), a.vertex(m+1), b.vertex(0), b.vertex(2))
	if reverseB {
		return !contains
	}
	return contains
}

// Intersects reports whether loop a and loop b share any point.
func (a *Loop) Intersects(b *Loop) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return false
	}
	if a.IsFull() || b.IsFull() {
		return true
	}
	if len(b.vertices) > len(a.vertices) {
		return b.Intersects(a)
	}
	if !a.bound.Intersects(b.bound) {
		return false
	}
	if a.Contains(b.vertex(0)) && a.FindVertex(b.vertex(0)) < 0 {
		return true
	}

	var wedge IntersectsWedgeProcessor
	crosser := NewLoopCrosser(a, b)
	if crosser.AreBoundariesCrossing(&wedge) || wedge.Intersects {
		return true
	}

	if b.bound.ContainsRect(a.bound) {
		if b.Contains(a.vertex(0)) && b.FindVertex(a.vertex(0)) < 0 {
			return true
		}
	}
	return false
}

// CompareBoundary returns -1 if a's boundary crosses b's, 0 if a's
// interior does not contain b, or 1 if it does - under the precondition
// that a and b's boundaries do not share any edge (only possibly
// vertices). ContainsLoop and ContainsNested do not call it; each makes
// its own checks.
func (a *Loop) CompareBoundary(b *Loop) int {
	if a.IsFull() {
		return 1
	}
	if b.IsEmpty() {
		return 1
	}
	if a.IsEmpty() || b.IsFull() {
		return 0
	}
	if !a.bound.Intersects(b.bound) {
		return 0
	}

	var wedge ContainsOrCrossesProcessor
	crosser := NewLoopCrosser(a, b)
	if crosser.AreBoundariesCrossing(&wedge) {
		return -1
	}
	res := wedge.CrossesOrMayContain()
	if res <= 0 {
		return res
	}

	if !a.bound.ContainsRect(b.bound) {
		return 0
	}
	if !a.Contains(b.vertex(0)) && a.FindVertex(b.vertex(0)) < 0 {
		return 0
	}
	return 1
}
