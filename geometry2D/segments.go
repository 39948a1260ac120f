package geometry2D

import (
	"fmt"
	"math"

	"github.com/notargets/gobem/utils"
)

type Orientation uint8

const (
	// SignedAreaOrientation orients every normal from the polygon winding
	// direction (shoelace signed area), valid for any simple polygon
	SignedAreaOrientation Orientation = iota
	// RadialOrientation flips each normal to agree with the direction from the
	// origin to the segment start point. Only valid for boundaries that are
	// star shaped about an interior origin.
	RadialOrientation
)

func (o Orientation) String() string {
	switch o {
	case RadialOrientation:
		return "Radial"
	default:
		return "SignedArea"
	}
}

type Segment struct {
	P0, P1  Point
	Mid     Point
	Tangent Point // Unit vector from P0 to P1
	Normal  Point // Outward unit normal
	H       float64
}

type Segments struct {
	Segs        []Segment
	Orientation Orientation
	signedArea  float64
}

/*
NewSegments derives tangents, outward normals and arc lengths from the boundary
sample. For segment i joining p[i] and p[i+1]:

	tangent = (p[i+1] - p[i]) / |p[i+1] - p[i]|
	normal  = (tangent.y, -tangent.x), sign chosen by the orientation strategy
	h       = |p[i+1] - p[i]|
*/
func NewSegments(bs *BoundarySample, orientation Orientation) (segs *Segments, err error) {
	var (
		M = bs.Len()
	)
	segs = &Segments{
		Segs:        make([]Segment, M),
		Orientation: orientation,
		signedArea:  polygonArea(bs.points),
	}
	for i := 0; i < M; i++ {
		var (
			p0, p1 = bs.At(i), bs.At(i + 1)
			chord  = p1.Minus(p0)
			s      = &segs.Segs[i]
			ok     bool
		)
		s.P0, s.P1 = p0, p1
		s.Mid = p0.Plus(p1).Scale(0.5)
		s.H = chord.Norm()
		if s.Tangent, ok = chord.Normalize(utils.NODETOL); !ok {
			return nil, fmt.Errorf("%w: points %d and %d coincide at %v",
				utils.ErrDegenerateSegment, i, (i+1)%M, p0)
		}
		s.Normal = s.Tangent.RotateCW()
		switch orientation {
		case RadialOrientation:
			// Direction from the origin, the interior reference point
			if s.Normal.Dot(p0) < 0 {
				s.Normal = s.Normal.Scale(-1)
			}
		default:
			// Clockwise traversal puts the interior on the right of the tangent
			if segs.signedArea < 0 {
				s.Normal = s.Normal.Scale(-1)
			}
		}
	}
	return
}

func (segs *Segments) Len() int { return len(segs.Segs) }

// CheckOrthogonality reports the first segment whose tangent and normal are not
// perpendicular to within tol, or whose normal is not unit length
func (segs *Segments) CheckOrthogonality(tol float64) error {
	for i, s := range segs.Segs {
		if dot := s.Tangent.Dot(s.Normal); math.Abs(dot) >= tol {
			return fmt.Errorf("segment %d: tangent.normal = %g exceeds %g", i, dot, tol)
		}
		if nn := s.Normal.Norm(); math.Abs(nn-1) >= tol {
			return fmt.Errorf("segment %d: |normal| = %g is not unit", i, nn)
		}
	}
	return nil
}

// Perimeter is the sum of segment lengths, the midpoint rule weight total
func (segs *Segments) Perimeter() (perimeter float64) {
	for _, s := range segs.Segs {
		perimeter += s.H
	}
	return
}

// SignedArea is positive for counterclockwise boundaries
func (segs *Segments) SignedArea() float64 { return segs.signedArea }

func (segs *Segments) MinSegmentLength() (hMin float64) {
	hMin = math.MaxFloat64
	for _, s := range segs.Segs {
		hMin = math.Min(hMin, s.H)
	}
	return
}

func (segs *Segments) Weights() (h []float64) {
	h = make([]float64, len(segs.Segs))
	for i, s := range segs.Segs {
		h[i] = s.H
	}
	return
}

/*
WindingNumber counts the turns of the boundary polygon around point, zero means
the point is outside.
Algorithm: http://geomalgorithms.com/a03-_inclusion.html#wn_PnPoly()
*/
func (segs *Segments) WindingNumber(point Point) (wn int) {
	// >0 for P2 left of the line through P0 and P1, <0 right, =0 on the line
	isLeft := func(P0, P1, P2 Point) float64 {
		return P1.Minus(P0).Cross(P2.Minus(P0))
	}
	for _, s := range segs.Segs {
		pt0, pt1 := s.P0, s.P1
		if pt0.X[1] <= point.X[1] {
			if pt1.X[1] > point.X[1] {
				if isLeft(pt0, pt1, point) > 0 {
					wn++
				}
			}
		} else {
			if pt1.X[1] <= point.X[1] {
				if isLeft(pt0, pt1, point) < 0 {
					wn--
				}
			}
		}
	}
	return
}

func (segs *Segments) Contains(point Point) bool {
	return segs.WindingNumber(point) != 0
}

// DistanceToBoundary is the smallest distance from point to any segment
func (segs *Segments) DistanceToBoundary(point Point) (dist float64) {
	dist = math.MaxFloat64
	for _, s := range segs.Segs {
		var (
			t = point.Minus(s.P0).Dot(s.Tangent)
		)
		t = math.Max(0, math.Min(s.H, t))
		closest := s.P0.Plus(s.Tangent.Scale(t))
		dist = math.Min(dist, point.Distance(closest))
	}
	return
}

/*
polygonArea is the shoelace signed area, from Green's theorem in the plane.
Counterclockwise polygons are positive.
*/
func polygonArea(geom []Point) (area float64) {
	var (
		M = len(geom)
	)
	for i := 0; i < M; i++ {
		area += geom[i].Cross(geom[(i+1)%M])
	}
	return 0.5 * area
}
