// Package geom provides the coordinate primitives shared by the message
// catalogue, the wire codec, and the contact tracker: 2D/3D points,
// velocities, angle triples, and the algebraic operations needed to
// translate/scale/rotate a point around an arbitrary center.
//
// Every type here is a plain value type with no heap state, matching the
// coordinate frame established by the enclosing frame message's sensor
// dimensions (spec coordinates are not assumed to be normalized to [0,1]).
package geom

import "math"

// Point2D is a position in the coordinate frame established by the current
// frame's sensor dimensions.
type Point2D struct {
	X, Y float64
}

// Point3D extends Point2D with a Z axis.
type Point3D struct {
	X, Y, Z float64
}

// To3D lifts a Point2D into a Point3D with Z == 0.
func (p Point2D) To3D() Point3D { return Point3D{X: p.X, Y: p.Y, Z: 0} }

// To2D projects a Point3D onto the XY plane, discarding Z.
func (p Point3D) To2D() Point2D { return Point2D{X: p.X, Y: p.Y} }

// Equal reports whether two points are identical.
func (p Point2D) Equal(o Point2D) bool { return p.X == o.X && p.Y == o.Y }

// Equal reports whether two points are identical.
func (p Point3D) Equal(o Point3D) bool { return p.X == o.X && p.Y == o.Y && p.Z == o.Z }

// Compare imposes a lexicographic order by (X, Y). Returns -1, 0, or 1.
func (p Point2D) Compare(o Point2D) int {
	if c := compareFloat(p.X, o.X); c != 0 {
		return c
	}
	return compareFloat(p.Y, o.Y)
}

// Compare imposes a lexicographic order by (X, Y, Z). Returns -1, 0, or 1.
func (p Point3D) Compare(o Point3D) int {
	if c := compareFloat(p.X, o.X); c != 0 {
		return c
	}
	if c := compareFloat(p.Y, o.Y); c != 0 {
		return c
	}
	return compareFloat(p.Z, o.Z)
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Add returns the componentwise sum p+o.
func (p Point2D) Add(o Point2D) Point2D { return Point2D{p.X + o.X, p.Y + o.Y} }

// Sub returns the componentwise difference p-o.
func (p Point2D) Sub(o Point2D) Point2D { return Point2D{p.X - o.X, p.Y - o.Y} }

// Add returns the componentwise sum p+o.
func (p Point3D) Add(o Point3D) Point3D { return Point3D{p.X + o.X, p.Y + o.Y, p.Z + o.Z} }

// Sub returns the componentwise difference p-o.
func (p Point3D) Sub(o Point3D) Point3D { return Point3D{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }

// Scale multiplies each axis by the corresponding factor.
func (p Point2D) Scale(sx, sy float64) Point2D { return Point2D{p.X * sx, p.Y * sy} }

// Scale multiplies each axis by the corresponding factor.
func (p Point3D) Scale(sx, sy, sz float64) Point3D {
	return Point3D{p.X * sx, p.Y * sy, p.Z * sz}
}

// Distance returns the Euclidean distance between p and o.
func (p Point2D) Distance(o Point2D) float64 {
	return math.Sqrt(p.DistanceSquared(o))
}

// DistanceSquared avoids the sqrt for comparison-only callers (e.g. nearest
// neighbour distance matrices).
func (p Point2D) DistanceSquared(o Point2D) float64 {
	dx, dy := p.X-o.X, p.Y-o.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between p and o.
func (p Point3D) Distance(o Point3D) float64 {
	return math.Sqrt(p.DistanceSquared(o))
}

// DistanceSquared avoids the sqrt for comparison-only callers.
func (p Point3D) DistanceSquared(o Point3D) float64 {
	dx, dy, dz := p.X-o.X, p.Y-o.Y, p.Z-o.Z
	return dx*dx + dy*dy + dz*dz
}

// RotateAround rotates p by theta radians (counter-clockwise) about center
// c: P -> C + R(theta)*(P-C).
func (p Point2D) RotateAround(c Point2D, theta float64) Point2D {
	dx, dy := p.X-c.X, p.Y-c.Y
	sin, cos := math.Sincos(theta)
	return Point2D{
		X: c.X + dx*cos - dy*sin,
		Y: c.Y + dx*sin + dy*cos,
	}
}

// RotateAround3 rotates p about center c by the given yaw (Z), pitch (Y),
// and roll (X) angles in radians, applied axis-by-axis in yaw, pitch, roll
// order.
func (p Point3D) RotateAround3(c Point3D, yaw, pitch, roll float64) Point3D {
	q := p.Sub(c)
	q = rotateZ(q, yaw)
	q = rotateY(q, pitch)
	q = rotateX(q, roll)
	return q.Add(c)
}

func rotateZ(p Point3D, theta float64) Point3D {
	sin, cos := math.Sincos(theta)
	return Point3D{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos, Z: p.Z}
}

func rotateY(p Point3D, theta float64) Point3D {
	sin, cos := math.Sincos(theta)
	return Point3D{X: p.X*cos + p.Z*sin, Y: p.Y, Z: -p.X*sin + p.Z*cos}
}

func rotateX(p Point3D, theta float64) Point3D {
	sin, cos := math.Sincos(theta)
	return Point3D{X: p.X, Y: p.Y*cos - p.Z*sin, Z: p.Y*sin + p.Z*cos}
}

// StripAnglePeriod reduces an angle in radians to the canonical [0, 2*pi)
// range. Implementations may also keep angles unreduced; this helper is
// provided for callers (typically comparisons and wire encoding) that want
// a normalized representative.
func StripAnglePeriod(radians float64) float64 {
	const twoPi = 2 * math.Pi
	r := math.Mod(radians, twoPi)
	if r < 0 {
		r += twoPi
	}
	return r
}
