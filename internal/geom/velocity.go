package geom

import "math"

// Velocity2D is a coord-per-second vector in the same coordinate frame as
// the corresponding Point2D.
type Velocity2D struct {
	X, Y float64
}

// Velocity3D is a coord-per-second vector in the same coordinate frame as
// the corresponding Point3D.
type Velocity3D struct {
	X, Y, Z float64
}

// Magnitude returns the Euclidean norm of the velocity vector.
func (v Velocity2D) Magnitude() float64 { return math.Hypot(v.X, v.Y) }

// Magnitude returns the Euclidean norm of the velocity vector.
func (v Velocity3D) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Equal reports whether two velocities are identical.
func (v Velocity2D) Equal(o Velocity2D) bool { return v.X == o.X && v.Y == o.Y }

// Equal reports whether two velocities are identical.
func (v Velocity3D) Equal(o Velocity3D) bool { return v.X == o.X && v.Y == o.Y && v.Z == o.Z }

// DeltaPosition2D computes the forward-difference velocity between two
// timestamped positions. dtSeconds must be > 0.
func DeltaPosition2D(prev, cur Point2D, dtSeconds float64) Velocity2D {
	if dtSeconds <= 0 {
		return Velocity2D{}
	}
	return Velocity2D{X: (cur.X - prev.X) / dtSeconds, Y: (cur.Y - prev.Y) / dtSeconds}
}

// DeltaPosition3D computes the forward-difference velocity between two
// timestamped positions. dtSeconds must be > 0.
func DeltaPosition3D(prev, cur Point3D, dtSeconds float64) Velocity3D {
	if dtSeconds <= 0 {
		return Velocity3D{}
	}
	return Velocity3D{
		X: (cur.X - prev.X) / dtSeconds,
		Y: (cur.Y - prev.Y) / dtSeconds,
		Z: (cur.Z - prev.Z) / dtSeconds,
	}
}

// MovementAccel is a scalar coord-per-second^2 magnitude.
type MovementAccel float64

// RotationAccel is a scalar radian-per-second^2 magnitude.
type RotationAccel float64
