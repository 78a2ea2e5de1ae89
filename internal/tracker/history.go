package tracker

import (
	"github.com/banshee-data/tuio2d/internal/geom"
)

// historyCapacity bounds the per-slot sample ring used for velocity and
// acceleration estimation.
const historyCapacity = 5

type sample struct {
	t   float64
	pos geom.Point3D
}

// History is a bounded ring buffer of recent (timestamp, position) samples
// for one slot, used to derive velocity and acceleration estimates.
type History struct {
	samples [historyCapacity]sample
	count   int
	head    int // index of the oldest sample
}

// Push records a new sample, evicting the oldest once the ring is full.
func (h *History) Push(t float64, pos geom.Point3D) {
	idx := (h.head + h.count) % historyCapacity
	h.samples[idx] = sample{t: t, pos: pos}
	if h.count < historyCapacity {
		h.count++
	} else {
		h.head = (h.head + 1) % historyCapacity
	}
}

// Reset discards all recorded samples.
func (h *History) Reset() {
	*h = History{}
}

// ordered returns the recorded samples oldest-first.
func (h *History) ordered() []sample {
	out := make([]sample, h.count)
	for i := 0; i < h.count; i++ {
		out[i] = h.samples[(h.head+i)%historyCapacity]
	}
	return out
}

// LastPosition returns the most recently pushed sample's position.
func (h *History) LastPosition() (geom.Point3D, bool) {
	if h.count == 0 {
		return geom.Point3D{}, false
	}
	return h.samples[(h.head+h.count-1)%historyCapacity].pos, true
}

// Velocity estimates the instantaneous velocity via forward difference of
// the two most recent samples. Available is false when fewer than two
// samples have been recorded, or the two most recent share a timestamp.
func (h *History) Velocity() (geom.Velocity3D, bool) {
	if h.count < 2 {
		return geom.Velocity3D{}, false
	}
	s := h.ordered()
	prev, cur := s[len(s)-2], s[len(s)-1]
	dt := cur.t - prev.t
	if dt <= 0 {
		return geom.Velocity3D{}, false
	}
	return geom.DeltaPosition3D(prev.pos, cur.pos, dt), true
}

// Acceleration estimates the instantaneous scalar acceleration by building
// the velocity-magnitude series over the last three sample intervals, then
// Lagrange-interpolating that 3-point series and differentiating it at the
// most recent sample. Available is false when fewer than four samples have
// been recorded (three intervals need four endpoints) or any interval has a
// non-positive duration.
func (h *History) Acceleration() (geom.MovementAccel, bool) {
	if h.count < 4 {
		return 0, false
	}
	s := h.ordered()
	recent := s[len(s)-4:]

	var vt, vv [3]float64
	for i := 0; i < 3; i++ {
		dt := recent[i+1].t - recent[i].t
		if dt <= 0 {
			return 0, false
		}
		vt[i] = recent[i+1].t
		vv[i] = geom.DeltaPosition3D(recent[i].pos, recent[i+1].pos, dt).Magnitude()
	}

	accel, ok := lagrangeDerivativeAtLast(vt, vv)
	if !ok {
		return 0, false
	}
	return geom.MovementAccel(accel), true
}

// lagrangeDerivativeAtLast differentiates the unique quadratic through
// (t[0],v[0]), (t[1],v[1]), (t[2],v[2]) and evaluates the derivative at
// t[2], the standard three-point derivative formula for non-uniformly
// spaced samples.
func lagrangeDerivativeAtLast(t, v [3]float64) (float64, bool) {
	d01 := t[0] - t[1]
	d02 := t[0] - t[2]
	d12 := t[1] - t[2]
	if d01 == 0 || d02 == 0 || d12 == 0 {
		return 0, false
	}

	l0 := (t[2] - t[1]) / (d01 * d02)
	l1 := (t[0] - t[2]) / (d01 * d12)
	l2 := (2*t[2] - t[0] - t[1]) / (d02 * d12)

	return v[0]*l0 + v[1]*l1 + v[2]*l2, true
}
