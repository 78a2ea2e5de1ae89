package tracker

import (
	"math"

	"github.com/banshee-data/tuio2d/internal/geom"
	"github.com/banshee-data/tuio2d/internal/messages"
	"gonum.org/v1/gonum/mat"
)

// TypeAResult is the outcome of one anonymous-batch commit: one Pointer
// per still-live track (new or continuing), and the session ids released
// because their track found no match within the join distance limit.
type TypeAResult struct {
	Pointers []*messages.Pointer
	Released []messages.SessionID
}

// UpdateTypeA applies one SYN_MT_REPORT-delimited batch of anonymous
// points: existing tracks are greedily reassigned to the nearest unclaimed
// point in the batch (spec §5 Type-A), using a squared-distance matrix: each
// round pairs the globally closest unclaimed track and point, and on equal
// distances the lower track index, then the lower point index, wins. A pair
// is never merged once its distance exceeds joinDistanceLimit — the track
// is released and the point starts a new track instead.
func (tr *Tracker) UpdateTypeA(points []geom.Point3D, t float64) TypeAResult {
	n := len(tr.tracksA)
	m := len(points)
	assignment := make([]int, n)
	for i := range assignment {
		assignment[i] = -1
	}
	trackMatched := make([]bool, n)
	pointMatched := make([]bool, m)

	if n > 0 && m > 0 {
		limitSq := tr.joinDistanceLimit * tr.joinDistanceLimit
		data := make([]float64, n*m)
		for i, slot := range tr.tracksA {
			last, _ := slot.History.LastPosition()
			for j, p := range points {
				data[i*m+j] = last.DistanceSquared(p)
			}
		}
		dm := mat.NewDense(n, m, data)

		for {
			bestI, bestJ, bestVal := -1, -1, math.Inf(1)
			for i := 0; i < n; i++ {
				if trackMatched[i] {
					continue
				}
				for j := 0; j < m; j++ {
					if pointMatched[j] {
						continue
					}
					if v := dm.At(i, j); v < bestVal {
						bestVal, bestI, bestJ = v, i, j
					}
				}
			}
			if bestI == -1 || bestVal > limitSq {
				break
			}
			assignment[bestI] = bestJ
			trackMatched[bestI] = true
			pointMatched[bestJ] = true
		}
	}

	var result TypeAResult
	survivors := make([]*Slot, 0, m)

	for i, slot := range tr.tracksA {
		j := assignment[i]
		if j < 0 {
			result.Released = append(result.Released, slot.SessionID)
			tr.alloc.Release(slot.SessionID)
			continue
		}
		slot.History.Push(t, points[j])
		if slot.State == StatePending {
			slot.State = StateLive
		}
		result.Pointers = append(result.Pointers, pointerFromSlot(slot))
		survivors = append(survivors, slot)
	}

	for j, p := range points {
		if pointMatched[j] {
			continue
		}
		slot := &Slot{State: StatePending, SessionID: tr.alloc.Allocate()}
		slot.History.Push(t, p)
		result.Pointers = append(result.Pointers, pointerFromSlot(slot))
		survivors = append(survivors, slot)
	}

	tr.tracksA = survivors
	return result
}

func pointerFromSlot(slot *Slot) *messages.Pointer {
	pos, _ := slot.History.LastPosition()
	vel, velOK := slot.History.Velocity()
	accel, accelOK := slot.History.Acceleration()
	return &messages.Pointer{
		SessionHolder:    messages.SessionHolder{SessionID: slot.SessionID},
		PositionHolder3D: messages.PositionHolder3D{Position: pos},
		VelocityHolder3D: messages.VelocityHolder3D{Velocity: vel, Available: velOK},
		AccelHolder:      messages.AccelHolder{Accel: accel, Available: accelOK},
		OutputMode:       messages.OutputMode2D,
	}
}
