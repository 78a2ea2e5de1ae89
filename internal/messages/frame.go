package messages

import "fmt"

// Frame is the per-bundle snapshot (spec §3 Frame, §4.C /tuio2/frm).
// Every bundle carries exactly one, and it must be the first payload
// element.
type Frame struct {
	FrameID       FrameID
	Timetag       Timetag
	SourceAddress uint32 // packed IPv4
	InstanceID    uint32
	AppName       string
	SensorWidth   float64
	SensorHeight  float64
}

func (f *Frame) Clone() Message {
	c := *f
	return &c
}

func (f *Frame) Equal(o Message) bool {
	other, ok := o.(*Frame)
	if !ok {
		return false
	}
	return *f == *other
}

func (f *Frame) String() string {
	return fmt.Sprintf("frm(id=%d tt=%d src=%#08x inst=%#08x app=%q dim=%gx%g)",
		f.FrameID, f.Timetag, f.SourceAddress, f.InstanceID, f.AppName, f.SensorWidth, f.SensorHeight)
}

// Alive is the per-bundle live session-id set (spec §3 Alive set, §4.C
// /tuio2/alv). Every bundle carries exactly one; clients infer implicit
// release from omission.
type Alive struct {
	SessionIDs []SessionID
}

func (a *Alive) Clone() Message {
	c := &Alive{SessionIDs: make([]SessionID, len(a.SessionIDs))}
	copy(c.SessionIDs, a.SessionIDs)
	return c
}

func (a *Alive) Equal(o Message) bool {
	other, ok := o.(*Alive)
	if !ok || len(a.SessionIDs) != len(other.SessionIDs) {
		return false
	}
	for i := range a.SessionIDs {
		if a.SessionIDs[i] != other.SessionIDs[i] {
			return false
		}
	}
	return true
}

func (a *Alive) String() string {
	return fmt.Sprintf("alv(%v)", a.SessionIDs)
}
