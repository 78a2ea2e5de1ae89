package messages

import "fmt"

// Pointer is a 2D/3D contact report (spec §4.C /tuio2/ptr, /tuio2/p3d).
type Pointer struct {
	SessionHolder
	TypeUserHolder
	ComponentHolder
	PositionHolder3D
	VelocityHolder3D
	AccelHolder
	OutputMode OutputMode
}

func (p *Pointer) Clone() Message {
	c := *p
	return &c
}

func (p *Pointer) Equal(o Message) bool {
	other, ok := o.(*Pointer)
	if !ok {
		return false
	}
	return *p == *other
}

func (p *Pointer) String() string {
	return fmt.Sprintf("ptr(s=%d tu=%s pos=%+v vel=%+v/%v accel=%v/%v)",
		p.SessionID, p.TUID(), p.Position, p.Velocity, p.VelocityHolder3D.Available, p.Accel, p.AccelHolder.Available)
}

// Token is a rigid-body contact report: a Pointer plus orientation and
// rotational kinematics (spec §4.C /tuio2/tok, /tuio2/t3d).
type Token struct {
	SessionHolder
	TypeUserHolder
	ComponentHolder
	PositionHolder3D
	VelocityHolder3D
	AccelHolder
	AngleHolder3D
	RotationVelocityHolder3D
	RotationAccelHolder
	OutputMode OutputMode
}

func (t *Token) Clone() Message {
	c := *t
	return &c
}

func (t *Token) Equal(o Message) bool {
	other, ok := o.(*Token)
	if !ok {
		return false
	}
	return *t == *other
}

func (t *Token) String() string {
	return fmt.Sprintf("tok(s=%d tu=%s pos=%+v angle=%+v)", t.SessionID, t.TUID(), t.Position, t.Angle)
}

// Bounds is an ellipse bounding region around a contact (spec §4.C
// /tuio2/bnd, /tuio2/b3d).
type Bounds struct {
	SessionHolder
	PositionHolder3D
	AngleHolder3D
	EllipseHolder
	Area       float64
	OutputMode OutputMode
}

func (b *Bounds) Clone() Message {
	c := *b
	return &c
}

func (b *Bounds) Equal(o Message) bool {
	other, ok := o.(*Bounds)
	if !ok {
		return false
	}
	return *b == *other
}

func (b *Bounds) String() string {
	return fmt.Sprintf("bnd(s=%d pos=%+v major=%g minor=%g)", b.SessionID, b.Position, b.ShapeMajor, b.ShapeMinor)
}

// Symbol is a symbolic tag report (spec §4.C /tuio2/sym).
type Symbol struct {
	SessionHolder
	TypeUserHolder
	ComponentHolder
	Data string
}

func (s *Symbol) Clone() Message {
	c := *s
	return &c
}

func (s *Symbol) Equal(o Message) bool {
	other, ok := o.(*Symbol)
	if !ok {
		return false
	}
	return *s == *other
}

func (s *Symbol) String() string {
	return fmt.Sprintf("sym(s=%d tu=%s data=%q)", s.SessionID, s.TUID(), s.Data)
}
