package wire

import (
	"github.com/banshee-data/tuio2d/internal/geom"
	"github.com/banshee-data/tuio2d/internal/messages"
)

// ImprintPointer returns the wire records for a Pointer, one per path its
// OutputMode selects. The short form omits the velocity/acceleration
// trailing arguments entirely when neither estimate is available, rather
// than sending explicit zeroes (spec §4.D).
func ImprintPointer(p *messages.Pointer) []Record {
	var out []Record
	if p.OutputMode == messages.OutputMode2D || p.OutputMode == messages.OutputModeBoth {
		out = append(out, encodePointer2D(p))
	}
	if p.OutputMode == messages.OutputMode3D || p.OutputMode == messages.OutputModeBoth {
		out = append(out, encodePointer3D(p))
	}
	return out
}

func encodePointer2D(p *messages.Pointer) Record {
	var b argBuilder
	b.i(int32(p.SessionID))
	b.i(int32(p.TUID()))
	b.i(int32(p.ComponentID))
	b.f(p.Position.X)
	b.f(p.Position.Y)
	if p.VelocityHolder3D.Available || p.AccelHolder.Available {
		b.boolAsInt(p.VelocityHolder3D.Available)
		b.f(p.Velocity.X)
		b.f(p.Velocity.Y)
		b.boolAsInt(p.AccelHolder.Available)
		b.f(float64(p.Accel))
	}
	return Record{Path: PathPointer2D, TypeTags: b.tags, Args: b.args}
}

func encodePointer3D(p *messages.Pointer) Record {
	var b argBuilder
	b.i(int32(p.SessionID))
	b.i(int32(p.TUID()))
	b.i(int32(p.ComponentID))
	b.f(p.Position.X)
	b.f(p.Position.Y)
	b.f(p.Position.Z)
	if p.VelocityHolder3D.Available || p.AccelHolder.Available {
		b.boolAsInt(p.VelocityHolder3D.Available)
		b.f(p.Velocity.X)
		b.f(p.Velocity.Y)
		b.f(p.Velocity.Z)
		b.boolAsInt(p.AccelHolder.Available)
		b.f(float64(p.Accel))
	}
	return Record{Path: PathPointer3D, TypeTags: b.tags, Args: b.args}
}

func decodePointer2D(r Record) (messages.Message, error) {
	a := newArgReader(r)
	p := &messages.Pointer{OutputMode: messages.OutputMode2D}
	if err := decodePointerHead(a, p); err != nil {
		return nil, err
	}
	x, err := a.f()
	if err != nil {
		return nil, err
	}
	y, err := a.f()
	if err != nil {
		return nil, err
	}
	p.Position = geom.Point3D{X: x, Y: y}
	if a.remaining() > 0 {
		avail, err := a.boolFromInt()
		if err != nil {
			return nil, err
		}
		vx, err := a.f()
		if err != nil {
			return nil, err
		}
		vy, err := a.f()
		if err != nil {
			return nil, err
		}
		p.VelocityHolder3D = messages.VelocityHolder3D{Velocity: geom.Velocity3D{X: vx, Y: vy}, Available: avail}
		aAvail, err := a.boolFromInt()
		if err != nil {
			return nil, err
		}
		accel, err := a.f()
		if err != nil {
			return nil, err
		}
		p.AccelHolder = messages.AccelHolder{Accel: geom.MovementAccel(accel), Available: aAvail}
	}
	return p, nil
}

func decodePointer3D(r Record) (messages.Message, error) {
	a := newArgReader(r)
	p := &messages.Pointer{OutputMode: messages.OutputMode3D}
	if err := decodePointerHead(a, p); err != nil {
		return nil, err
	}
	x, err := a.f()
	if err != nil {
		return nil, err
	}
	y, err := a.f()
	if err != nil {
		return nil, err
	}
	z, err := a.f()
	if err != nil {
		return nil, err
	}
	p.Position = geom.Point3D{X: x, Y: y, Z: z}
	if a.remaining() > 0 {
		avail, err := a.boolFromInt()
		if err != nil {
			return nil, err
		}
		vx, err := a.f()
		if err != nil {
			return nil, err
		}
		vy, err := a.f()
		if err != nil {
			return nil, err
		}
		vz, err := a.f()
		if err != nil {
			return nil, err
		}
		p.VelocityHolder3D = messages.VelocityHolder3D{Velocity: geom.Velocity3D{X: vx, Y: vy, Z: vz}, Available: avail}
		aAvail, err := a.boolFromInt()
		if err != nil {
			return nil, err
		}
		accel, err := a.f()
		if err != nil {
			return nil, err
		}
		p.AccelHolder = messages.AccelHolder{Accel: geom.MovementAccel(accel), Available: aAvail}
	}
	return p, nil
}

func decodePointerHead(a *argReader, p *messages.Pointer) error {
	session, err := a.i()
	if err != nil {
		return err
	}
	tuid, err := a.i()
	if err != nil {
		return err
	}
	component, err := a.i()
	if err != nil {
		return err
	}
	user, typ := messages.TUID(tuid).Unpack()
	p.SessionHolder = messages.SessionHolder{SessionID: messages.SessionID(session)}
	p.TypeUserHolder = messages.TypeUserHolder{TypeID: typ, UserID: user}
	p.ComponentHolder = messages.ComponentHolder{ComponentID: messages.ComponentID(component)}
	return nil
}

// ImprintToken returns the wire records for a Token, one per path its
// OutputMode selects.
func ImprintToken(t *messages.Token) []Record {
	var out []Record
	if t.OutputMode == messages.OutputMode2D || t.OutputMode == messages.OutputModeBoth {
		out = append(out, encodeToken2D(t))
	}
	if t.OutputMode == messages.OutputMode3D || t.OutputMode == messages.OutputModeBoth {
		out = append(out, encodeToken3D(t))
	}
	return out
}

func encodeToken2D(t *messages.Token) Record {
	var b argBuilder
	b.i(int32(t.SessionID))
	b.i(int32(t.TUID()))
	b.i(int32(t.ComponentID))
	b.f(t.Position.X)
	b.f(t.Position.Y)
	b.f(float64(t.Angle.Yaw))
	return Record{Path: PathToken2D, TypeTags: b.tags, Args: b.args}
}

func encodeToken3D(t *messages.Token) Record {
	var b argBuilder
	b.i(int32(t.SessionID))
	b.i(int32(t.TUID()))
	b.i(int32(t.ComponentID))
	b.f(t.Position.X)
	b.f(t.Position.Y)
	b.f(t.Position.Z)
	b.f(t.Angle.Yaw)
	b.f(t.Angle.Pitch)
	b.f(t.Angle.Roll)
	return Record{Path: PathToken3D, TypeTags: b.tags, Args: b.args}
}

func decodeToken2D(r Record) (messages.Message, error) {
	a := newArgReader(r)
	t := &messages.Token{OutputMode: messages.OutputMode2D}
	if err := decodeTokenHead(a, t); err != nil {
		return nil, err
	}
	x, err := a.f()
	if err != nil {
		return nil, err
	}
	y, err := a.f()
	if err != nil {
		return nil, err
	}
	yaw, err := a.f()
	if err != nil {
		return nil, err
	}
	t.Position = geom.Point3D{X: x, Y: y}
	t.Angle = geom.Angle3{Yaw: yaw}
	return t, nil
}

func decodeToken3D(r Record) (messages.Message, error) {
	a := newArgReader(r)
	t := &messages.Token{OutputMode: messages.OutputMode3D}
	if err := decodeTokenHead(a, t); err != nil {
		return nil, err
	}
	x, err := a.f()
	if err != nil {
		return nil, err
	}
	y, err := a.f()
	if err != nil {
		return nil, err
	}
	z, err := a.f()
	if err != nil {
		return nil, err
	}
	yaw, err := a.f()
	if err != nil {
		return nil, err
	}
	pitch, err := a.f()
	if err != nil {
		return nil, err
	}
	roll, err := a.f()
	if err != nil {
		return nil, err
	}
	t.Position = geom.Point3D{X: x, Y: y, Z: z}
	t.Angle = geom.Angle3{Yaw: yaw, Pitch: pitch, Roll: roll}
	return t, nil
}

func decodeTokenHead(a *argReader, t *messages.Token) error {
	session, err := a.i()
	if err != nil {
		return err
	}
	tuid, err := a.i()
	if err != nil {
		return err
	}
	component, err := a.i()
	if err != nil {
		return err
	}
	user, typ := messages.TUID(tuid).Unpack()
	t.SessionHolder = messages.SessionHolder{SessionID: messages.SessionID(session)}
	t.TypeUserHolder = messages.TypeUserHolder{TypeID: typ, UserID: user}
	t.ComponentHolder = messages.ComponentHolder{ComponentID: messages.ComponentID(component)}
	return nil
}

func registerPointerCodecs(reg *Registry) {
	reg.Register(PathPointer2D, decodePointer2D)
	reg.Register(PathPointer3D, decodePointer3D)
	reg.Register(PathToken2D, decodeToken2D)
	reg.Register(PathToken3D, decodeToken3D)
}
