package wire

import (
	"github.com/banshee-data/tuio2d/internal/geom"
	"github.com/banshee-data/tuio2d/internal/messages"
)

// ImprintBounds returns the wire records for a Bounds, one per path its
// OutputMode selects.
func ImprintBounds(bnd *messages.Bounds) []Record {
	var out []Record
	if bnd.OutputMode == messages.OutputMode2D || bnd.OutputMode == messages.OutputModeBoth {
		out = append(out, encodeBounds2D(bnd))
	}
	if bnd.OutputMode == messages.OutputMode3D || bnd.OutputMode == messages.OutputModeBoth {
		out = append(out, encodeBounds3D(bnd))
	}
	return out
}

func encodeBounds2D(bnd *messages.Bounds) Record {
	var b argBuilder
	b.i(int32(bnd.SessionID))
	b.f(bnd.Position.X)
	b.f(bnd.Position.Y)
	b.f(bnd.Angle.Yaw)
	b.f(bnd.ShapeMajor)
	b.f(bnd.ShapeMinor)
	b.f(bnd.Area)
	return Record{Path: PathBounds2D, TypeTags: b.tags, Args: b.args}
}

func encodeBounds3D(bnd *messages.Bounds) Record {
	var b argBuilder
	b.i(int32(bnd.SessionID))
	b.f(bnd.Position.X)
	b.f(bnd.Position.Y)
	b.f(bnd.Position.Z)
	b.f(bnd.Angle.Yaw)
	b.f(bnd.Angle.Pitch)
	b.f(bnd.Angle.Roll)
	b.f(bnd.ShapeMajor)
	b.f(bnd.ShapeMinor)
	b.f(bnd.Area)
	return Record{Path: PathBounds3D, TypeTags: b.tags, Args: b.args}
}

func decodeBounds2D(r Record) (messages.Message, error) {
	a := newArgReader(r)
	session, err := a.i()
	if err != nil {
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
	major, err := a.f()
	if err != nil {
		return nil, err
	}
	minor, err := a.f()
	if err != nil {
		return nil, err
	}
	area, err := a.f()
	if err != nil {
		return nil, err
	}
	return &messages.Bounds{
		SessionHolder: messages.SessionHolder{SessionID: messages.SessionID(session)},
		PositionHolder3D: messages.PositionHolder3D{Position: geom.Point3D{X: x, Y: y}},
		AngleHolder3D:    messages.AngleHolder3D{Angle: geom.Angle3{Yaw: yaw}},
		EllipseHolder:    messages.EllipseHolder{ShapeMajor: major, ShapeMinor: minor},
		Area:             area,
		OutputMode:       messages.OutputMode2D,
	}, nil
}

func decodeBounds3D(r Record) (messages.Message, error) {
	a := newArgReader(r)
	session, err := a.i()
	if err != nil {
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
	major, err := a.f()
	if err != nil {
		return nil, err
	}
	minor, err := a.f()
	if err != nil {
		return nil, err
	}
	area, err := a.f()
	if err != nil {
		return nil, err
	}
	return &messages.Bounds{
		SessionHolder:    messages.SessionHolder{SessionID: messages.SessionID(session)},
		PositionHolder3D: messages.PositionHolder3D{Position: geom.Point3D{X: x, Y: y, Z: z}},
		AngleHolder3D:    messages.AngleHolder3D{Angle: geom.Angle3{Yaw: yaw, Pitch: pitch, Roll: roll}},
		EllipseHolder:    messages.EllipseHolder{ShapeMajor: major, ShapeMinor: minor},
		Area:             area,
		OutputMode:       messages.OutputMode3D,
	}, nil
}

func registerBoundsSymbolCodecs(reg *Registry) {
	reg.Register(PathBounds2D, decodeBounds2D)
	reg.Register(PathBounds3D, decodeBounds3D)
	reg.Register(PathSymbol, decodeSymbol)
	reg.Register(PathArea, decodeArea)
}

// EncodeSymbol produces the /tuio2/sym record for a Symbol message.
func EncodeSymbol(s *messages.Symbol) Record {
	var b argBuilder
	b.i(int32(s.SessionID))
	b.i(int32(s.TUID()))
	b.i(int32(s.ComponentID))
	b.s(s.Data)
	return Record{Path: PathSymbol, TypeTags: b.tags, Args: b.args}
}

func decodeSymbol(r Record) (messages.Message, error) {
	a := newArgReader(r)
	session, err := a.i()
	if err != nil {
		return nil, err
	}
	tuid, err := a.i()
	if err != nil {
		return nil, err
	}
	component, err := a.i()
	if err != nil {
		return nil, err
	}
	data, err := a.s()
	if err != nil {
		return nil, err
	}
	user, typ := messages.TUID(tuid).Unpack()
	return &messages.Symbol{
		SessionHolder:   messages.SessionHolder{SessionID: messages.SessionID(session)},
		TypeUserHolder:  messages.TypeUserHolder{TypeID: typ, UserID: user},
		ComponentHolder: messages.ComponentHolder{ComponentID: messages.ComponentID(component)},
		Data:            data,
	}, nil
}

// EncodeArea produces the /tuio2/arg record for an Area message: session id
// followed by (cx, cy, radius) triples for each disc span.
func EncodeArea(ar *messages.Area) Record {
	var b argBuilder
	b.i(int32(ar.SessionID))
	for _, span := range ar.Spans {
		b.f(span.Center.X)
		b.f(span.Center.Y)
		b.f(span.Radius)
	}
	return Record{Path: PathArea, TypeTags: b.tags, Args: b.args}
}

func decodeArea(r Record) (messages.Message, error) {
	a := newArgReader(r)
	session, err := a.i()
	if err != nil {
		return nil, err
	}
	ar := &messages.Area{SessionHolder: messages.SessionHolder{SessionID: messages.SessionID(session)}}
	for a.remaining() > 0 {
		cx, err := a.f()
		if err != nil {
			return nil, err
		}
		cy, err := a.f()
		if err != nil {
			return nil, err
		}
		radius, err := a.f()
		if err != nil {
			return nil, err
		}
		ar.Spans = append(ar.Spans, messages.DiscSpan{Center: geom.Point2D{X: cx, Y: cy}, Radius: radius})
	}
	return ar, nil
}
