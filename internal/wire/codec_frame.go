package wire

import "github.com/banshee-data/tuio2d/internal/messages"

// EncodeFrame produces the /tuio2/frm record for a Frame message.
func EncodeFrame(f *messages.Frame) Record {
	var b argBuilder
	b.i(int32(f.FrameID))
	b.t(f.Timetag)
	b.i(int32(f.SourceAddress))
	b.i(int32(f.InstanceID))
	b.s(f.AppName)
	b.f(f.SensorWidth)
	b.f(f.SensorHeight)
	return Record{Path: PathFrame, TypeTags: b.tags, Args: b.args}
}

func decodeFrame(r Record) (messages.Message, error) {
	a := newArgReader(r)
	id, err := a.i()
	if err != nil {
		return nil, err
	}
	tt, err := a.tt()
	if err != nil {
		return nil, err
	}
	src, err := a.i()
	if err != nil {
		return nil, err
	}
	inst, err := a.i()
	if err != nil {
		return nil, err
	}
	app, err := a.s()
	if err != nil {
		return nil, err
	}
	w, err := a.f()
	if err != nil {
		return nil, err
	}
	h, err := a.f()
	if err != nil {
		return nil, err
	}
	return &messages.Frame{
		FrameID:       messages.FrameID(id),
		Timetag:       tt,
		SourceAddress: uint32(src),
		InstanceID:    uint32(inst),
		AppName:       app,
		SensorWidth:   w,
		SensorHeight:  h,
	}, nil
}

// EncodeAlive produces the /tuio2/alv record for an Alive message.
func EncodeAlive(a *messages.Alive) Record {
	var b argBuilder
	for _, id := range a.SessionIDs {
		b.i(int32(id))
	}
	return Record{Path: PathAlive, TypeTags: b.tags, Args: b.args}
}

func decodeAlive(r Record) (messages.Message, error) {
	a := newArgReader(r)
	out := &messages.Alive{}
	for a.remaining() > 0 {
		id, err := a.i()
		if err != nil {
			return nil, err
		}
		out.SessionIDs = append(out.SessionIDs, messages.SessionID(id))
	}
	return out, nil
}

func registerFrameCodecs(reg *Registry) {
	reg.Register(PathFrame, decodeFrame)
	reg.Register(PathAlive, decodeAlive)
}
