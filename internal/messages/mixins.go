package messages

import "github.com/banshee-data/tuio2d/internal/geom"

// SessionHolder is the mixin shared by every per-contact message: a stable
// session id assigned by the server's allocator.
type SessionHolder struct {
	SessionID SessionID
}

// TypeUserHolder is the mixin carrying an application type and optional
// user id, transmitted packed as a TUID.
type TypeUserHolder struct {
	TypeID TypeID
	UserID UserID
}

// TUID returns the packed wire representation of the type/user pair.
func (h TypeUserHolder) TUID() TUID { return PackTUID(h.UserID, h.TypeID) }

// ComponentHolder is the mixin identifying which sensor/device component
// produced a contact.
type ComponentHolder struct {
	ComponentID ComponentID
}

// OutputMode selects whether a 2D-or-3D capable message emits its 2D
// record, its 3D record, or both.
type OutputMode int

const (
	// OutputMode2D emits only the 2D wire record.
	OutputMode2D OutputMode = iota
	// OutputMode3D emits only the 3D wire record.
	OutputMode3D
	// OutputModeBoth emits both records.
	OutputModeBoth
)

// PositionHolder2D/3D mixins carry a contact's position.
type PositionHolder2D struct{ Position geom.Point2D }
type PositionHolder3D struct{ Position geom.Point3D }

// VelocityHolder2D/3D mixins carry an optional velocity estimate.
type VelocityHolder2D struct {
	Velocity  geom.Velocity2D
	Available bool
}
type VelocityHolder3D struct {
	Velocity  geom.Velocity3D
	Available bool
}

// AccelHolder mixin carries an optional scalar movement-acceleration
// estimate (magnitude only, direction is implied by velocity).
type AccelHolder struct {
	Accel     geom.MovementAccel
	Available bool
}

// AngleHolder2D/3D mixins carry a token's orientation.
type AngleHolder2D struct{ Angle geom.Angle2D }
type AngleHolder3D struct{ Angle geom.Angle3 }

// RotationVelocityHolder2D/3D mixins carry an optional angular velocity.
type RotationVelocityHolder2D struct {
	Velocity  geom.RotationVelocity2D
	Available bool
}
type RotationVelocityHolder3D struct {
	Velocity  geom.RotationVelocity3
	Available bool
}

// RotationAccelHolder mixin carries an optional scalar rotational
// acceleration estimate.
type RotationAccelHolder struct {
	Accel     geom.RotationAccel
	Available bool
}

// EllipseHolder mixin carries the bounds message's ellipse shape.
type EllipseHolder struct {
	ShapeMajor, ShapeMinor float64
	Orientation            float64
}

// LinkKind distinguishes physical (wired) from logical (software-level)
// sensor association.
type LinkKind int

const (
	// LinkPhysical is a physically wired association.
	LinkPhysical LinkKind = iota
	// LinkLogical is a software-defined association.
	LinkLogical
)

// LinkEdge is one edge of a link-topology graph: a directed edge between
// two session ids, carrying the (input_port, output_port) pair.
type LinkEdge struct {
	From, To       SessionID
	InPort, OutPort int32
}

// LinkTopology mixin carries a directed graph of session ids; nodes are
// implicit (every session id mentioned by an edge, plus any isolated ids
// listed explicitly). Shape invariants (list/tree) are validated by the
// message types that embed this with stricter requirements (lla, lta).
type LinkTopology struct {
	Kind         LinkKind
	IsolatedNodes []SessionID
	Edges        []LinkEdge
}

// SessionIDs returns every session id referenced by the topology, in a
// deterministic order: isolated nodes first (as declared), then each
// edge's From/To in edge order, de-duplicated.
func (lt LinkTopology) SessionIDs() []SessionID {
	seen := make(map[SessionID]bool)
	var out []SessionID
	add := func(s SessionID) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, id := range lt.IsolatedNodes {
		add(id)
	}
	for _, e := range lt.Edges {
		add(e.From)
		add(e.To)
	}
	return out
}
