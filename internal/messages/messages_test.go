package messages

import (
	"testing"

	"github.com/banshee-data/tuio2d/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip asserts that cloning a message produces a structurally equal
// but independently mutable copy: decode(encode(m)) == m, with Clone/Equal
// standing in for the wire codec's encode/decode at the catalogue level.
func roundTrip(t *testing.T, m Message) Message {
	t.Helper()
	c := m.Clone()
	require.True(t, m.Equal(c), "clone must equal original")
	require.True(t, c.Equal(m), "Equal must be symmetric")
	assert.NotEmpty(t, c.String())
	return c
}

func TestFrameRoundTrip(t *testing.T) {
	t.Parallel()
	f := &Frame{FrameID: 7, Timetag: NewTimetag(100, 0), SourceAddress: 0xC0A80001, InstanceID: 1, AppName: "app", SensorWidth: 1920, SensorHeight: 1080}
	c := roundTrip(t, f).(*Frame)
	c.FrameID = 8
	assert.EqualValues(t, 7, f.FrameID, "clone mutation must not affect original")
}

func TestAliveRoundTripAndIndependence(t *testing.T) {
	t.Parallel()
	a := &Alive{SessionIDs: []SessionID{1, 2, 3}}
	c := roundTrip(t, a).(*Alive)
	c.SessionIDs[0] = 99
	assert.Equal(t, SessionID(1), a.SessionIDs[0], "slice clone must be deep, not aliased")

	other := &Alive{SessionIDs: []SessionID{1, 2}}
	assert.False(t, a.Equal(other))
}

func TestPointerRoundTrip(t *testing.T) {
	t.Parallel()
	p := &Pointer{
		SessionHolder:    SessionHolder{SessionID: 4},
		TypeUserHolder:   TypeUserHolder{TypeID: 2, UserID: 9},
		ComponentHolder:  ComponentHolder{ComponentID: 1},
		PositionHolder3D: PositionHolder3D{Position: geom.Point3D{X: 1, Y: 2, Z: 3}},
		VelocityHolder3D: VelocityHolder3D{Velocity: geom.Velocity3D{X: 0.1, Y: 0.2, Z: 0.3}, Available: true},
		AccelHolder:      AccelHolder{Accel: 5, Available: true},
	}
	roundTrip(t, p)

	other := p.Clone().(*Pointer)
	other.SessionID = 5
	assert.False(t, p.Equal(other))
	assert.False(t, p.Equal(&Frame{}))
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()
	tok := &Token{
		SessionHolder:            SessionHolder{SessionID: 1},
		TypeUserHolder:           TypeUserHolder{TypeID: 3},
		PositionHolder3D:         PositionHolder3D{Position: geom.Point3D{X: 1}},
		AngleHolder3D:            AngleHolder3D{Angle: geom.Angle3{Yaw: 0.1}},
		RotationVelocityHolder3D: RotationVelocityHolder3D{Available: true},
		RotationAccelHolder:      RotationAccelHolder{Accel: 1, Available: true},
	}
	roundTrip(t, tok)
}

func TestBoundsRoundTrip(t *testing.T) {
	t.Parallel()
	b := &Bounds{
		SessionHolder:    SessionHolder{SessionID: 2},
		PositionHolder3D: PositionHolder3D{Position: geom.Point3D{X: 1, Y: 1}},
		EllipseHolder:    EllipseHolder{ShapeMajor: 10, ShapeMinor: 5, Orientation: 0.2},
		Area:             50,
	}
	roundTrip(t, b)
}

func TestSymbolRoundTrip(t *testing.T) {
	t.Parallel()
	s := &Symbol{SessionHolder: SessionHolder{SessionID: 3}, Data: "tag:1"}
	roundTrip(t, s)
}

func TestAreaRoundTripAndIndependence(t *testing.T) {
	t.Parallel()
	a := &Area{SessionHolder: SessionHolder{SessionID: 1}, Spans: []DiscSpan{{Center: geom.Point2D{X: 1, Y: 1}, Radius: 2}}}
	c := roundTrip(t, a).(*Area)
	c.Spans[0].Radius = 99
	assert.Equal(t, 2.0, a.Spans[0].Radius)
}

func TestLinkRoundTrip(t *testing.T) {
	t.Parallel()
	l := &Link{
		SessionHolder: SessionHolder{SessionID: 1},
		Topology: LinkTopology{
			Kind:  LinkPhysical,
			Edges: []LinkEdge{{From: 1, To: 2, InPort: 0, OutPort: 1}},
		},
	}
	c := roundTrip(t, l).(*Link)
	c.Topology.Edges[0].InPort = 9
	assert.EqualValues(t, 0, l.Topology.Edges[0].InPort, "topology clone must be deep")
}

func TestLinkedListValidateAcceptsChainRejectsBranch(t *testing.T) {
	t.Parallel()
	chain := &LinkedList{Topology: LinkTopology{Edges: []LinkEdge{{From: 1, To: 2}, {From: 2, To: 3}}}}
	assert.NoError(t, chain.Validate())
	roundTrip(t, chain)

	branch := &LinkedList{Topology: LinkTopology{Edges: []LinkEdge{{From: 1, To: 2}, {From: 1, To: 3}}}}
	err := branch.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTopologyViolated)
}

func TestLinkedListValidateAcceptsSingleIsolatedNode(t *testing.T) {
	t.Parallel()
	single := &LinkedList{Topology: LinkTopology{IsolatedNodes: []SessionID{1}}}
	assert.NoError(t, single.Validate())
}

func TestLinkedTreeValidateAcceptsStarRejectsCycle(t *testing.T) {
	t.Parallel()
	star := &LinkedTree{Topology: LinkTopology{Edges: []LinkEdge{{From: 1, To: 2}, {From: 1, To: 3}}}}
	assert.NoError(t, star.Validate())
	roundTrip(t, star)

	cyclic := &LinkedTree{Topology: LinkTopology{Edges: []LinkEdge{{From: 1, To: 2}, {From: 2, To: 1}}}}
	err := cyclic.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTopologyViolated)
}

func TestSensorRoundTrip(t *testing.T) {
	t.Parallel()
	s := &Sensor{UUID: NewUUID(), TranslationMode: TranslationSetupOnce, Purpose: PurposeObserver}
	roundTrip(t, s)
}

func TestViewportRoundTrip(t *testing.T) {
	t.Parallel()
	v := &Viewport{UUID: NewUUID(), Width: 100, Height: 200, Center: geom.Point2D{X: 50, Y: 100}, Orientation: 1.5}
	roundTrip(t, v)
}

func TestGroupRoundTrip(t *testing.T) {
	t.Parallel()
	g := &Group{UUID: NewUUID(), GroupUUID: NewUUID()}
	roundTrip(t, g)
}

func TestNeighbourRoundTrip(t *testing.T) {
	t.Parallel()
	n := &Neighbour{UUID: NewUUID(), NeighbourUUID: NewUUID(), Azimuth: 0.1, Altitude: 0.2, Distance: 3.0}
	roundTrip(t, n)
}

func TestTUIDPackUnpack(t *testing.T) {
	t.Parallel()
	tu := PackTUID(42, 7)
	u, ty := tu.Unpack()
	assert.EqualValues(t, 42, u)
	assert.EqualValues(t, 7, ty)
	assert.Equal(t, "tu(42,7)", tu.String())
}

func TestTimetagPackUnpack(t *testing.T) {
	t.Parallel()
	tt := NewTimetag(100, 1<<31)
	assert.EqualValues(t, 100, tt.Seconds())
	assert.EqualValues(t, 1<<31, tt.Fraction())
	assert.NotEqual(t, Immediate, tt)
}

func TestLinkTopologySessionIDsDeduplicatesInOrder(t *testing.T) {
	t.Parallel()
	topo := LinkTopology{
		IsolatedNodes: []SessionID{5},
		Edges:         []LinkEdge{{From: 1, To: 2}, {From: 2, To: 1}},
	}
	assert.Equal(t, []SessionID{5, 1, 2}, topo.SessionIDs())
}
