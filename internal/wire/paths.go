package wire

// Wire paths for the closed TUIO2-style message catalogue (spec §4.C).
const (
	PathFrame     = "/tuio2/frm"
	PathAlive     = "/tuio2/alv"
	PathPointer2D = "/tuio2/ptr"
	PathPointer3D = "/tuio2/p3d"
	PathToken2D   = "/tuio2/tok"
	PathToken3D   = "/tuio2/t3d"
	PathBounds2D  = "/tuio2/bnd"
	PathBounds3D  = "/tuio2/b3d"
	PathSymbol    = "/tuio2/sym"
	PathArea      = "/tuio2/arg"
	PathLink      = "/tuio2/lia"
	PathLinkList  = "/tuio2/lla"
	PathLinkTree  = "/tuio2/lta"
	PathSensor    = "/dtuio/sensor"
	PathViewport  = "/dtuio/viewport"
	PathGroup     = "/dtuio/group"
	PathNeighbour = "/dtuio/neighbour"
)
