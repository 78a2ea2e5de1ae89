// Package topology publishes sensor-topology metadata (spec §4.C): sensor,
// viewport, group and neighbour declarations that describe the physical
// arrangement of sensors rather than any live contact. The topology rarely
// changes, so the publisher holds a static message set and re-emits it on a
// ticker rather than tracking per-bundle deltas.
package topology
