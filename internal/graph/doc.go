// Package graph is intentionally narrow: it supports exactly the
// operations spec §4.B's link/list/tree association messages and the
// sensor-topology duplicate-detector need — node/edge CRUD, weak/strong
// component splitting, cycle and shape predicates, and a
// canonicalization-based isomorphism comparator. It is not a general
// graph library.
package graph
