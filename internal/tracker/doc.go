// Package tracker turns raw per-slot multitouch events into the contact
// message catalogue: a per-slot state machine (empty/pending/live/dying),
// Type-A (anonymous, nearest-neighbour-reassigned) and Type-B
// (slot-addressed) merge conventions, and bounded-history kinematic
// estimators (forward-difference velocity, polynomial-derivative
// acceleration).
package tracker
