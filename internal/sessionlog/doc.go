// Package sessionlog is an optional sqlite-backed append-only log of
// session-id alloc/release events and emitted bundle summaries. It exists
// to make the alive-set invariants of spec.md §8 inspectable after the
// fact; nothing in the wire protocol or the allocator depends on it.
package sessionlog
