package messages

// Message is implemented by every member of the catalogue. Composition is
// by mixin containment, not inheritance: a concrete type like Pointer
// embeds SessionHolder, TypeUserHolder, etc. directly.
type Message interface {
	// Clone returns a deep copy.
	Clone() Message
	// Equal reports structural equality with another message of the same
	// concrete type (false if the concrete types differ).
	Equal(Message) bool
	// String returns a human-readable, pretty-printed representation.
	String() string
}
