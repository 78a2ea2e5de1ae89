// Package adaptor implements the emission adaptor chain (spec §5): named,
// independently testable stages that transform the contact-tracker's
// payload messages before they reach the server's staging buffer.
// Composition follows the teacher's pipeline-of-named-stages shape, not a
// generic middleware framework — each Adaptor is a small struct with a
// config and a Process method, chained in declared order.
package adaptor

import "github.com/banshee-data/tuio2d/internal/messages"

// Adaptor transforms one frame's payload messages into another. It must
// not mutate the input slice's elements in place; messages are value-like
// enough (Clone) that adaptors should clone before modifying.
type Adaptor interface {
	Process(in []messages.Message) []messages.Message
}

// Chain applies a sequence of Adaptors in order, each seeing the previous
// stage's output.
type Chain struct {
	Stages []Adaptor
}

// Process runs every stage in order.
func (c *Chain) Process(in []messages.Message) []messages.Message {
	out := in
	for _, stage := range c.Stages {
		out = stage.Process(out)
	}
	return out
}

// SubChain wraps a Chain so it can be nested as a single stage inside
// another Chain (spec §5 "sub-chain apply").
type SubChain struct {
	Chain *Chain
}

// Process delegates to the wrapped chain.
func (s SubChain) Process(in []messages.Message) []messages.Message {
	return s.Chain.Process(in)
}
