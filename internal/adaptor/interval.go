package adaptor

import "github.com/banshee-data/tuio2d/internal/messages"

// AppendOnInterval re-emits a fixed set of messages (typically sensor
// topology metadata) every Nth invocation, clone-deep so downstream stages
// can safely mutate them (spec §5 append-on-interval). Grounded on the same
// "do X every Nth tick" counter-gated shape as the topology publisher.
type AppendOnInterval struct {
	Every    int
	Messages []messages.Message

	counter int
}

// Process appends clones of Messages to the output every Every-th call.
func (a *AppendOnInterval) Process(in []messages.Message) []messages.Message {
	a.counter++
	if a.Every <= 0 || a.counter%a.Every != 0 {
		return in
	}
	out := make([]messages.Message, len(in), len(in)+len(a.Messages))
	copy(out, in)
	for _, msg := range a.Messages {
		out = append(out, msg.Clone())
	}
	return out
}
