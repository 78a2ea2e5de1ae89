package adaptor

import (
	"regexp"

	"github.com/banshee-data/tuio2d/internal/messages"
)

// Filter drops Symbol messages whose Data does not match Pattern, and
// passes every other message type through unchanged (spec §5 regex
// filter).
type Filter struct {
	Pattern *regexp.Regexp
}

// Process applies the regex filter.
func (f Filter) Process(in []messages.Message) []messages.Message {
	out := make([]messages.Message, 0, len(in))
	for _, msg := range in {
		if sym, ok := msg.(*messages.Symbol); ok {
			if f.Pattern != nil && !f.Pattern.MatchString(sym.Data) {
				continue
			}
		}
		out = append(out, msg)
	}
	return out
}
