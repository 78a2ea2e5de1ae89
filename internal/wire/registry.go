package wire

import (
	"log"

	"github.com/banshee-data/tuio2d/internal/messages"
)

// Decoder turns one wire Record into exactly one typed message, or an
// error. A "both" output-mode message travels as two records on separate
// 2D and 3D paths, so it decodes to two messages, one per record.
type Decoder func(r Record) (messages.Message, error)

// Registry maps a wire path to the decoder responsible for it. Unknown
// paths are not an error (spec §4.D): the record is discarded and logged.
type Registry struct {
	decoders map[string]Decoder
}

// NewRegistry returns a Registry pre-populated with every catalogue message
// type's decoder.
func NewRegistry() *Registry {
	reg := &Registry{decoders: make(map[string]Decoder)}
	registerFrameCodecs(reg)
	registerPointerCodecs(reg)
	registerBoundsSymbolCodecs(reg)
	registerLinkCodecs(reg)
	registerSensorCodecs(reg)
	return reg
}

// Register installs or replaces the decoder for a path.
func (reg *Registry) Register(path string, dec Decoder) {
	reg.decoders[path] = dec
}

// DecodeBundle decodes every record in a wire Bundle into messages, in
// encounter order. Records whose path has no registered decoder are
// silently dropped (logged at a low level) rather than failing the whole
// bundle. A record that fails to decode (parse_rejected, topology_violated,
// ...) is logged at warn and dropped the same way (spec §4.D/§7: processing
// continues past a bad record instead of aborting the bundle).
func (reg *Registry) DecodeBundle(b *Bundle) ([]messages.Message, error) {
	var out []messages.Message
	for _, rec := range b.Records() {
		dec, ok := reg.decoders[rec.Path]
		if !ok {
			log.Printf("wire: discarding record with unknown path %q", rec.Path)
			continue
		}
		msg, err := dec(rec)
		if err != nil {
			log.Printf("wire: dropping %q record: %v", rec.Path, err)
			continue
		}
		out = append(out, msg)
	}
	return out, nil
}
