package wire

import (
	"bytes"
	"fmt"

	"github.com/banshee-data/tuio2d/internal/messages"
)

// Element is one size-prefixed payload inside a Bundle: either a nested
// Bundle or a leaf Record, never both.
type Element struct {
	Bundle *Bundle
	Record *Record
}

// Bundle is the top-level wire framing (spec §4.D): "#bundle\0", an 8-byte
// timetag, then a sequence of size-prefixed elements. Each element is
// itself either a nested bundle (recognized by the "#bundle\0" magic at its
// start) or a message record.
type Bundle struct {
	Timetag  messages.Timetag
	Elements []Element
}

// EncodeBundle serializes a Bundle to its wire bytes.
func EncodeBundle(b *Bundle) ([]byte, error) {
	buf := append([]byte(nil), BundleMagic...)
	buf = appendTimetag(buf, b.Timetag)
	for i, el := range b.Elements {
		var payload []byte
		var err error
		switch {
		case el.Bundle != nil && el.Record != nil:
			return nil, fmt.Errorf("wire: bundle element %d: has both a nested bundle and a record", i)
		case el.Bundle != nil:
			payload, err = EncodeBundle(el.Bundle)
		case el.Record != nil:
			payload, err = EncodeRecord(*el.Record)
		default:
			return nil, fmt.Errorf("wire: bundle element %d: empty", i)
		}
		if err != nil {
			return nil, err
		}
		buf = appendInt32(buf, int32(len(payload)))
		buf = append(buf, payload...)
	}
	return buf, nil
}

// DecodeBundle parses a Bundle from wire bytes, recursing into nested
// bundles.
func DecodeBundle(buf []byte) (*Bundle, error) {
	if len(buf) < len(BundleMagic) || string(buf[:len(BundleMagic)]) != BundleMagic {
		return nil, fmt.Errorf("wire: missing %q magic", BundleMagic)
	}
	offset := len(BundleMagic)
	tt, offset, err := readTimetag(buf, offset)
	if err != nil {
		return nil, fmt.Errorf("wire: bundle timetag: %w", err)
	}
	b := &Bundle{Timetag: tt}
	for offset < len(buf) {
		size, next, err := readInt32(buf, offset)
		if err != nil {
			return nil, fmt.Errorf("wire: bundle element size: %w", err)
		}
		offset = next
		if size < 0 || offset+int(size) > len(buf) {
			return nil, fmt.Errorf("wire: bundle element: truncated payload (size %d at offset %d)", size, offset)
		}
		payload := buf[offset : offset+int(size)]
		offset += int(size)

		if bytes.HasPrefix(payload, []byte(BundleMagic)) {
			nested, err := DecodeBundle(payload)
			if err != nil {
				return nil, err
			}
			b.Elements = append(b.Elements, Element{Bundle: nested})
			continue
		}
		rec, err := DecodeRecord(payload)
		if err != nil {
			return nil, err
		}
		b.Elements = append(b.Elements, Element{Record: &rec})
	}
	return b, nil
}

// Records returns every leaf Record in the bundle, flattening nested
// bundles depth-first in encounter order.
func (b *Bundle) Records() []Record {
	var out []Record
	for _, el := range b.Elements {
		switch {
		case el.Record != nil:
			out = append(out, *el.Record)
		case el.Bundle != nil:
			out = append(out, el.Bundle.Records()...)
		}
	}
	return out
}
