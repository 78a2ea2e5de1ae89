package wire

import (
	"fmt"

	"github.com/banshee-data/tuio2d/internal/messages"
)

// argBuilder accumulates a record's type-tag string and argument list in
// lockstep, so a codec can never emit a tag/value pair out of sync.
type argBuilder struct {
	tags string
	args []any
}

func (b *argBuilder) i(v int32) {
	b.tags += "i"
	b.args = append(b.args, v)
}

func (b *argBuilder) boolAsInt(v bool) {
	if v {
		b.i(1)
	} else {
		b.i(0)
	}
}

func (b *argBuilder) f(v float64) {
	b.tags += "f"
	b.args = append(b.args, float32(v))
}

func (b *argBuilder) s(v string) {
	b.tags += "s"
	b.args = append(b.args, v)
}

func (b *argBuilder) t(v messages.Timetag) {
	b.tags += "t"
	b.args = append(b.args, v)
}

func (b *argBuilder) blob(v []byte) {
	b.tags += "b"
	b.args = append(b.args, v)
}

// argReader consumes a decoded Record's Args slice in order, matching the
// type each accessor expects against the corresponding type tag.
type argReader struct {
	path string
	tags string
	args []any
	pos  int
}

func newArgReader(r Record) *argReader {
	return &argReader{path: r.Path, tags: r.TypeTags, args: r.Args}
}

func (r *argReader) remaining() int { return len(r.args) - r.pos }

func (r *argReader) expect(tag byte) error {
	if r.pos >= len(r.args) {
		return fmt.Errorf("wire: %s: expected arg %d of tag %q, got none", r.path, r.pos, string(tag))
	}
	if r.pos >= len(r.tags) || r.tags[r.pos] != tag {
		return fmt.Errorf("wire: %s: arg %d: expected tag %q, got %q", r.path, r.pos, string(tag), r.tagAt(r.pos))
	}
	return nil
}

func (r *argReader) tagAt(i int) string {
	if i < len(r.tags) {
		return string(r.tags[i])
	}
	return "?"
}

func (r *argReader) i() (int32, error) {
	if err := r.expect('i'); err != nil {
		return 0, err
	}
	v, ok := r.args[r.pos].(int32)
	if !ok {
		return 0, fmt.Errorf("wire: %s: arg %d: not an int32", r.path, r.pos)
	}
	r.pos++
	return v, nil
}

func (r *argReader) boolFromInt() (bool, error) {
	v, err := r.i()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

func (r *argReader) f() (float64, error) {
	if err := r.expect('f'); err != nil {
		return 0, err
	}
	v, ok := r.args[r.pos].(float32)
	if !ok {
		return 0, fmt.Errorf("wire: %s: arg %d: not a float32", r.path, r.pos)
	}
	r.pos++
	return float64(v), nil
}

func (r *argReader) s() (string, error) {
	if err := r.expect('s'); err != nil {
		return "", err
	}
	v, ok := r.args[r.pos].(string)
	if !ok {
		return "", fmt.Errorf("wire: %s: arg %d: not a string", r.path, r.pos)
	}
	r.pos++
	return v, nil
}

func (r *argReader) tt() (messages.Timetag, error) {
	if err := r.expect('t'); err != nil {
		return 0, err
	}
	v, ok := r.args[r.pos].(messages.Timetag)
	if !ok {
		return 0, fmt.Errorf("wire: %s: arg %d: not a timetag", r.path, r.pos)
	}
	r.pos++
	return v, nil
}

func (r *argReader) blob() ([]byte, error) {
	if err := r.expect('b'); err != nil {
		return nil, err
	}
	v, ok := r.args[r.pos].([]byte)
	if !ok {
		return nil, fmt.Errorf("wire: %s: arg %d: not a blob", r.path, r.pos)
	}
	r.pos++
	return v, nil
}
