package wire

import (
	"fmt"

	"github.com/banshee-data/tuio2d/internal/messages"
)

// Record is one decoded OSC-style message: a path, its type-tag string (no
// leading comma), and its arguments in declared order. Each element of Args
// is one of int32, float32, string, []byte, or messages.Timetag, matching
// the type tag at the same index.
type Record struct {
	Path     string
	TypeTags string
	Args     []any
}

// EncodeRecord serializes a Record to its wire bytes: path string, comma
// prefixed type-tag string, then each argument in order.
func EncodeRecord(r Record) ([]byte, error) {
	if len(r.TypeTags) != len(r.Args) {
		return nil, fmt.Errorf("wire: record %s: %d type tags but %d args", r.Path, len(r.TypeTags), len(r.Args))
	}
	buf := appendString(nil, r.Path)
	buf = appendString(buf, ","+r.TypeTags)
	for i, tag := range []byte(r.TypeTags) {
		switch tag {
		case 'i':
			v, ok := r.Args[i].(int32)
			if !ok {
				return nil, fmt.Errorf("wire: record %s: arg %d: want int32 for tag i", r.Path, i)
			}
			buf = appendInt32(buf, v)
		case 'f':
			v, ok := r.Args[i].(float32)
			if !ok {
				return nil, fmt.Errorf("wire: record %s: arg %d: want float32 for tag f", r.Path, i)
			}
			buf = appendFloat32(buf, v)
		case 's':
			v, ok := r.Args[i].(string)
			if !ok {
				return nil, fmt.Errorf("wire: record %s: arg %d: want string for tag s", r.Path, i)
			}
			buf = appendString(buf, v)
		case 'b':
			v, ok := r.Args[i].([]byte)
			if !ok {
				return nil, fmt.Errorf("wire: record %s: arg %d: want []byte for tag b", r.Path, i)
			}
			buf = appendBlob(buf, v)
		case 't':
			v, ok := r.Args[i].(messages.Timetag)
			if !ok {
				return nil, fmt.Errorf("wire: record %s: arg %d: want Timetag for tag t", r.Path, i)
			}
			buf = appendTimetag(buf, v)
		default:
			return nil, fmt.Errorf("wire: record %s: unsupported type tag %q", r.Path, string(tag))
		}
	}
	return buf, nil
}

// DecodeRecord parses a Record from wire bytes (path string followed by a
// comma-prefixed type-tag string followed by its arguments).
func DecodeRecord(buf []byte) (Record, error) {
	path, offset, err := readString(buf, 0)
	if err != nil {
		return Record{}, fmt.Errorf("wire: record path: %w", err)
	}
	rawTags, offset, err := readString(buf, offset)
	if err != nil {
		return Record{}, fmt.Errorf("wire: record %s: type tags: %w", path, err)
	}
	if len(rawTags) == 0 || rawTags[0] != ',' {
		return Record{}, fmt.Errorf("wire: record %s: type-tag string missing leading comma", path)
	}
	tags := rawTags[1:]
	args := make([]any, 0, len(tags))
	for _, tag := range []byte(tags) {
		switch tag {
		case 'i':
			var v int32
			v, offset, err = readInt32(buf, offset)
			args = append(args, v)
		case 'f':
			var v float32
			v, offset, err = readFloat32(buf, offset)
			args = append(args, v)
		case 's':
			var v string
			v, offset, err = readString(buf, offset)
			args = append(args, v)
		case 'b':
			var v []byte
			v, offset, err = readBlob(buf, offset)
			args = append(args, v)
		case 't':
			var v messages.Timetag
			v, offset, err = readTimetag(buf, offset)
			args = append(args, v)
		default:
			return Record{}, fmt.Errorf("wire: record %s: unsupported type tag %q", path, string(tag))
		}
		if err != nil {
			return Record{}, fmt.Errorf("wire: record %s: arg: %w", path, err)
		}
	}
	return Record{Path: path, TypeTags: tags, Args: args}, nil
}
