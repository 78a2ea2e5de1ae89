package wire

// All strings are null-terminated and padded to a 4-byte boundary; blobs
// are length-prefixed and padded likewise; integers and floats are
// big-endian 32-bit; timetags are big-endian 64-bit.

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/banshee-data/tuio2d/internal/messages"
)

// BundleMagic is the fixed 8-byte ("#bundle\0") marker beginning every
// bundle.
const BundleMagic = "#bundle\x00"

func pad4(n int) int {
	r := n % 4
	if r == 0 {
		return 0
	}
	return 4 - r
}

// appendString writes a null-terminated, 4-byte-padded OSC string.
func appendString(buf []byte, s string) []byte {
	buf = append(buf, s...)
	buf = append(buf, 0)
	for i := 0; i < pad4(len(s)+1); i++ {
		buf = append(buf, 0)
	}
	return buf
}

// readString reads a null-terminated, 4-byte-padded OSC string starting at
// offset. Returns the decoded string and the offset immediately after the
// padded field.
func readString(buf []byte, offset int) (string, int, error) {
	end := offset
	for end < len(buf) && buf[end] != 0 {
		end++
	}
	if end >= len(buf) {
		return "", 0, fmt.Errorf("wire: unterminated string at offset %d", offset)
	}
	s := string(buf[offset:end])
	total := end - offset + 1
	total += pad4(total)
	next := offset + total
	if next > len(buf) {
		return "", 0, fmt.Errorf("wire: truncated string padding at offset %d", offset)
	}
	return s, next, nil
}

// appendInt32 writes a big-endian int32.
func appendInt32(buf []byte, v int32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	return append(buf, b[:]...)
}

func readInt32(buf []byte, offset int) (int32, int, error) {
	if offset+4 > len(buf) {
		return 0, 0, fmt.Errorf("wire: truncated int32 at offset %d", offset)
	}
	return int32(binary.BigEndian.Uint32(buf[offset : offset+4])), offset + 4, nil
}

// appendFloat32 writes a big-endian IEEE-754 float32.
func appendFloat32(buf []byte, v float32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], math.Float32bits(v))
	return append(buf, b[:]...)
}

func readFloat32(buf []byte, offset int) (float32, int, error) {
	if offset+4 > len(buf) {
		return 0, 0, fmt.Errorf("wire: truncated float32 at offset %d", offset)
	}
	return math.Float32frombits(binary.BigEndian.Uint32(buf[offset : offset+4])), offset + 4, nil
}

// appendTimetag writes a big-endian 64-bit timetag.
func appendTimetag(buf []byte, t messages.Timetag) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(t))
	return append(buf, b[:]...)
}

func readTimetag(buf []byte, offset int) (messages.Timetag, int, error) {
	if offset+8 > len(buf) {
		return 0, 0, fmt.Errorf("wire: truncated timetag at offset %d", offset)
	}
	return messages.Timetag(binary.BigEndian.Uint64(buf[offset : offset+8])), offset + 8, nil
}

// appendBlob writes a length-prefixed, 4-byte-padded blob.
func appendBlob(buf []byte, b []byte) []byte {
	buf = appendInt32(buf, int32(len(b)))
	buf = append(buf, b...)
	for i := 0; i < pad4(len(b)); i++ {
		buf = append(buf, 0)
	}
	return buf
}

func readBlob(buf []byte, offset int) ([]byte, int, error) {
	n, offset, err := readInt32(buf, offset)
	if err != nil {
		return nil, 0, err
	}
	if n < 0 || offset+int(n) > len(buf) {
		return nil, 0, fmt.Errorf("wire: truncated blob at offset %d", offset)
	}
	b := make([]byte, n)
	copy(b, buf[offset:offset+int(n)])
	next := offset + int(n) + pad4(int(n))
	if next > len(buf) {
		return nil, 0, fmt.Errorf("wire: truncated blob padding at offset %d", offset)
	}
	return b, next, nil
}
