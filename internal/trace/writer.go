package trace

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// Writer writes a trace file's header and event stream.
type Writer struct {
	w *bufio.Writer
}

// NewWriter wraps w and writes the fixed header magic immediately.
func NewWriter(w io.Writer) (*Writer, error) {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(HeaderMagic); err != nil {
		return nil, fmt.Errorf("trace: write header magic: %w", err)
	}
	return &Writer{w: bw}, nil
}

// WriteAxisRanges writes the given axis-range records followed by the two
// empty terminator records.
func (w *Writer) WriteAxisRanges(ranges []AxisRange) error {
	for _, r := range ranges {
		if err := w.writeAxisRange(r); err != nil {
			return err
		}
	}
	return w.writeTerminator()
}

func (w *Writer) writeTerminator() error {
	for i := 0; i < 2; i++ {
		if err := w.writeAxisRange(AxisRange{}); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeAxisRange(r AxisRange) error {
	fields := [7]int32{r.Code, r.Min, r.Max, r.Fuzz, r.Flat, r.Resolution, r.Value}
	for _, f := range fields {
		if err := binary.Write(w.w, binary.BigEndian, f); err != nil {
			return err
		}
	}
	return nil
}

// WriteEvent appends one event record.
func (w *Writer) WriteEvent(ev EventRecord) error {
	if err := binary.Write(w.w, binary.BigEndian, ev.Sec); err != nil {
		return err
	}
	if err := binary.Write(w.w, binary.BigEndian, ev.Usec); err != nil {
		return err
	}
	if err := binary.Write(w.w, binary.BigEndian, ev.Type); err != nil {
		return err
	}
	if err := binary.Write(w.w, binary.BigEndian, ev.Code); err != nil {
		return err
	}
	return binary.Write(w.w, binary.BigEndian, ev.Value)
}

// Flush flushes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
