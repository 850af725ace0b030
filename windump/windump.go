// Package windump decodes runs of fixed width values out of a bytewindow.Window
//
// it backs the windump command, which prints every value in a file (or a
// range of it) and can summarize integer values with a histogram.
//
// to try it out,
//
// ```
// go get github.com/bitfashion/fashiontools/cmd/windump
// ```
package windump

import (
	"fmt"
	"io"
	"math"

	"github.com/bitfashion/fashiontools/bytewindow"
	"github.com/codahale/hdrhistogram"
	"github.com/pkg/errors"
)

// MaxTrackable is the largest value Stats can record
const MaxTrackable = 1<<62 - 1

// Record is a single decoded value along with the window offset it was read from
type Record struct {
	Offset int
	Value  interface{}
}

// Dump decodes consecutive values of kind k from the current position of w
// until fewer than k.Width() bytes remain
//
// any trailing bytes are left unread, so w.Remaining() reports how many there were.
func Dump(w *bytewindow.Window, k bytewindow.Kind) ([]Record, error) {
	width := k.Width()
	if width == 0 {
		return nil, errors.Errorf("cannot dump values of kind %v", k)
	}

	records := make([]Record, 0, w.Remaining()/width)
	for w.Remaining() >= width {
		off := w.Tell()

		v, err := w.ReadKind(k)
		if err != nil {
			return nil, err
		}

		records = append(records, Record{off, v})
	}

	return records, nil
}

// int64Val returns the value of an integer record as an int64
func int64Val(v interface{}) (int64, error) {
	switch i := v.(type) {
	case int8:
		return int64(i), nil
	case uint8:
		return int64(i), nil
	case int16:
		return int64(i), nil
	case uint16:
		return int64(i), nil
	case int32:
		return int64(i), nil
	case uint32:
		return int64(i), nil
	case int64:
		return i, nil
	case uint64:
		if i > math.MaxInt64 {
			return 0, errors.Errorf("%d overflows int64", i)
		}
		return int64(i), nil
	}

	return 0, errors.Errorf("%T is not an integer", v)
}

// Stats records every value in records into a histogram with 3 significant figures
//
// only integer values in [0, MaxTrackable] can be recorded.
func Stats(records []Record) (*hdrhistogram.Histogram, error) {
	vals := make([]int64, len(records))
	max := int64(2)

	for i, r := range records {
		v, err := int64Val(r.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "record at offset %d", r.Offset)
		}

		if v < 0 || v > MaxTrackable {
			return nil, errors.Errorf("record at offset %d out of range (%d)", r.Offset, v)
		}

		if v > max {
			max = v
		}

		vals[i] = v
	}

	h := hdrhistogram.New(1, max, 3)
	for i, v := range vals {
		if err := h.RecordValue(v); err != nil {
			return nil, errors.Wrapf(err, "record at offset %d", records[i].Offset)
		}
	}

	return h, nil
}

// Print writes one "[offset] value" line per record to out
func Print(out io.Writer, records []Record) error {
	for _, r := range records {
		if _, err := fmt.Fprintf(out, "\t[%v] %v\n", r.Offset, r.Value); err != nil {
			return err
		}
	}
	return nil
}
