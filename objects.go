package fashiontools

import (
	"fmt"
	"math"
	"strconv"

	"github.com/bitfashion/fashiontools/bytewindow"
	"github.com/pkg/errors"
)

// IntOf decodes the first 4 bytes of b as a big endian int32
func IntOf(b []byte) (int32, error) { return IntOfAt(b, 0) }

// IntOfAt decodes the 4 bytes starting at b[off] as a big endian int32
//
// b must hold at least off+4 bytes.
func IntOfAt(b []byte, off int) (int32, error) {
	w, err := bytewindow.Wrap(b, off, 4)
	if err != nil {
		return 0, err
	}

	if _, err = w.Seek(0, bytewindow.SeekSet); err != nil {
		return 0, err
	}

	return w.ReadInt32()
}

// LongOf decodes the first 8 bytes of b as a big endian int64
func LongOf(b []byte) (int64, error) { return LongOfAt(b, 0) }

// LongOfAt decodes the 8 bytes starting at b[off] as a big endian int64
//
// b must hold at least off+8 bytes.
func LongOfAt(b []byte, off int) (int64, error) {
	w, err := bytewindow.Wrap(b, off, 8)
	if err != nil {
		return 0, err
	}

	if _, err = w.Seek(0, bytewindow.SeekSet); err != nil {
		return 0, err
	}

	return w.ReadInt64()
}

// IntOfValue coerces val into an int32
//
// an int32 is returned as is, a byte slice is decoded with IntOf and anything
// else is parsed from its default string form.
func IntOfValue(val interface{}) (int32, error) {
	switch v := val.(type) {
	case int32:
		return v, nil
	case []byte:
		return IntOf(v)
	}

	i, err := strconv.ParseInt(fmt.Sprint(val), 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "cannot convert %T to int32", val)
	}

	return int32(i), nil
}

// LongOfValue coerces val into an int64
//
// any integer type is converted directly, floats are truncated toward zero,
// a byte slice is decoded with LongOf and anything else is parsed from its
// default string form.
func LongOfValue(val interface{}) (int64, error) {
	switch v := val.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case float32:
		return truncFloat(float64(v)), nil
	case float64:
		return truncFloat(v), nil
	case []byte:
		return LongOf(v)
	}

	i, err := strconv.ParseInt(fmt.Sprint(val), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "cannot convert %T to int64", val)
	}

	return i, nil
}

// truncFloat drops the fraction of f, saturating at the int64 range, NaN is 0
func truncFloat(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}
