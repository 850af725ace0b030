package bytewindow

import (
	"io"
	"math"

	"github.com/pkg/errors"
)

// ReadUint8 reads a single byte
func (w *Window) ReadUint8() (uint8, error) {
	b, err := w.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadUint16 reads a big endian uint16
func (w *Window) ReadUint16() (uint16, error) {
	b, err := w.take(2)
	if err != nil {
		return 0, err
	}
	return byteOrder.Uint16(b), nil
}

// ReadUint32 reads a big endian uint32
func (w *Window) ReadUint32() (uint32, error) {
	b, err := w.take(4)
	if err != nil {
		return 0, err
	}
	return byteOrder.Uint32(b), nil
}

// ReadUint64 reads a big endian uint64
func (w *Window) ReadUint64() (uint64, error) {
	b, err := w.take(8)
	if err != nil {
		return 0, err
	}
	return byteOrder.Uint64(b), nil
}

// ReadInt8 reads a single byte as two's complement
func (w *Window) ReadInt8() (int8, error) {
	v, err := w.ReadUint8()
	return int8(v), err
}

// ReadInt16 reads a big endian int16
func (w *Window) ReadInt16() (int16, error) {
	v, err := w.ReadUint16()
	return int16(v), err
}

// ReadInt32 reads a big endian int32
func (w *Window) ReadInt32() (int32, error) {
	v, err := w.ReadUint32()
	return int32(v), err
}

// ReadInt64 reads a big endian int64
func (w *Window) ReadInt64() (int64, error) {
	v, err := w.ReadUint64()
	return int64(v), err
}

// ReadFloat32 reads a big endian IEEE 754 float32
func (w *Window) ReadFloat32() (float32, error) {
	v, err := w.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadFloat64 reads a big endian IEEE 754 float64
func (w *Window) ReadFloat64() (float64, error) {
	v, err := w.ReadUint64()
	return math.Float64frombits(v), err
}

// Next returns the next n bytes of the source without copying and advances past them
func (w *Window) Next(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidRange, "negative length %d", n)
	}
	return w.take(n)
}

// Read implements io.Reader
//
// unlike the fixed width reads this may read less than len(p).
func (w *Window) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if w.IsExhausted() {
		return 0, io.EOF
	}

	n := copy(p, w.buf[w.pos:])
	w.pos += n
	return n, nil
}

// ReadAt implements io.ReaderAt, off is relative to the start of the window
// and the position is not touched
func (w *Window) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, errors.Wrapf(ErrOutOfBounds, "negative offset %d", off)
	}

	if off >= int64(len(w.buf)) {
		return 0, io.EOF
	}

	n := copy(p, w.buf[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// WriteUint8 writes a single byte
func (w *Window) WriteUint8(val uint8) error {
	b, err := w.room(1)
	if err != nil {
		return err
	}
	b[0] = val
	return nil
}

// WriteUint16 writes a big endian uint16
func (w *Window) WriteUint16(val uint16) error {
	b, err := w.room(2)
	if err != nil {
		return err
	}
	byteOrder.PutUint16(b, val)
	return nil
}

// WriteUint32 writes a big endian uint32
func (w *Window) WriteUint32(val uint32) error {
	b, err := w.room(4)
	if err != nil {
		return err
	}
	byteOrder.PutUint32(b, val)
	return nil
}

// WriteUint64 writes a big endian uint64
func (w *Window) WriteUint64(val uint64) error {
	b, err := w.room(8)
	if err != nil {
		return err
	}
	byteOrder.PutUint64(b, val)
	return nil
}

// WriteInt8 writes an int8 as a single two's complement byte
func (w *Window) WriteInt8(val int8) error { return w.WriteUint8(uint8(val)) }

// WriteInt16 writes a big endian int16
func (w *Window) WriteInt16(val int16) error { return w.WriteUint16(uint16(val)) }

// WriteInt32 writes a big endian int32
func (w *Window) WriteInt32(val int32) error { return w.WriteUint32(uint32(val)) }

// WriteInt64 writes a big endian int64
func (w *Window) WriteInt64(val int64) error { return w.WriteUint64(uint64(val)) }

// WriteFloat32 writes a big endian IEEE 754 float32
func (w *Window) WriteFloat32(val float32) error {
	return w.WriteUint32(math.Float32bits(val))
}

// WriteFloat64 writes a big endian IEEE 754 float64
func (w *Window) WriteFloat64(val float64) error {
	return w.WriteUint64(math.Float64bits(val))
}

// Write implements io.Writer, either all of data fits or nothing is written
func (w *Window) Write(data []byte) (int, error) {
	b, err := w.room(len(data))
	if err != nil {
		return 0, err
	}
	return copy(b, data), nil
}

// MustWrite is a Write that panics on overflow
func (w *Window) MustWrite(data []byte) {
	if _, err := w.Write(data); err != nil {
		panic(err)
	}
}

// WriteString writes the raw bytes of val
func (w *Window) WriteString(val string) error {
	b, err := w.room(len(val))
	if err != nil {
		return err
	}
	copy(b, val)
	return nil
}
