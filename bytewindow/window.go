// Package bytewindow implements a seekable, bounds checked cursor over a
// borrowed range of a byte slice
//
// a Window never copies the bytes it is given. Wrap projects a range of an
// existing slice, reads decode fixed width values out of it and writes encode
// them back into the same memory, so two windows over one slice see each
// others writes.
//
// all multi byte values are big endian, regardless of the host architecture,
// so whatever one window writes any other window can read back on any machine.
//
// a Window is not safe for concurrent use and does no locking of its own.
// Concurrent readers over the same source are fine, anything that writes
// needs to be serialized by the caller.
package bytewindow

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

var byteOrder = binary.BigEndian

// reference points for Seek, with the same values as their io counterparts
const (
	SeekSet = io.SeekStart
	SeekCur = io.SeekCurrent
	SeekEnd = io.SeekEnd
)

// Window is a fixed size view over a range of a byte slice with its own cursor
type Window struct {
	buf  []byte // source[base : base+length], capacity capped at length
	base int    // offset of buf inside the source slice
	pos  int
}

// Wrap creates a Window over source[offset:offset+length]
//
// source is borrowed, not copied, and the returned window starts at position 0.
func Wrap(source []byte, offset, length int) (*Window, error) {
	if offset < 0 || length < 0 || offset > len(source) || length > len(source)-offset {
		return nil, errors.Wrapf(ErrInvalidRange,
			"cannot wrap %d bytes at offset %d of a %d byte slice", length, offset, len(source))
	}

	end := offset + length
	return &Window{
		buf:  source[offset:end:end],
		base: offset,
	}, nil
}

// MustWrap is Wrap that panics on an invalid range
func MustWrap(source []byte, offset, length int) *Window {
	w, err := Wrap(source, offset, length)
	if err != nil {
		panic(err)
	}
	return w
}

// New creates a Window over all of b
func New(b []byte) *Window {
	return &Window{buf: b[:len(b):len(b)]}
}

// Alloc creates a Window over n fresh zeroed bytes
func Alloc(n int) *Window { return New(make([]byte, n)) }

// Len returns the fixed number of bytes visible through the window
func (w *Window) Len() int { return len(w.buf) }

// Base returns the offset in the source slice that position 0 maps to
func (w *Window) Base() int { return w.base }

// Bytes returns the visible range of the source, without copying
func (w *Window) Bytes() []byte { return w.buf }

// Tell returns the current position
func (w *Window) Tell() int { return w.pos }

// Remaining returns the number of bytes between the position and the end
func (w *Window) Remaining() int { return len(w.buf) - w.pos }

// IsExhausted reports whether the position sits at the end of the window
func (w *Window) IsExhausted() bool { return w.pos == len(w.buf) }

// Seek moves the position relative to whence and returns the new position
//
// the position may be anywhere in [0, Len()], including one past the last byte.
// A target outside of that leaves the position where it was.
func (w *Window) Seek(delta int64, whence int) (int64, error) {
	var ref int64
	switch whence {
	case SeekSet:
		ref = 0
	case SeekCur:
		ref = int64(w.pos)
	case SeekEnd:
		ref = int64(len(w.buf))
	default:
		return int64(w.pos), errors.Wrapf(ErrInvalidWhence, "whence %d", whence)
	}

	// ref is never negative, so this only guards against wrapping past MaxInt64
	if delta > 0 && ref > math.MaxInt64-delta {
		return int64(w.pos), errors.Wrapf(ErrOutOfBounds, "seek by %d overflows", delta)
	}

	target := ref + delta
	if target < 0 || target > int64(len(w.buf)) {
		return int64(w.pos), errors.Wrapf(ErrOutOfBounds,
			"target %d outside [0, %d]", target, len(w.buf))
	}

	w.pos = int(target)
	return target, nil
}

// MustSeek is Seek that panics on error
func (w *Window) MustSeek(delta int64, whence int) int64 {
	p, err := w.Seek(delta, whence)
	if err != nil {
		panic(err)
	}
	return p
}

// Slice creates an independent Window over [offset, offset+length) of this window
//
// the new window shares the source but has its own position, starting at 0.
func (w *Window) Slice(offset, length int) (*Window, error) {
	if offset < 0 || length < 0 || offset > len(w.buf) || length > len(w.buf)-offset {
		return nil, errors.Wrapf(ErrInvalidRange,
			"cannot slice %d bytes at offset %d of a %d byte window", length, offset, len(w.buf))
	}

	end := offset + length
	return &Window{
		buf:  w.buf[offset:end:end],
		base: w.base + offset,
	}, nil
}

// take returns the next n bytes and advances past them, or fails without moving
func (w *Window) take(n int) ([]byte, error) {
	if w.Remaining() < n {
		return nil, errors.Wrapf(ErrBufferUnderflow,
			"need %d bytes at position %d, have %d", n, w.pos, w.Remaining())
	}

	b := w.buf[w.pos : w.pos+n]
	w.pos += n
	return b, nil
}

// room is take for writes
func (w *Window) room(n int) ([]byte, error) {
	if w.Remaining() < n {
		return nil, errors.Wrapf(ErrBufferOverflow,
			"need %d bytes at position %d, have %d", n, w.pos, w.Remaining())
	}

	b := w.buf[w.pos : w.pos+n]
	w.pos += n
	return b, nil
}
