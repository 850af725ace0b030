package bytewindow

import "github.com/pkg/errors"

// errors returned by a Window, always wrapped with context
//
// use errors.Cause from github.com/pkg/errors to compare against these.
var (
	// ErrInvalidRange is returned when a range does not fit inside its source
	ErrInvalidRange = errors.New("invalid range")

	// ErrOutOfBounds is returned when a seek lands outside [0, Len()]
	ErrOutOfBounds = errors.New("seek out of bounds")

	// ErrBufferUnderflow is returned when a read wants more bytes than remain
	ErrBufferUnderflow = errors.New("buffer underflow")

	// ErrBufferOverflow is returned when a write wants more bytes than remain
	ErrBufferOverflow = errors.New("buffer overflow")

	// ErrInvalidWhence is returned for a whence other than SeekSet, SeekCur or SeekEnd
	ErrInvalidWhence = errors.New("invalid whence")
)
