package bytewindow

import (
	"strings"

	"github.com/pkg/errors"
)

// Kind is an enumerated type representing the fixed width values a Window can decode
type Kind int32

// Possible values for a Kind
const (
	NoSupportKind Kind = iota - 1
	Int8Kind
	Uint8Kind
	Int16Kind
	Uint16Kind
	Int32Kind
	Uint32Kind
	Int64Kind
	Uint64Kind
	Float32Kind
	Float64Kind
)

var kindNames = map[Kind]string{
	Int8Kind:    "int8",
	Uint8Kind:   "uint8",
	Int16Kind:   "int16",
	Uint16Kind:  "uint16",
	Int32Kind:   "int32",
	Uint32Kind:  "uint32",
	Int64Kind:   "int64",
	Uint64Kind:  "uint64",
	Float32Kind: "float32",
	Float64Kind: "float64",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unsupported"
}

// Width returns the number of bytes a value of the kind occupies, 0 if unsupported
func (k Kind) Width() int {
	switch k {
	case Int8Kind, Uint8Kind:
		return 1
	case Int16Kind, Uint16Kind:
		return 2
	case Int32Kind, Uint32Kind, Float32Kind:
		return 4
	case Int64Kind, Uint64Kind, Float64Kind:
		return 8
	}
	return 0
}

// IsInteger reports whether the kind decodes to an integer
func (k Kind) IsInteger() bool {
	return k.Width() != 0 && k != Float32Kind && k != Float64Kind
}

// ParseKind returns the Kind named by s, like "int32" or "float64"
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return NoSupportKind, errors.Errorf("unknown kind %q", s)
}

// ReadKind reads a single value of kind k, returned as the matching go type
func (w *Window) ReadKind(k Kind) (interface{}, error) {
	switch k {
	case Int8Kind:
		return w.ReadInt8()
	case Uint8Kind:
		return w.ReadUint8()
	case Int16Kind:
		return w.ReadInt16()
	case Uint16Kind:
		return w.ReadUint16()
	case Int32Kind:
		return w.ReadInt32()
	case Uint32Kind:
		return w.ReadUint32()
	case Int64Kind:
		return w.ReadInt64()
	case Uint64Kind:
		return w.ReadUint64()
	case Float32Kind:
		return w.ReadFloat32()
	case Float64Kind:
		return w.ReadFloat64()
	}

	return nil, errors.Errorf("invalid kind %d", int32(k))
}
