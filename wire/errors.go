package wire

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
	"tlog.app/go/errors"
)

type (
	// DecodeError reports where and why a byte sequence is not a valid
	// encoding of the target message.
	DecodeError struct {
		// Message is the schema name of the innermost message being decoded.
		Message string
		// Field is the field number being read, 0 if the tag itself is broken.
		Field protowire.Number
		// WireType is the wire type found in the tag.
		WireType protowire.Type
		// Offset is the position in the input where decoding stopped.
		Offset int

		Err error
	}

	// EncodeError reports a field value that can't be encoded.
	EncodeError struct {
		Message string
		Field   protowire.Number

		Err error
	}
)

var (
	ErrWireType    = errors.New("wrong wire type")
	ErrInvalidUTF8 = errors.New("invalid utf-8 in string field")
	ErrDepth       = errors.New("message nesting exceeds limit")
)

func (e *DecodeError) Error() string {
	if e.Field == 0 {
		return fmt.Sprintf("decode %s at offset %d: %v", e.Message, e.Offset, e.Err)
	}

	return fmt.Sprintf("decode %s: field %d (wire type %d) at offset %d: %v", e.Message, e.Field, e.WireType, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: field %d: %v", e.Message, e.Field, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
