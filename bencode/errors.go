package bencode

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedInteger    = errors.New("bencode: malformed integer")
	ErrMalformedString     = errors.New("bencode: malformed string")
	ErrMalformedDictionary = errors.New("bencode: malformed dictionary")
	ErrDuplicateKey        = errors.New("bencode: duplicate dictionary key")
	ErrUnexpectedEOF       = errors.New("bencode: unexpected end of input")
	ErrUnexpectedToken     = errors.New("bencode: unexpected token")
	ErrTrailingData        = errors.New("bencode: trailing data after value")
	ErrNestingTooDeep      = errors.New("bencode: nesting too deep")
	ErrIntegerOutOfRange   = errors.New("bencode: integer out of range")

	// ErrInvalidValue is returned by Encode when it meets a zero Value.
	ErrInvalidValue = errors.New("bencode: invalid value")
)

// DecodeError wraps one of the sentinel decode errors together with the byte
// offset where parsing stopped. Match the cause with errors.Is.
type DecodeError struct {
	Offset int
	err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v at offset %d", e.err, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return e.err
}
