package torrent

import (
	"errors"
	"fmt"
)

var (
	ErrFieldMissing    = errors.New("field missing")
	ErrInvalidEncoding = errors.New("not valid UTF-8")
)

// SchemaError reports a metadata field that does not satisfy the .torrent
// schema. Field is the dotted path from the root dictionary, for example
// "info.piece length".
type SchemaError struct {
	Field  string
	Reason string
	err    error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("torrent: %s: %s", e.Field, e.Reason)
}

func (e *SchemaError) Unwrap() error {
	return e.err
}

func missingField(path string) error {
	return &SchemaError{Field: path, Reason: "field missing", err: ErrFieldMissing}
}

func invalidField(path, reason string) error {
	return &SchemaError{Field: path, Reason: reason}
}

func badEncoding(path string) error {
	return &SchemaError{Field: path, Reason: "not valid UTF-8", err: ErrInvalidEncoding}
}
