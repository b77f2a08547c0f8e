package catalog

import (
	"errors"
	"fmt"
)

// ErrDecode matches every decode failure via errors.Is.
var ErrDecode = errors.New("catalog decode failed")

// DecodeError reports a document that does not match the catalog shape.
type DecodeError struct {
	// Path locates the offending value, e.g. "artists[2].works[0].title".
	// Empty when the document itself is not valid JSON.
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decode catalog: %v", e.Err)
	}
	return fmt.Sprintf("decode catalog: %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrDecode) succeed for any DecodeError.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

var errMissing = errors.New("required field missing or null")

func missingField(path string) error {
	return &DecodeError{Path: path, Err: errMissing}
}
