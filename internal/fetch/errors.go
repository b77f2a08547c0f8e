package fetch

import (
	"errors"
	"fmt"
)

// ErrNetwork matches every NetworkError via errors.Is.
var ErrNetwork = errors.New("catalog fetch failed")

// NetworkError reports a fetch that could not produce a response body:
// connectivity, timeout, oversize body, or a non-success status.
type NetworkError struct {
	URL        string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch catalog %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch catalog %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrNetwork) succeed for any NetworkError.
func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }
