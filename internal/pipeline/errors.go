package pipeline

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by New for unusable settings.
var ErrInvalidConfig = errors.New("invalid pipeline config")

// SampleError reports a sample that could not be decoded. Err is one of the
// codec sentinel errors, possibly wrapped.
type SampleError struct {
	Seq int
	Err error
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("sample %d: %v", e.Seq, e.Err)
}

func (e *SampleError) Unwrap() error { return e.Err }
