package vjdetect

import "fmt"

// ArgumentError reports an invalid call to Detect: a missing/non-positive
// dimension, a scalar outside its documented range, a pixel buffer of the
// wrong length, or a cascade too short to carry a header — spec.md §7's
// "Invalid argument" and "Buffer mismatch" failure kinds.
type ArgumentError struct {
	msg string
}

func (e *ArgumentError) Error() string { return e.msg }

func argErrorf(format string, args ...any) error {
	return &ArgumentError{msg: fmt.Sprintf(format, args...)}
}
