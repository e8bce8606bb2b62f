package ati

import (
	"errors"
	"fmt"
	"math"
)

// IndexError reports a logical index with no valid offset in the
// sequence it was applied to. It is the only failure the package
// produces: At and the other panicking accessors panic with it, and
// the Try variants return it.
type IndexError struct {
	// Index is the logical index as supplied by the caller.
	Index int64

	// BigIndex carries the supplied value instead when it was unsigned
	// and too large for Index.
	BigIndex uint64

	// Big reports whether BigIndex holds the value.
	Big bool

	// Len is the length of the sequence at the time of the access.
	Len int
}

// Error implements the error interface. The rendering follows the
// register of Go's own bounds-check failure.
func (e *IndexError) Error() string {
	if e.Big {
		return fmt.Sprintf("index out of range [%d] with length %d", e.BigIndex, e.Len)
	}
	return fmt.Sprintf("index out of range [%d] with length %d", e.Index, e.Len)
}

// IsOutOfRange returns true if the error is an index resolution
// failure. Uses errors.As to handle wrapped errors.
func IsOutOfRange(err error) bool {
	var ie *IndexError
	return errors.As(err, &ie)
}

// outOfRange builds the IndexError for a failed access, preserving the
// exact supplied value across every integer width.
func outOfRange[I Index](i I, length int) *IndexError {
	if i >= 0 {
		if u := uint64(i); u > math.MaxInt64 {
			return &IndexError{BigIndex: u, Big: true, Len: length}
		}
	}
	return &IndexError{Index: int64(i), Len: length}
}
