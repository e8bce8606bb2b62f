package ati

import "golang.org/x/exp/constraints"

// Index constrains the integer types accepted as a logical index. It
// covers every signed and unsigned Go integer kind, including the
// platform-sized int, uint, and uintptr. Signedness decides how a
// value is interpreted: unsigned and non-negative signed values count
// from the front, negative signed values count from the back.
type Index interface {
	constraints.Integer
}

// Offset resolves a logical index against a sequence of the given
// length and returns the zero-based forward offset.
//
// Non-negative indexes map to themselves; negative indexes resolve to
// length+i, so -1 addresses the last element and -length the first.
// The returned offset always satisfies 0 <= offset < length. An index
// with no such offset, including unsigned values beyond the range of
// int, yields a *IndexError; nothing wraps or saturates.
func Offset[I Index](length int, i I) (int, error) {
	if i >= 0 {
		// Widening to uint64 is lossless for every non-negative value
		// of every supported width, so one comparison performs both
		// the overflow and the bounds check.
		u := uint64(i)
		if u >= uint64(length) {
			return 0, outOfRange(i, length)
		}
		return int(u), nil
	}
	off := int64(length) + int64(i)
	if off < 0 {
		return 0, outOfRange(i, length)
	}
	return int(off), nil
}
