// Package ati provides negative-index access to ordered sequences.
//
// Any Go integer type may be used as a logical index. Non-negative
// values count from the front of the sequence (zero-based); negative
// values count from the back, so -1 addresses the last element:
//
//	v := []int{1, 2, 3, 4}
//	ati.At(v, 0)   // 1
//	ati.At(v, -1)  // 4
//
// Every accessor resolves the logical index to a forward offset with
// a single bounds check and then performs the access. An index with no
// valid offset is fatal: At, AtMut, ListAt, SeqAt, and SeqSet panic
// with a *IndexError, matching the behavior of direct slice indexing.
// TryAt and TryAtMut are the checked forms, returning the error
// instead. Unsigned values too large for the platform's int never wrap
// or truncate; they fail the bounds check like any other out-of-range
// index.
//
// The package holds no state. Each call is an independent
// normalize-then-access operation against a caller-owned sequence.
package ati
