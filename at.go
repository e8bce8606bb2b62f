package ati

// At returns the element of s addressed by i. Negative indexes count
// from the end, so At(s, -1) is the last element and At(s, -len(s))
// the first.
//
// At panics with a *IndexError when no element corresponds to i,
// matching the behavior of direct slice indexing. Use TryAt for the
// checked form.
func At[E any, I Index](s []E, i I) E {
	off, err := Offset(len(s), i)
	if err != nil {
		panic(err)
	}
	return s[off]
}

// AtMut returns an exclusive handle to the element of s addressed by
// i, for callers that need to mutate it in place:
//
//	*ati.AtMut(s, -1) = v
//
// AtMut panics with a *IndexError when no element corresponds to i.
// Use TryAtMut for the checked form.
func AtMut[E any, I Index](s []E, i I) *E {
	off, err := Offset(len(s), i)
	if err != nil {
		panic(err)
	}
	return &s[off]
}

// TryAt is the checked form of At: it returns the *IndexError instead
// of panicking when i is out of range.
func TryAt[E any, I Index](s []E, i I) (E, error) {
	off, err := Offset(len(s), i)
	if err != nil {
		var zero E
		return zero, err
	}
	return s[off], nil
}

// TryAtMut is the checked form of AtMut.
func TryAtMut[E any, I Index](s []E, i I) (*E, error) {
	off, err := Offset(len(s), i)
	if err != nil {
		return nil, err
	}
	return &s[off], nil
}
