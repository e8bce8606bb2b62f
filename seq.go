package ati

// Getter is the read side of a random-access sequence: anything with a
// runtime-known length and forward-offset element access can be
// indexed through SeqAt. The offset passed to Get is always in
// [0, Len()).
type Getter[E any] interface {
	Len() int
	Get(i int) E
}

// Setter extends Getter with element replacement, enabling SeqSet.
type Setter[E any] interface {
	Getter[E]
	Set(i int, v E)
}

// SeqAt returns the element of g addressed by i, with negative indexes
// counting from the back. It panics with a *IndexError when no element
// corresponds to i.
func SeqAt[E any, I Index](g Getter[E], i I) E {
	off, err := Offset(g.Len(), i)
	if err != nil {
		panic(err)
	}
	return g.Get(off)
}

// SeqSet replaces the element of s addressed by i, with negative
// indexes counting from the back. It panics with a *IndexError when no
// element corresponds to i.
func SeqSet[E any, I Index](s Setter[E], i I, v E) {
	off, err := Offset(s.Len(), i)
	if err != nil {
		panic(err)
	}
	s.Set(off, v)
}
