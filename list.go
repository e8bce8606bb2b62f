package ati

import "container/list"

// ListAt returns the element of l addressed by i, with negative
// indexes counting from the back. The element's Value field is the
// mutation point, so the one accessor serves both reads and writes:
//
//	ati.ListAt(l, -1).Value = v
//
// Resolution is O(1); reaching the element walks the list from
// whichever end is nearer to the resolved offset. ListAt panics with a
// *IndexError when no element corresponds to i.
func ListAt[I Index](l *list.List, i I) *list.Element {
	off, err := Offset(l.Len(), i)
	if err != nil {
		panic(err)
	}
	if off < l.Len()/2 {
		e := l.Front()
		for ; off > 0; off-- {
			e = e.Next()
		}
		return e
	}
	e := l.Back()
	for off = l.Len() - 1 - off; off > 0; off-- {
		e = e.Prev()
	}
	return e
}
