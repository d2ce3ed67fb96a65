package ring

// Iterator walks the digits head to tail. It is lazy, finite, and
// restartable: a full walk yields every digit exactly once. Mutating the
// ring invalidates outstanding iterators.
type Iterator struct {
	r       *Ring
	curr    int
	visited int
	digit   byte
}

// Iter returns an iterator positioned before the head.
func (r *Ring) Iter() *Iterator {
	return &Iterator{
		r:    r,
		curr: r.head,
	}
}

// Next advances to the next digit and reports whether one was available.
func (it *Iterator) Next() (ok bool) {
	if it.visited >= it.r.size {
		return false
	}

	it.digit = it.r.slots[it.curr].digit
	it.curr = it.r.slots[it.curr].next
	it.visited++

	return true
}

// Digit returns the digit produced by the last successful Next.
func (it *Iterator) Digit() byte {
	return it.digit
}

// Reset repositions the iterator before the head.
func (it *Iterator) Reset() {
	it.curr = it.r.head
	it.visited = 0
}
