package ring

import "math/big"

const (
	// DefaultBase is the base of newly constructed rings and of results
	// produced by Combine.
	DefaultBase = 2

	// MaxBase is the largest supported base. It matches the positional
	// alphabet 0-9, a-z, A-Z used by BaseString.
	MaxBase = 62
)

// none marks an absent slot link.
const none = -1

// node is one digit cell. Links are slot indices within the arena.
type node struct {
	digit byte
	next  int
	prev  int
}

// Ring is a number held simultaneously as an arbitrary precision value and
// as a circular sequence of digits in a configurable base. The zero value
// is not usable; construct with New or NewFromValue.
type Ring struct {
	slots []node
	free  []int

	head int
	size int
	base int

	value *big.Int
}

// New returns an empty ring holding the value 0 in the default base.
func New() *Ring {
	return &Ring{
		head:  none,
		base:  DefaultBase,
		value: new(big.Int),
	}
}

// NewFromValue returns a ring holding the given non-negative value with its
// digits expressed in the given base.
func NewFromValue(v *big.Int, base int) (*Ring, error) {
	if base < 2 || base > MaxBase {
		return nil, ErrBaseOutOfRange
	}
	if v == nil || v.Sign() < 0 {
		return nil, ErrNegativeValue
	}

	r := &Ring{
		head:  none,
		base:  base,
		value: new(big.Int).Set(v),
	}
	r.rebuild()

	return r, nil
}

// Len returns the number of digits.
func (r *Ring) Len() int {
	return r.size
}

// IsEmpty returns true when the ring holds no digits (the value 0).
func (r *Ring) IsEmpty() bool {
	return r.size == 0
}

// Base returns the current numeral base.
func (r *Ring) Base() int {
	return r.base
}

// Value returns a copy of the numeric value.
func (r *Ring) Value() *big.Int {
	return new(big.Int).Set(r.value)
}

// Digit returns the digit at the given position (0 is the head).
func (r *Ring) Digit(index int) (byte, error) {
	at, err := r.slotAt(index)
	if err != nil {
		return 0, err
	}

	return r.slots[at].digit, nil
}

// Digits returns the digits head to tail.
func (r *Ring) Digits() []byte {
	ds := make([]byte, 0, r.size)

	curr := r.head
	for i := 0; i < r.size; i++ {
		ds = append(ds, r.slots[curr].digit)
		curr = r.slots[curr].next
	}

	return ds
}

// IndexOf returns the position of the first occurrence of the digit
// searching head to tail, or -1.
func (r *Ring) IndexOf(digit byte) int {
	curr := r.head
	for i := 0; i < r.size; i++ {
		if r.slots[curr].digit == digit {
			return i
		}
		curr = r.slots[curr].next
	}

	return -1
}

// LastIndexOf returns the position of the first occurrence of the digit
// searching tail to head, or -1.
func (r *Ring) LastIndexOf(digit byte) int {
	if r.size == 0 {
		return -1
	}

	curr := r.slots[r.head].prev
	for i := r.size - 1; i >= 0; i-- {
		if r.slots[curr].digit == digit {
			return i
		}
		curr = r.slots[curr].prev
	}

	return -1
}

// Contains returns true when the digit occurs in the ring.
func (r *Ring) Contains(digit byte) bool {
	return r.IndexOf(digit) >= 0
}

// Insert places a new digit so that it becomes the element at index
// (0 ≤ index ≤ Len). The digit must be in [0, base).
func (r *Ring) Insert(index int, digit byte) error {
	if int(digit) >= r.base {
		return ErrDigitOutOfRange
	}
	if index < 0 || index > r.size {
		return ErrIndexOutOfRange
	}

	switch {
	case r.size == 0 || index == r.size:
		r.mutate(func() {
			r.link(r.alloc(digit))
		})
	case index == 0:
		r.mutate(func() {
			i := r.alloc(digit)
			r.spliceBefore(r.head, i)
			r.head = i
		})
	default:
		at, _ := r.slotAt(index)
		r.mutate(func() {
			r.spliceBefore(at, r.alloc(digit))
		})
	}

	return nil
}

// Append places a new digit at the least significant position.
func (r *Ring) Append(digit byte) error {
	return r.Insert(r.size, digit)
}

// RemoveAt detaches the digit at the given position and returns it. When
// the head is removed the next digit becomes head.
func (r *Ring) RemoveAt(index int) (byte, error) {
	at, err := r.slotAt(index)
	if err != nil {
		return 0, err
	}

	d := r.slots[at].digit
	r.mutate(func() {
		r.unlink(at)
	})

	return d, nil
}

// RemoveDigit detaches the first occurrence of the digit searching head to
// tail and reports whether one was found. No match is a no-op.
func (r *Ring) RemoveDigit(digit byte) bool {
	curr := r.head
	for i := 0; i < r.size; i++ {
		if r.slots[curr].digit == digit {
			at := curr
			r.mutate(func() {
				r.unlink(at)
			})

			return true
		}
		curr = r.slots[curr].next
	}

	return false
}

// Set replaces the digit at the given position and returns the previous
// digit. The digit must be in [0, base).
func (r *Ring) Set(index int, digit byte) (old byte, err error) {
	if int(digit) >= r.base {
		return 0, ErrDigitOutOfRange
	}

	at, err := r.slotAt(index)
	if err != nil {
		return 0, err
	}

	old = r.slots[at].digit
	r.mutate(func() {
		r.slots[at].digit = digit
	})

	return old, nil
}

// Swap exchanges the digit values at two positions. It reports false when
// either position is out of range and true otherwise; equal positions are
// a successful no-op.
func (r *Ring) Swap(i, j int) bool {
	if i < 0 || i >= r.size || j < 0 || j >= r.size {
		return false
	}
	if i == j {
		return true
	}

	si, _ := r.slotAt(i)
	sj, _ := r.slotAt(j)
	r.mutate(func() {
		r.slots[si].digit, r.slots[sj].digit = r.slots[sj].digit, r.slots[si].digit
	})

	return true
}

// RotateLeft moves the head to the next digit. The digits and their cyclic
// order are untouched; only which digit is most significant changes. No-op
// on an empty ring.
func (r *Ring) RotateLeft() {
	if r.size == 0 {
		return
	}

	r.mutate(func() {
		r.head = r.slots[r.head].next
	})
}

// RotateRight moves the head to the previous digit. No-op on an empty ring.
func (r *Ring) RotateRight() {
	if r.size == 0 {
		return
	}

	r.mutate(func() {
		r.head = r.slots[r.head].prev
	})
}

// Clear resets the ring to empty (value 0) in the default base.
func (r *Ring) Clear() {
	r.slots = r.slots[:0]
	r.free = r.free[:0]
	r.head = none
	r.size = 0
	r.base = DefaultBase
	r.value = new(big.Int)
}

// mutate performs one structural edit and re-derives the numeric value.
// All mutations funnel through here so no path can return with the two
// representations out of sync.
func (r *Ring) mutate(edit func()) {
	edit()
	r.recalc()
}

// slotAt returns the slot holding position index, walking from whichever
// end is nearer.
func (r *Ring) slotAt(index int) (int, error) {
	if index < 0 || index >= r.size {
		return none, ErrIndexOutOfRange
	}

	var curr int
	if index < r.size/2 {
		curr = r.head
		for i := 0; i < index; i++ {
			curr = r.slots[curr].next
		}
	} else {
		curr = r.slots[r.head].prev
		for i := r.size - 1; i > index; i-- {
			curr = r.slots[curr].prev
		}
	}

	return curr, nil
}

// alloc takes a slot for a new digit, reusing freed slots first.
func (r *Ring) alloc(digit byte) int {
	if n := len(r.free); n > 0 {
		i := r.free[n-1]
		r.free = r.free[:n-1]
		r.slots[i] = node{digit: digit, next: none, prev: none}

		return i
	}

	r.slots = append(r.slots, node{digit: digit, next: none, prev: none})

	return len(r.slots) - 1
}

// release returns a slot to the free list.
func (r *Ring) release(i int) {
	r.slots[i] = node{next: none, prev: none}
	r.free = append(r.free, i)
}

// link appends slot i at the tail, handling the empty ring.
func (r *Ring) link(i int) {
	if r.head == none {
		r.slots[i].next = i
		r.slots[i].prev = i
		r.head = i
		r.size = 1

		return
	}

	r.spliceBefore(r.head, i)
}

// spliceBefore inserts slot i before slot at. The ring must be nonempty.
func (r *Ring) spliceBefore(at, i int) {
	prev := r.slots[at].prev
	r.slots[prev].next = i
	r.slots[i].prev = prev
	r.slots[i].next = at
	r.slots[at].prev = i
	r.size++
}

// unlink detaches slot i, advancing the head when it is removed.
func (r *Ring) unlink(i int) {
	if r.size == 1 {
		r.head = none
		r.size = 0
		r.release(i)

		return
	}

	prev, next := r.slots[i].prev, r.slots[i].next
	r.slots[prev].next = next
	r.slots[next].prev = prev
	if i == r.head {
		r.head = next
	}
	r.size--
	r.release(i)
}
