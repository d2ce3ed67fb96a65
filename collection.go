package digitring

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/digitring/ring"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("digitring")

// ErrUnsupported is returned for list-protocol operations the ring does
// not support.
var ErrUnsupported = Error.New("unsupported operation")

// Collection is a bulk-operation view over a ring. All operations go
// through the ring's public primitives; the view holds no state of its
// own.
type Collection struct {
	ring *ring.Ring
}

// Wrap returns a collection view over the given ring.
func Wrap(r *ring.Ring) *Collection {
	return &Collection{
		ring: r,
	}
}

// Ring returns the underlying ring.
func (c *Collection) Ring() *ring.Ring {
	return c.ring
}

// ContainsAll reports whether every given digit occurs in the ring.
func (c *Collection) ContainsAll(digits []byte) bool {
	for _, d := range digits {
		if !c.ring.Contains(d) {
			return false
		}
	}

	return true
}

// AddAll appends the digits in order and reports whether the ring changed.
// Every digit is validated against the base before any is added.
func (c *Collection) AddAll(digits []byte) (changed bool, err error) {
	if err := c.validate(digits); err != nil {
		return false, err
	}

	for _, d := range digits {
		if err := c.ring.Append(d); err != nil {
			return changed, err
		}
		changed = true
	}

	return changed, nil
}

// InsertAll inserts the digits in order starting at index and reports
// whether the ring changed. Every digit and the index are validated before
// any is inserted.
func (c *Collection) InsertAll(index int, digits []byte) (changed bool, err error) {
	if index < 0 || index > c.ring.Len() {
		return false, ring.ErrIndexOutOfRange
	}
	if err := c.validate(digits); err != nil {
		return false, err
	}

	for _, d := range digits {
		if err := c.ring.Insert(index, d); err != nil {
			return changed, err
		}
		index++
		changed = true
	}

	return changed, nil
}

// RemoveAll removes every occurrence of every given digit and reports
// whether the ring changed.
func (c *Collection) RemoveAll(digits []byte) (changed bool) {
	for _, d := range digits {
		for c.ring.RemoveDigit(d) {
			changed = true
		}
	}

	return changed
}

// RetainAll removes every digit not in keep and reports whether the ring
// changed.
func (c *Collection) RetainAll(keep []byte) (changed bool) {
	in := make(map[byte]bool, len(keep))
	for _, d := range keep {
		in[d] = true
	}

	for i := 0; i < c.ring.Len(); {
		d, err := c.ring.Digit(i)
		if err != nil {
			break
		}

		if in[d] {
			i++
			continue
		}

		if _, err := c.ring.RemoveAt(i); err != nil {
			break
		}
		changed = true
	}

	return changed
}

// ToSlice returns the digits head to tail.
func (c *Collection) ToSlice() []byte {
	return c.ring.Digits()
}

// SubList is not supported.
func (c *Collection) SubList(from, to int) (*Collection, error) {
	return nil, ErrUnsupported
}

// PositionedIter is not supported; use ring.Iter for head-to-tail
// iteration.
func (c *Collection) PositionedIter(index int) (*ring.Iterator, error) {
	return nil, ErrUnsupported
}

func (c *Collection) validate(digits []byte) error {
	for _, d := range digits {
		if int(d) >= c.ring.Base() {
			return ring.ErrDigitOutOfRange
		}
	}

	return nil
}
