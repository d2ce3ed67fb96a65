package ring

import (
	"math/big"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// alphabet renders digits positionally for bases up to MaxBase.
const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// recalc re-derives the numeric value from the digit sequence, reducing
// head to tail with v = v*base + digit. The empty ring yields 0.
func (r *Ring) recalc() {
	v := new(big.Int)

	if r.size > 0 {
		b := big.NewInt(int64(r.base))
		d := new(big.Int)

		curr := r.head
		for i := 0; i < r.size; i++ {
			d.SetInt64(int64(r.slots[curr].digit))
			v.Mul(v, b).Add(v, d)
			curr = r.slots[curr].next
		}
	}

	r.value = v
}

// rebuild re-derives the digit sequence from the numeric value by repeated
// division, most significant digit first.
//
// Note: the value 0 rebuilds to an empty ring, never to a single zero
// digit.
func (r *Ring) rebuild() {
	r.slots = r.slots[:0]
	r.free = r.free[:0]
	r.head = none
	r.size = 0

	if r.value.Sign() == 0 {
		return
	}

	b := big.NewInt(int64(r.base))
	v := new(big.Int).Set(r.value)
	mod := new(big.Int)

	var digits []byte
	for v.Sign() != 0 {
		v.DivMod(v, b, mod)
		digits = append(digits, byte(mod.Uint64()))
	}

	for i := len(digits) - 1; i >= 0; i-- {
		r.link(r.alloc(digits[i]))
	}
}

// DecimalString returns the canonical base 10 string of the value, "0"
// when the ring is empty.
func (r *Ring) DecimalString() string {
	return r.value.String()
}

// BaseString returns the digits head to tail in the current base, "0" when
// the ring is empty.
func (r *Ring) BaseString() string {
	if r.size == 0 {
		return "0"
	}

	sb := &strings.Builder{}

	curr := r.head
	for i := 0; i < r.size; i++ {
		sb.WriteByte(alphabet[r.slots[curr].digit])
		curr = r.slots[curr].next
	}

	return sb.String()
}

// String implements fmt.Stringer as BaseString.
func (r *Ring) String() string {
	return r.BaseString()
}

// Equal reports whether two rings hold the same numeric value, regardless
// of base or digit layout.
func (r *Ring) Equal(o *Ring) bool {
	if o == nil {
		return false
	}

	return r.DecimalString() == o.DecimalString()
}

// Hash returns a hash of the decimal value string. Rings that are Equal
// hash identically.
func (r *Ring) Hash() uint64 {
	return xxhash.Sum64String(r.DecimalString())
}
