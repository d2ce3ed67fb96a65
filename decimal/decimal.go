package decimal

import (
	"math/big"
	"strings"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("decimal")

var (
	// ErrEmpty is returned for input with no digits.
	ErrEmpty = Error.New("empty input")

	// ErrSigned is returned for input carrying a sign. Values are
	// non-negative and unsigned by construction.
	ErrSigned = Error.New("signed input")
)

// Parse converts a non-negative decimal string into an arbitrary precision
// value. Surrounding whitespace is trimmed; leading zeros are accepted.
// Anything else, including signs, fails before producing a value.
func Parse(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmpty
	}
	if s[0] == '-' || s[0] == '+' {
		return nil, ErrSigned
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, Error.New("invalid digit %q at offset %d", s[i], i)
		}
	}

	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, Error.New("unparsable input")
	}

	return v, nil
}

// Format returns the canonical decimal string of a value, "0" for nil.
func Format(v *big.Int) string {
	if v == nil {
		return "0"
	}

	return v.String()
}
