package ring

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package.
var Error = errs.Class("ring")

var (
	// ErrIndexOutOfRange is returned for an index outside the valid
	// positions of the ring.
	ErrIndexOutOfRange = Error.New("index out of range")

	// ErrDigitOutOfRange is returned for a digit outside [0, base).
	ErrDigitOutOfRange = Error.New("digit out of range")

	// ErrBaseOutOfRange is returned for a base outside [2, MaxBase].
	ErrBaseOutOfRange = Error.New("base out of range")

	// ErrNegativeValue is returned for a negative seed value.
	ErrNegativeValue = Error.New("negative value")

	// ErrDivisionByZero is returned by Combine for Divide or Modulo with
	// a zero right operand.
	ErrDivisionByZero = Error.New("division by zero")

	// ErrNegativeResult is returned by Combine for Subtract when the
	// right operand exceeds the left.
	ErrNegativeResult = Error.New("negative result")

	// ErrUnknownOp is returned by Combine for an operation outside the
	// fixed table.
	ErrUnknownOp = Error.New("unknown operation")
)
