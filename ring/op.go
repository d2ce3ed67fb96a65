package ring

import "math/big"

// Op is one derived binary operation over two numeric values. The set of
// operations is fixed; see Ops.
type Op struct {
	Name string
	Abbr string
}

// String returns the operation name.
func (op Op) String() string {
	return op.Name
}

type ops []Op

// ByName returns the operation with the given name.
func (os ops) ByName(name string) (op Op, ok bool) {
	for _, o := range os {
		if o.Name == name {
			return o, true
		}
	}

	return op, false
}

// Derived Binary Operations
var (
	Add      = Op{"add", "+"}
	Subtract = Op{"subtract", "-"}
	Multiply = Op{"multiply", "*"}
	Divide   = Op{"divide", "/"}
	Modulo   = Op{"modulo", "%"}
	And      = Op{"and", "&"}
	Or       = Op{"or", "|"}

	Ops = ops{
		Add,
		Subtract,
		Multiply,
		Divide,
		Modulo,
		And,
		Or,
	}
)

// Combine applies one operation to the numeric values of two rings and
// returns a fresh ring holding the result in the default base. The
// operands are interpreted purely by value, independent of their bases,
// and are not modified.
//
// Divide and Modulo fail on a zero right operand. Subtract fails when the
// right operand exceeds the left: values are non-negative and never wrap.
func Combine(a, b *Ring, op Op) (*Ring, error) {
	x, y := a.value, b.value
	res := new(big.Int)

	switch op {
	case Add:
		res.Add(x, y)
	case Subtract:
		if x.Cmp(y) < 0 {
			return nil, ErrNegativeResult
		}
		res.Sub(x, y)
	case Multiply:
		res.Mul(x, y)
	case Divide:
		if y.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		res.Quo(x, y)
	case Modulo:
		if y.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		res.Mod(x, y)
	case And:
		res.And(x, y)
	case Or:
		res.Or(x, y)
	default:
		return nil, ErrUnknownOp
	}

	return NewFromValue(res, DefaultBase)
}
