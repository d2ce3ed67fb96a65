package ring_test

import (
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/digitring/ring"
)

func TestCombine(t *testing.T) {
	type TC struct {
		A    int64
		B    int64
		Op   ring.Op
		Want string
		Err  error
		Mark error
	}

	tcs := []TC{
		{
			A:    13,
			B:    5,
			Op:   ring.Add,
			Want: "18",
			Mark: oops.New("unexpected"),
		},
		{
			A:    13,
			B:    5,
			Op:   ring.Subtract,
			Want: "8",
			Mark: oops.New("unexpected"),
		},
		{
			A:    5,
			B:    13,
			Op:   ring.Subtract,
			Err:  ring.ErrNegativeResult,
			Mark: oops.New("unexpected"),
		},
		{
			A:    13,
			B:    5,
			Op:   ring.Multiply,
			Want: "65",
			Mark: oops.New("unexpected"),
		},
		{
			A:    13,
			B:    5,
			Op:   ring.Divide,
			Want: "2",
			Mark: oops.New("unexpected"),
		},
		{
			A:    13,
			B:    0,
			Op:   ring.Divide,
			Err:  ring.ErrDivisionByZero,
			Mark: oops.New("unexpected"),
		},
		{
			A:    13,
			B:    5,
			Op:   ring.Modulo,
			Want: "3",
			Mark: oops.New("unexpected"),
		},
		{
			A:    13,
			B:    0,
			Op:   ring.Modulo,
			Err:  ring.ErrDivisionByZero,
			Mark: oops.New("unexpected"),
		},
		{
			A:    13,
			B:    5,
			Op:   ring.And,
			Want: "5",
			Mark: oops.New("unexpected"),
		},
		{
			A:    13,
			B:    5,
			Op:   ring.Or,
			Want: "13",
			Mark: oops.New("unexpected"),
		},
		{
			A:    13,
			B:    5,
			Op:   ring.Op{},
			Err:  ring.ErrUnknownOp,
			Mark: oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Op.Name, func(t *testing.T) {
			a := mustRing(t, tc.A, 2)
			b := mustRing(t, tc.B, 2)

			res, err := ring.Combine(a, b, tc.Op)
			if tc.Err != nil {
				require.ErrorIs(t, err, tc.Err, tc.Mark)

				return
			}

			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Want, res.DecimalString(), tc.Mark)
			require.Equal(t, ring.DefaultBase, res.Base(), tc.Mark)
			requireConsistent(t, res)

			// Operands are untouched.
			require.Equal(t, "13", a.DecimalString(), tc.Mark)
		})
	}
}

// TestCombineIgnoresBase checks that operands are interpreted by value
// only, independent of their current bases.
func TestCombineIgnoresBase(t *testing.T) {
	a := mustRing(t, 13, 16)
	b := mustRing(t, 5, 3)

	res, err := ring.Combine(a, b, ring.Or)
	require.NoError(t, err)
	require.Equal(t, "13", res.DecimalString())
	require.Equal(t, "1101", res.BaseString())
}

func TestCombineZeroResult(t *testing.T) {
	a := mustRing(t, 13, 2)
	b := mustRing(t, 13, 2)

	res, err := ring.Combine(a, b, ring.Subtract)
	require.NoError(t, err)
	require.True(t, res.IsEmpty())
	require.Equal(t, "0", res.DecimalString())
}

func TestOps(t *testing.T) {
	require.Len(t, ring.Ops, 7)

	op, ok := ring.Ops.ByName("divide")
	require.True(t, ok)
	require.Equal(t, ring.Divide, op)
	require.Equal(t, "divide", op.String())
	require.Equal(t, "/", op.Abbr)

	_, ok = ring.Ops.ByName("xor")
	require.False(t, ok)
}
