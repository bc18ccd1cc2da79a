// Copyright (c) 2026 liuyuxun, 1225
// bigcalc - arbitrary-precision integer calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package bigint

// DefaultExponentLimit is the hard ceiling on exponent values. It exists
// purely to bound run time and result size; 10^1000000 already has a
// million digits.
const DefaultExponentLimit = 1_000_000

// DefaultExponentWarn is the soft threshold above which callers may want
// to warn the user that the computation can take a while. Exceeding it is
// an advisory, not an error.
const DefaultExponentWarn = 1_000

// ExponentValue collapses an exponent magnitude to a native int, or
// ErrExponentTooLarge if it exceeds limit. A limit <= 0 means
// DefaultExponentLimit.
func ExponentValue(exp Magnitude, limit int) (int, error) {
	if limit <= 0 {
		limit = DefaultExponentLimit
	}
	n := 0
	for i := len(exp) - 1; i >= 0; i-- {
		n = n*10 + int(exp[i])
		if n > limit {
			return 0, ErrExponentTooLarge
		}
	}
	return n, nil
}

// ExceedsWarn reports whether exp exceeds the soft warning threshold.
// A warn <= 0 means DefaultExponentWarn.
func ExceedsWarn(exp Magnitude, warn int) bool {
	if warn <= 0 {
		warn = DefaultExponentWarn
	}
	n := 0
	for i := len(exp) - 1; i >= 0; i-- {
		n = n*10 + int(exp[i])
		if n > warn {
			return true
		}
	}
	return false
}

// Pow returns base raised to exp under the default exponent ceiling.
func Pow(base, exp Magnitude) (Magnitude, error) {
	return PowLimit(base, exp, DefaultExponentLimit)
}

// PowLimit returns base**exp, rejecting exponents above limit with
// ErrExponentTooLarge. By convention 0^0 = 1; a zero base with a non-zero
// exponent yields 0; exponent 1 returns the base unchanged.
//
// The general case is iterative binary exponentiation: square the running
// base on each bit of the exponent and multiply it into the accumulator on
// the set bits. The multiplication count is O(log exp), and the total cost
// is dominated by the last few squarings, where the operands are widest.
func PowLimit(base, exp Magnitude, limit int) (Magnitude, error) {
	e, err := ExponentValue(exp, limit)
	if err != nil {
		return nil, err
	}
	if e == 0 {
		return One(), nil
	}
	if base.IsZero() {
		return Zero(), nil
	}
	if e == 1 {
		return append(Magnitude(nil), base...), nil
	}

	acc := One()
	sq := append(Magnitude(nil), base...)
	for e > 0 {
		if e&1 == 1 {
			acc = Mul(acc, sq)
		}
		e >>= 1
		if e > 0 {
			sq = Mul(sq, sq)
		}
	}
	return acc, nil
}
