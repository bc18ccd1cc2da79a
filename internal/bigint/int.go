// Copyright (c) 2026 liuyuxun, 1225
// bigcalc - arbitrary-precision integer calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package bigint

// Signed arithmetic over Int. The magnitude routines in bigint.go only
// understand non-negative operands; this layer composes signs on top of
// them, dispatching to magnitude subtraction when the operand signs
// differ.

// Cmp orders two signed values: -1 if x < y, 0 if equal, +1 if x > y.
func (x Int) Cmp(y Int) int {
	xs, ys := x.Sign(), y.Sign()
	switch {
	case xs < ys:
		return -1
	case xs > ys:
		return 1
	case xs < 0:
		// Both negative: the larger magnitude is the smaller value.
		return -Compare(x.mag, y.mag)
	default:
		return Compare(x.mag, y.mag)
	}
}

// Add returns x + y. Same signs add magnitudes and keep the sign;
// differing signs reduce to a magnitude subtraction.
func (x Int) Add(y Int) Int {
	if x.neg == y.neg {
		return New(x.neg, Add(x.mag, y.mag))
	}
	if x.neg {
		return Sub(y.mag, x.mag)
	}
	return Sub(x.mag, y.mag)
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Mul returns x * y. The result is negative exactly when the operand
// signs differ and the product is non-zero.
func (x Int) Mul(y Int) Int {
	return New(x.neg != y.neg, Mul(x.mag, y.mag))
}

// QuoRem returns the quotient and remainder of x / y, truncated toward
// zero. The quotient's sign is the XOR of the operand signs and the
// remainder takes the dividend's sign, matching Go's native integer
// division, so q*y + r == x always holds. A zero divisor yields
// ErrDivisionByZero.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	qm, rm, err := QuoRem(x.mag, y.mag)
	if err != nil {
		return Int{}, Int{}, err
	}
	return New(x.neg != y.neg, qm), New(x.neg, rm), nil
}

// Pow returns x**exp for a non-negative exponent magnitude, under the
// given ceiling (<= 0 means DefaultExponentLimit). A negative base yields
// a negative result exactly for odd exponents.
func (x Int) Pow(exp Magnitude, limit int) (Int, error) {
	m, err := PowLimit(x.mag, exp, limit)
	if err != nil {
		return Int{}, err
	}
	odd := len(exp) > 0 && exp[0]%2 == 1
	return New(x.neg && odd, m), nil
}
