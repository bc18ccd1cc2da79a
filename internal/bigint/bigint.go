// Copyright (c) 2026 liuyuxun, 1225
// bigcalc - arbitrary-precision integer calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// package bigint implements decimal arbitrary-precision integer arithmetic
// over digit slices. It is the computational core of bigcalc: addition,
// subtraction, multiplication, division with remainder and exponentiation.
//
// A Magnitude stores decimal digits least-significant first, so the number
// 1024 is Magnitude{4, 2, 0, 1}. The canonical form has no trailing
// (most-significant) zero digits; zero itself is the one-element slice {0}.
// Every operation returns a freshly allocated canonical result and never
// mutates its inputs, so values may be shared freely across goroutines.
package bigint

import "strings"

// Magnitude is a non-negative decimal integer stored as digits in [0,9],
// least-significant digit first.
type Magnitude []uint8

// Int is a signed arbitrary-precision integer: an explicit sign flag paired
// with a magnitude. The zero value is 0. Zero is never negative.
type Int struct {
	neg bool
	mag Magnitude
}

// Zero returns the canonical zero magnitude.
func Zero() Magnitude { return Magnitude{0} }

// One returns the magnitude 1.
func One() Magnitude { return Magnitude{1} }

// New builds an Int from a sign flag and a magnitude. The magnitude is
// copied and canonicalized; a zero magnitude forces the sign positive.
func New(neg bool, mag Magnitude) Int {
	m := trim(append(Magnitude(nil), mag...))
	if m.IsZero() {
		neg = false
	}
	return Int{neg: neg, mag: m}
}

// IsZero reports whether m is the canonical zero.
func (m Magnitude) IsZero() bool {
	return len(m) == 1 && m[0] == 0
}

// IsZero reports whether x is zero.
func (x Int) IsZero() bool { return x.mag.IsZero() }

// Sign returns -1, 0 or +1.
func (x Int) Sign() int {
	switch {
	case x.mag.IsZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// Neg returns -x. Negating zero yields zero.
func (x Int) Neg() Int {
	return New(!x.neg, x.mag)
}

// Magnitude returns a copy of the magnitude of x.
func (x Int) Magnitude() Magnitude {
	return append(Magnitude(nil), x.mag...)
}

// trim drops most-significant zero digits down to minimum length 1,
// restoring canonical form. It trims in place and returns the slice.
func trim(m Magnitude) Magnitude {
	n := len(m)
	for n > 1 && m[n-1] == 0 {
		n--
	}
	if n == 0 {
		return Magnitude{0}
	}
	return m[:n]
}

// Compare orders two magnitudes. It returns -1 if a < b, 0 if a == b and
// +1 if a > b. Canonical form makes length alone decide between magnitudes
// of different digit counts; equal lengths are compared from the
// most-significant digit down.
func Compare(a, b Magnitude) int {
	if len(a) < len(b) {
		return -1
	}
	if len(a) > len(b) {
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// Add returns a + b. Both operands must be magnitudes; sign handling is the
// caller's responsibility (see Int.Add for the signed form).
func Add(a, b Magnitude) Magnitude {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	c := make(Magnitude, n+1)
	carry := uint8(0)
	for i := 0; i < n; i++ {
		s := carry
		if i < len(a) {
			s += a[i]
		}
		if i < len(b) {
			s += b[i]
		}
		c[i] = s % 10
		carry = s / 10
	}
	c[n] = carry
	return trim(c)
}

// Sub returns a - b as a signed Int. The operands are compared first; when
// a < b they are swapped and the result is negated, so the magnitude part
// is always |a - b|. Equal operands short-circuit to zero.
func Sub(a, b Magnitude) Int {
	neg := false
	switch Compare(a, b) {
	case 0:
		return Int{mag: Zero()}
	case -1:
		a, b = b, a
		neg = true
	}

	c := make([]int8, len(a))
	for i := 0; i < len(a); i++ {
		d := int8(a[i]) + c[i]
		if i < len(b) {
			d -= int8(b[i])
		}
		if d < 0 {
			d += 10
			c[i+1]-- // borrow from the next position; a > b guarantees it exists when needed
		}
		c[i] = d
	}

	m := make(Magnitude, len(c))
	for i, d := range c {
		m[i] = uint8(d)
	}
	m = trim(m)
	if m.IsZero() {
		neg = false
	}
	return Int{neg: neg, mag: m}
}

// Mul returns a * b using grade-school convolution: every digit product
// a[i]*b[j] is accumulated into bucket i+j, then a single carry pass
// normalizes the buckets back into decimal digits. Cost is
// O(len(a)*len(b)), which is fine at calculator scale.
func Mul(a, b Magnitude) Magnitude {
	buckets := make([]int, len(a)+len(b))
	for i := range a {
		for j := range b {
			buckets[i+j] += int(a[i]) * int(b[j])
		}
	}
	for i := 0; i < len(buckets)-1; i++ {
		buckets[i+1] += buckets[i] / 10
		buckets[i] %= 10
	}
	c := make(Magnitude, len(buckets))
	for i, d := range buckets {
		c[i] = uint8(d)
	}
	return trim(c)
}

// QuoRem returns the quotient and remainder of a / b. A zero divisor yields
// ErrDivisionByZero; callers can therefore tell "divide by zero" apart from
// a legitimately zero quotient. Both results are non-negative magnitudes
// (see Int.QuoRem for sign composition).
//
// The general case is schoolbook long division from the most significant
// dividend digit down. Each step brings the next digit into the running
// remainder and finds the largest single quotient digit d with d*b <= res
// by binary search; d*b is monotonic in d, which licenses the search.
func QuoRem(a, b Magnitude) (q, r Magnitude, err error) {
	if b.IsZero() {
		return nil, nil, ErrDivisionByZero
	}
	if a.IsZero() {
		return Zero(), Zero(), nil
	}
	switch Compare(a, b) {
	case -1:
		return Zero(), append(Magnitude(nil), a...), nil
	case 0:
		return One(), Zero(), nil
	}

	q = make(Magnitude, len(a))
	res := Zero()
	for i := len(a) - 1; i >= 0; i-- {
		// Bring down the next dividend digit and re-canonicalize: the trim
		// is load-bearing, Compare relies on canonical lengths.
		res = trim(append(Magnitude{a[i]}, res...))

		lo, hi := 0, 9
		for lo <= hi {
			mid := (lo + hi) / 2
			t := Mul(Magnitude{uint8(mid)}, b)
			if Compare(t, res) <= 0 {
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
		q[i] = uint8(hi)
		if hi > 0 {
			res = Sub(res, Mul(Magnitude{uint8(hi)}, b)).mag
		}
	}
	return trim(q), trim(res), nil
}

// ParseMagnitude converts decimal text into a magnitude. Only ASCII digits
// are accepted; an empty string yields ErrEmptyOperand and any other rune
// yields ErrInvalidDigit. Leading zeros are tolerated on input and trimmed.
func ParseMagnitude(s string) (Magnitude, error) {
	if s == "" {
		return nil, ErrEmptyOperand
	}
	m := make(Magnitude, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return nil, ErrInvalidDigit
		}
		m[len(s)-1-i] = ch - '0'
	}
	return trim(m), nil
}

// Parse converts decimal text into an Int, accepting an optional leading
// minus sign so formatted output round-trips. "-0" parses to zero.
func Parse(s string) (Int, error) {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	m, err := ParseMagnitude(s)
	if err != nil {
		return Int{}, err
	}
	if m.IsZero() {
		neg = false
	}
	return Int{neg: neg, mag: m}, nil
}

// Format renders the magnitude as decimal text. The internal layout is
// least-significant first, so the traversal direction is the caller's
// choice: msFirst renders the conventional reading order.
func (m Magnitude) Format(msFirst bool) string {
	var sb strings.Builder
	sb.Grow(len(m))
	if msFirst {
		for i := len(m) - 1; i >= 0; i-- {
			sb.WriteByte('0' + m[i])
		}
	} else {
		for i := 0; i < len(m); i++ {
			sb.WriteByte('0' + m[i])
		}
	}
	return sb.String()
}

// String renders the magnitude most-significant digit first.
func (m Magnitude) String() string { return m.Format(true) }

// Format renders x with a minus prefix for non-zero negatives.
func (x Int) Format(msFirst bool) string {
	if x.neg && !x.mag.IsZero() {
		return "-" + x.mag.Format(msFirst)
	}
	return x.mag.Format(msFirst)
}

// String renders x most-significant digit first.
func (x Int) String() string { return x.Format(true) }
