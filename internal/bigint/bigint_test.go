// Copyright (c) 2026 liuyuxun, 1225
// bigcalc - arbitrary-precision integer calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package bigint

import (
	"errors"
	"testing"
)

// mag parses a decimal literal or fails the test.
func mag(t *testing.T, s string) Magnitude {
	t.Helper()
	m, err := ParseMagnitude(s)
	if err != nil {
		t.Fatalf("ParseMagnitude(%q) failed: %v", s, err)
	}
	return m
}

func TestParseMagnitude(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want Magnitude
		}{
			{"0", Magnitude{0}},
			{"7", Magnitude{7}},
			{"42", Magnitude{2, 4}},
			{"1024", Magnitude{4, 2, 0, 1}},
			{"000", Magnitude{0}},
			{"00123", Magnitude{3, 2, 1}},
		}
		for _, tt := range tests {
			got, err := ParseMagnitude(tt.s)
			if err != nil {
				t.Errorf("ParseMagnitude(%q) failed: %v", tt.s, err)
				continue
			}
			if Compare(got, tt.want) != 0 || len(got) != len(tt.want) {
				t.Errorf("ParseMagnitude(%q) = %v, want %v", tt.s, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			s       string
			wantErr error
		}{
			{"", ErrEmptyOperand},
			{"12a4", ErrInvalidDigit},
			{"-12", ErrInvalidDigit},
			{" 1", ErrInvalidDigit},
		}
		for _, tt := range tests {
			_, err := ParseMagnitude(tt.s)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseMagnitude(%q) error = %v, want %v", tt.s, err, tt.wantErr)
			}
		}
	})
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"0", "0", 0},
		{"1", "0", 1},
		{"0", "1", -1},
		{"9", "10", -1},
		{"10", "9", 1},
		{"123", "123", 0},
		{"123", "124", -1},
		{"999", "998", 1},
		{"1000000000000000000000", "999999999999999999999", 1},
	}
	for _, tt := range tests {
		if got := Compare(mag(t, tt.a), mag(t, tt.b)); got != tt.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"0", "0", "0"},
		{"1", "0", "1"},
		{"999", "1", "1000"},
		{"1", "999", "1000"},
		{"12345", "67890", "80235"},
		{"99999999999999999999", "1", "100000000000000000000"},
		{"500", "500", "1000"},
	}
	for _, tt := range tests {
		got := Add(mag(t, tt.a), mag(t, tt.b))
		if got.String() != tt.want {
			t.Errorf("Add(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"0", "0", "0"},
		{"5", "5", "0"},
		{"10", "1", "9"},
		{"1", "10", "-9"},
		{"100", "999", "-899"},
		{"1000", "1", "999"},
		{"10000000000000000000", "1", "9999999999999999999"},
		{"123456789", "123456788", "1"},
	}
	for _, tt := range tests {
		got := Sub(mag(t, tt.a), mag(t, tt.b))
		if got.String() != tt.want {
			t.Errorf("Sub(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSub_ZeroNeverNegative(t *testing.T) {
	got := Sub(mag(t, "42"), mag(t, "42"))
	if got.Sign() != 0 {
		t.Fatalf("Sub(42, 42).Sign() = %d, want 0", got.Sign())
	}
	if got.String() != "0" {
		t.Fatalf("Sub(42, 42) = %q, want \"0\"", got.String())
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"0", "0", "0"},
		{"0", "12345", "0"},
		{"12345", "0", "0"},
		{"1", "12345", "12345"},
		{"123", "456", "56088"},
		{"99", "99", "9801"},
		{"99999999999999999999", "99999999999999999999", "9999999999999999999800000000000000000001"},
	}
	for _, tt := range tests {
		got := Mul(mag(t, tt.a), mag(t, tt.b))
		if got.String() != tt.want {
			t.Errorf("Mul(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestQuoRem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a, b, wantQ, wantR string
		}{
			{"0", "7", "0", "0"},
			{"3", "7", "0", "3"},
			{"7", "7", "1", "0"},
			{"100", "7", "14", "2"},
			{"1024", "2", "512", "0"},
			{"1000000", "999", "1001", "1"},
			{"56088", "456", "123", "0"},
			{"99999999999999999999", "3", "33333333333333333333", "0"},
			{"1000000000000000000", "7", "142857142857142857", "1"},
		}
		for _, tt := range tests {
			q, r, err := QuoRem(mag(t, tt.a), mag(t, tt.b))
			if err != nil {
				t.Errorf("QuoRem(%s, %s) failed: %v", tt.a, tt.b, err)
				continue
			}
			if q.String() != tt.wantQ || r.String() != tt.wantR {
				t.Errorf("QuoRem(%s, %s) = (%s, %s), want (%s, %s)", tt.a, tt.b, q, r, tt.wantQ, tt.wantR)
			}
		}
	})

	t.Run("division by zero", func(t *testing.T) {
		for _, a := range []string{"0", "5", "123456789"} {
			_, _, err := QuoRem(mag(t, a), mag(t, "0"))
			if !errors.Is(err, ErrDivisionByZero) {
				t.Errorf("QuoRem(%s, 0) error = %v, want ErrDivisionByZero", a, err)
			}
		}
	})
}

func TestPow(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			base, exp, want string
		}{
			{"0", "0", "1"}, // 0^0 = 1 by convention
			{"5", "0", "1"},
			{"0", "5", "0"},
			{"7", "1", "7"},
			{"2", "10", "1024"},
			{"10", "5", "100000"},
			{"3", "21", "10460353203"},
			{"999", "3", "997002999"},
		}
		for _, tt := range tests {
			got, err := Pow(mag(t, tt.base), mag(t, tt.exp))
			if err != nil {
				t.Errorf("Pow(%s, %s) failed: %v", tt.base, tt.exp, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("Pow(%s, %s) = %s, want %s", tt.base, tt.exp, got, tt.want)
			}
		}
	})

	t.Run("ceiling", func(t *testing.T) {
		_, err := Pow(mag(t, "2"), mag(t, "1000001"))
		if !errors.Is(err, ErrExponentTooLarge) {
			t.Fatalf("Pow(2, 1000001) error = %v, want ErrExponentTooLarge", err)
		}
		if _, err := PowLimit(mag(t, "2"), mag(t, "101"), 100); !errors.Is(err, ErrExponentTooLarge) {
			t.Fatalf("PowLimit(2, 101, 100) error = %v, want ErrExponentTooLarge", err)
		}
		if _, err := PowLimit(mag(t, "2"), mag(t, "100"), 100); err != nil {
			t.Fatalf("PowLimit(2, 100, 100) failed: %v", err)
		}
	})

	t.Run("digits", func(t *testing.T) {
		// power([2], [10]) == [4, 2, 0, 1] read low-to-high.
		got, err := Pow(Magnitude{2}, Magnitude{0, 1})
		if err != nil {
			t.Fatalf("Pow failed: %v", err)
		}
		want := Magnitude{4, 2, 0, 1}
		if len(got) != len(want) {
			t.Fatalf("Pow(2, 10) = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("Pow(2, 10) = %v, want %v", got, want)
			}
		}
	})
}

func TestExceedsWarn(t *testing.T) {
	tests := []struct {
		exp  string
		warn int
		want bool
	}{
		{"1000", 0, false},
		{"1001", 0, true},
		{"999999", 0, true},
		{"11", 10, true},
		{"10", 10, false},
	}
	for _, tt := range tests {
		if got := ExceedsWarn(mag(t, tt.exp), tt.warn); got != tt.want {
			t.Errorf("ExceedsWarn(%s, %d) = %v, want %v", tt.exp, tt.warn, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		s       string
		msFirst bool
		want    string
	}{
		{"0", true, "0"},
		{"0", false, "0"},
		{"1024", true, "1024"},
		{"1024", false, "4201"},
		{"-899", true, "-899"},
		{"-899", false, "-998"},
		{"-0", true, "0"},
	}
	for _, tt := range tests {
		x, err := Parse(tt.s)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tt.s, err)
		}
		if got := x.Format(tt.msFirst); got != tt.want {
			t.Errorf("Parse(%q).Format(%v) = %q, want %q", tt.s, tt.msFirst, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	// Formatting a result and re-parsing it must yield an identical value.
	for _, s := range []string{"0", "1", "10", "1024", "-899", "99999999999999999999"} {
		x, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", s, err)
		}
		y, err := Parse(x.String())
		if err != nil {
			t.Fatalf("re-Parse(%q) failed: %v", x.String(), err)
		}
		if x.Cmp(y) != 0 || x.String() != y.String() {
			t.Errorf("round trip of %q: got %q", s, y.String())
		}
	}
}

var propertySamples = []string{"0", "1", "2", "9", "10", "99", "100", "999", "12345", "99999999999999999999"}

func TestAdd_Properties(t *testing.T) {
	for _, sa := range propertySamples {
		for _, sb := range propertySamples {
			a, b := mag(t, sa), mag(t, sb)
			// Commutativity.
			if Compare(Add(a, b), Add(b, a)) != 0 {
				t.Errorf("Add(%s, %s) != Add(%s, %s)", sa, sb, sb, sa)
			}
			// Additive identity.
			if Compare(Add(a, Zero()), a) != 0 {
				t.Errorf("Add(%s, 0) != %s", sa, sa)
			}
			for _, sc := range propertySamples {
				c := mag(t, sc)
				// Associativity.
				if Compare(Add(Add(a, b), c), Add(a, Add(b, c))) != 0 {
					t.Errorf("(%s+%s)+%s != %s+(%s+%s)", sa, sb, sc, sa, sb, sc)
				}
			}
		}
	}
}

func TestSub_AddInverse(t *testing.T) {
	// a - b + b == a for any sign outcome.
	for _, sa := range propertySamples {
		for _, sb := range propertySamples {
			a, b := mag(t, sa), mag(t, sb)
			diff := Sub(a, b)
			back := diff.Add(New(false, b))
			if back.String() != New(false, a).String() {
				t.Errorf("(%s - %s) + %s = %s, want %s", sa, sb, sb, back, sa)
			}
		}
	}
}

func TestMul_Commutative(t *testing.T) {
	for _, sa := range propertySamples {
		for _, sb := range propertySamples {
			a, b := mag(t, sa), mag(t, sb)
			if Compare(Mul(a, b), Mul(b, a)) != 0 {
				t.Errorf("Mul(%s, %s) != Mul(%s, %s)", sa, sb, sb, sa)
			}
		}
	}
}

func TestQuoRem_Law(t *testing.T) {
	// q*b + r == a and 0 <= r < b for all a >= 0, b > 0.
	for _, sa := range propertySamples {
		for _, sb := range propertySamples {
			if sb == "0" {
				continue
			}
			a, b := mag(t, sa), mag(t, sb)
			q, r, err := QuoRem(a, b)
			if err != nil {
				t.Fatalf("QuoRem(%s, %s) failed: %v", sa, sb, err)
			}
			if Compare(r, b) >= 0 {
				t.Errorf("QuoRem(%s, %s): remainder %s >= divisor %s", sa, sb, r, sb)
			}
			if back := Add(Mul(q, b), r); Compare(back, a) != 0 {
				t.Errorf("QuoRem(%s, %s): q*b+r = %s, want %s", sa, sb, back, sa)
			}
		}
	}
}

func TestImmutability(t *testing.T) {
	a := mag(t, "909")
	b := mag(t, "191")
	aCopy := append(Magnitude(nil), a...)
	bCopy := append(Magnitude(nil), b...)

	Add(a, b)
	Sub(a, b)
	Sub(b, a)
	Mul(a, b)
	if _, _, err := QuoRem(a, b); err != nil {
		t.Fatalf("QuoRem failed: %v", err)
	}
	if _, err := Pow(b, Magnitude{3}); err != nil {
		t.Fatalf("Pow failed: %v", err)
	}

	if Compare(a, aCopy) != 0 || Compare(b, bCopy) != 0 {
		t.Fatalf("operands mutated: a=%v b=%v", a, b)
	}
}
