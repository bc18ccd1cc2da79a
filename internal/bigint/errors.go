// Copyright (c) 2026 liuyuxun, 1225
// bigcalc - arbitrary-precision integer calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package bigint

import "errors"

// Sentinel errors returned by the arithmetic core. All of them are
// detectable before any computation starts, so no partial result ever
// needs unwinding. Match with errors.Is.
var (
	// ErrDivisionByZero is returned by QuoRem for a zero divisor.
	ErrDivisionByZero = errors.New("bigint: division by zero")

	// ErrExponentTooLarge is returned by Pow when the exponent's decimal
	// value exceeds the configured ceiling.
	ErrExponentTooLarge = errors.New("bigint: exponent too large")

	// ErrInvalidDigit is returned when parsing text containing anything
	// other than ASCII digits.
	ErrInvalidDigit = errors.New("bigint: invalid decimal digit")

	// ErrEmptyOperand is returned when parsing an empty string.
	ErrEmptyOperand = errors.New("bigint: empty operand")
)
