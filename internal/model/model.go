// Copyright (c) 2026 liuyuxun, 1225
// bigcalc - arbitrary-precision integer calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// package model defines the domain entities shared between the storage
// layer and the user interfaces.
package model

import "time"

// Calculation is one recorded evaluation. Result holds the rendered value
// (for division, the quotient); Remainder is empty for every operator but
// division.
type Calculation struct {
	ID         int
	Expression string
	Operator   string
	OperandA   string
	OperandB   string
	Result     string
	Remainder  string
	CreatedAt  time.Time
}

// String renders the calculation as expression, "=", value, with the
// division remainder after "......".
func (c Calculation) String() string {
	s := c.Expression + "=" + c.Result
	if c.Remainder != "" {
		s += "......" + c.Remainder
	}
	return s
}
