// Copyright (c) 2026 liuyuxun, 1225
// bigcalc - arbitrary-precision integer calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// package calc is the boundary between the presentation layers and the
// bigint engine. It takes a raw expression of the form NUMBER OPERATOR
// NUMBER, dispatches to the engine and hands back a tagged Result. All
// failures are sentinel errors; nothing here aborts the process.
package calc

import (
	"errors"
	"strings"

	"github.com/liuyuxun641102/liuyuxun/internal/bigint"
	"github.com/liuyuxun641102/liuyuxun/internal/diag"
)

// Operators supported by the calculator.
const (
	OpAdd = "+"
	OpSub = "-"
	OpMul = "*"
	OpDiv = "/"
	OpPow = "^"
)

var (
	// ErrInvalidOperator is returned for an operator outside {+ - * / ^}.
	ErrInvalidOperator = errors.New("calc: unsupported operator")

	// ErrInvalidExpression is returned when no operator can be found in
	// the input at all.
	ErrInvalidExpression = errors.New("calc: invalid expression")
)

// Limits bounds exponentiation. Zero values fall back to the bigint
// package defaults.
type Limits struct {
	ExponentLimit int
	ExponentWarn  int
}

// Result is the outcome of one successful evaluation.
type Result struct {
	Expression string
	Operator   string
	OperandA   string
	OperandB   string
	Value      bigint.Int
	Remainder  *bigint.Int // set for division only
	Advisory   bool        // exponent exceeded the soft warning threshold
}

// Strings renders the result values most-significant digit first. Division
// yields quotient and remainder, everything else a single value.
func (r Result) Strings() []string {
	if r.Remainder != nil {
		return []string{r.Value.String(), r.Remainder.String()}
	}
	return []string{r.Value.String()}
}

// Engine evaluates expressions. The zero value works with default limits
// and no tracking; construct with New to attach either.
type Engine struct {
	limits  Limits
	tracker *diag.Tracker
}

// New constructs an Engine with the given limits and an optional tracker
// (nil disables accounting).
func New(limits Limits, tracker *diag.Tracker) *Engine {
	return &Engine{limits: limits, tracker: tracker}
}

// Split tears an expression into left operand, operator and right operand
// at the first non-digit byte. The operator is not validated here;
// Evaluate does that.
func Split(input string) (a, op, b string, err error) {
	for i := 0; i < len(input); i++ {
		if input[i] < '0' || input[i] > '9' {
			return input[:i], string(input[i]), input[i+1:], nil
		}
	}
	return "", "", "", ErrInvalidExpression
}

// Evaluate parses and computes a NUMBER OPERATOR NUMBER expression.
// Operands are unsigned decimal literals; negative values only arise as
// results. Errors from the engine (division by zero, exponent ceiling,
// malformed digits) pass through unchanged.
func (e *Engine) Evaluate(input string) (Result, error) {
	input = strings.TrimSpace(input)
	sa, op, sb, err := Split(input)
	if err != nil {
		return Result{}, err
	}
	if sa == "" || sb == "" {
		return Result{}, bigint.ErrEmptyOperand
	}

	a, err := bigint.ParseMagnitude(sa)
	if err != nil {
		return Result{}, err
	}
	b, err := bigint.ParseMagnitude(sb)
	if err != nil {
		return Result{}, err
	}

	res := Result{Expression: input, Operator: op, OperandA: sa, OperandB: sb}
	switch op {
	case OpAdd:
		res.Value = bigint.New(false, bigint.Add(a, b))
	case OpSub:
		res.Value = bigint.Sub(a, b)
	case OpMul:
		res.Value = bigint.New(false, bigint.Mul(a, b))
	case OpDiv:
		q, r, err := bigint.QuoRem(a, b)
		if err != nil {
			return Result{}, err
		}
		res.Value = bigint.New(false, q)
		rem := bigint.New(false, r)
		res.Remainder = &rem
	case OpPow:
		res.Advisory = bigint.ExceedsWarn(b, e.limits.ExponentWarn)
		m, err := bigint.PowLimit(a, b, e.limits.ExponentLimit)
		if err != nil {
			return Result{}, err
		}
		res.Value = bigint.New(false, m)
	default:
		return Result{}, ErrInvalidOperator
	}

	digits := 0
	for _, s := range res.Strings() {
		digits += len(strings.TrimPrefix(s, "-"))
	}
	e.tracker.Record(op, digits)
	return res, nil
}
