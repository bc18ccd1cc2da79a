// Copyright (c) 2026 liuyuxun, 1225
// bigcalc - arbitrary-precision integer calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/liuyuxun641102/liuyuxun/internal/bigint"
	"github.com/liuyuxun641102/liuyuxun/internal/calc"
	"github.com/liuyuxun641102/liuyuxun/internal/config"
	"github.com/liuyuxun641102/liuyuxun/internal/db"
	"github.com/liuyuxun641102/liuyuxun/internal/i18n"
	"github.com/liuyuxun641102/liuyuxun/internal/model"
)

// calcModel is the interactive calculator view: one text input, the last
// result (or error) underneath.
type calcModel struct {
	engine   *calc.Engine
	cfg      *config.Config
	input    textinput.Model
	result   *calc.Result
	errMsg   string
	advisory bool
	notice   string // transient feedback, e.g. "copied"
}

func newCalcModel(engine *calc.Engine, cfg *config.Config) calcModel {
	ti := textinput.New()
	ti.Placeholder = i18n.T("calc.placeholder")
	ti.Prompt = i18n.T("calc.prompt")
	ti.CharLimit = 0
	ti.Focus()
	return calcModel{engine: engine, cfg: cfg, input: ti}
}

func (m calcModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m calcModel) Update(msg tea.Msg) (calcModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, backToMenu
		case "enter":
			m.evaluate(strings.TrimSpace(m.input.Value()))
			m.input.SetValue("")
			return m, nil
		case "c":
			// Only treat a bare "c" as copy when the input is empty;
			// otherwise it is part of typing (and invalid anyway).
			if m.input.Value() == "" && m.result != nil {
				if err := clipboard.WriteAll(strings.Join(m.result.Strings(), " ")); err != nil {
					m.notice = i18n.T("calc.copy_failed", err)
				} else {
					m.notice = i18n.T("calc.copied")
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// evaluate runs the expression through the engine and records the outcome
// in the model and, on success, in the history store.
func (m *calcModel) evaluate(expr string) {
	m.notice = ""
	m.errMsg = ""
	m.advisory = false
	if expr == "" {
		return
	}

	res, err := m.engine.Evaluate(expr)
	if err != nil {
		m.result = nil
		m.errMsg = localizeError(err)
		return
	}
	m.result = &res
	m.advisory = res.Advisory

	if db.HasStore() && (m.cfg == nil || m.cfg.History.Enabled) {
		c := model.Calculation{
			Expression: res.Expression,
			Operator:   res.Operator,
			OperandA:   res.OperandA,
			OperandB:   res.OperandB,
			Result:     res.Value.String(),
		}
		if res.Remainder != nil {
			c.Remainder = res.Remainder.String()
		}
		if _, err := db.AddCalculation(c); err != nil {
			m.notice = err.Error()
		}
	}
}

// localizeError maps engine errors onto their translated messages.
func localizeError(err error) string {
	switch {
	case errors.Is(err, bigint.ErrDivisionByZero):
		return i18n.T("errors.division_by_zero")
	case errors.Is(err, bigint.ErrExponentTooLarge):
		return i18n.T("errors.exponent_too_large")
	case errors.Is(err, bigint.ErrEmptyOperand):
		return i18n.T("errors.empty_operand")
	case errors.Is(err, bigint.ErrInvalidDigit):
		return i18n.T("errors.invalid_digit")
	case errors.Is(err, calc.ErrInvalidOperator):
		return i18n.T("errors.invalid_operator")
	case errors.Is(err, calc.ErrInvalidExpression):
		return i18n.T("errors.invalid_expression")
	default:
		return err.Error()
	}
}

func (m calcModel) View() string {
	var b []string
	b = append(b, titleStyle.Render(i18n.T("calc.title")))
	b = append(b, helpStyle.Render(i18n.T("calc.supported")), "")
	b = append(b, m.input.View(), "")

	switch {
	case m.errMsg != "":
		b = append(b, errorStyle.Render(m.errMsg))
	case m.result != nil:
		out := m.result.Expression + " = " + m.result.Value.String()
		if m.result.Remainder != nil {
			out += "......" + m.result.Remainder.String()
		}
		b = append(b, resultStyle.Render(out))
		if m.advisory {
			b = append(b, advisoryStyle.Render(i18n.T("calc.advisory")))
		}
	}
	if m.notice != "" {
		b = append(b, successStyle.Render(m.notice))
	}

	b = append(b, "", helpStyle.Render(i18n.T("calc.help")))
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, b...))
}
