// Copyright (c) 2026 liuyuxun, 1225
// bigcalc - arbitrary-precision integer calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/liuyuxun641102/liuyuxun/internal/diag"
	"github.com/liuyuxun641102/liuyuxun/internal/i18n"
)

// memoryModel shows the session resource counters from the tracker.
type memoryModel struct {
	tracker *diag.Tracker
}

func newMemoryModel(t *diag.Tracker) memoryModel {
	return memoryModel{tracker: t}
}

func (m memoryModel) Update(msg tea.Msg) (memoryModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q", "enter":
			return m, backToMenu
		}
	}
	return m, nil
}

func (m memoryModel) View() string {
	snap := m.tracker.Snapshot()

	lines := []string{
		titleStyle.Render(i18n.T("memory.title")),
		i18n.T("memory.operations", snap.Operations),
		i18n.T("memory.digits_total", snap.DigitsTotal),
		i18n.T("memory.peak", snap.PeakDigits),
		i18n.T("memory.uptime", snap.Uptime.Round(time.Second)),
	}

	if len(snap.ByOperator) > 0 {
		lines = append(lines, "", titleStyle.Render(i18n.T("memory.by_operator")))
		ops := make([]string, 0, len(snap.ByOperator))
		for op := range snap.ByOperator {
			ops = append(ops, op)
		}
		sort.Strings(ops)
		for _, op := range ops {
			lines = append(lines, fmt.Sprintf("  %s  %d", op, snap.ByOperator[op]))
		}
	}

	lines = append(lines, "", helpStyle.Render(i18n.T("menu.back_hint")))
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
