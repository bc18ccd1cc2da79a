// Copyright (c) 2026 liuyuxun, 1225
// bigcalc - arbitrary-precision integer calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/liuyuxun641102/liuyuxun/internal/i18n"
)

// staticModel renders a localized title and body with no interaction
// beyond going back. Usage, changelog and about all share it.
type staticModel struct {
	titleID string
	bodyID  string
}

func newStaticModel(titleID, bodyID string) staticModel {
	return staticModel{titleID: titleID, bodyID: bodyID}
}

func (m staticModel) Update(msg tea.Msg) (staticModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q", "enter":
			return m, backToMenu
		}
	}
	return m, nil
}

func (m staticModel) View() string {
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(i18n.T(m.titleID)),
		i18n.T(m.bodyID),
		"",
		helpStyle.Render(i18n.T("menu.back_hint")),
	))
}
