// Copyright (c) 2026 liuyuxun, 1225
// bigcalc - arbitrary-precision integer calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/liuyuxun641102/liuyuxun/internal/i18n"
)

// languageModel is the language picker. Key handling lives in the router
// because a selection has to flow back into the config and trigger a full
// UI rebuild.
type languageModel struct {
	codes  []string
	names  map[string]string
	cursor int
}

func newLanguageModel() languageModel {
	m := languageModel{
		codes: i18n.SortedLocaleCodes(),
		names: i18n.GetAvailableLocales(),
	}
	current := i18n.GetLang()
	for i, code := range m.codes {
		if code == current {
			m.cursor = i
			break
		}
	}
	return m
}

func (m languageModel) View() string {
	lines := []string{titleStyle.Render(i18n.T("language.title")), ""}
	for i, code := range m.codes {
		name := m.names[code]
		if name == "" {
			name = code
		}
		if i == m.cursor {
			lines = append(lines, selectedItemStyle.Render("▸ "+name))
		} else {
			lines = append(lines, itemStyle.Render("  "+name))
		}
	}
	lines = append(lines, "", helpStyle.Render(i18n.T("language.help")))
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
