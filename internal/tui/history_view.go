// Copyright (c) 2026 liuyuxun, 1225
// bigcalc - arbitrary-precision integer calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/liuyuxun641102/liuyuxun/internal/db"
	"github.com/liuyuxun641102/liuyuxun/internal/i18n"
	"github.com/liuyuxun641102/liuyuxun/internal/model"
)

// historyLoadedMsg carries the stored calculations into the view.
type historyLoadedMsg struct {
	calcs []model.Calculation
	err   error
}

// historyModel lists the stored calculations in a scrollable viewport.
type historyModel struct {
	viewport viewport.Model
	count    int
	loaded   bool
	err      error
}

func newHistoryModel(width, height int) historyModel {
	vp := viewport.New(width-4, height-8)
	if vp.Width < 20 {
		vp.Width = 68
	}
	if vp.Height < 5 {
		vp.Height = 16
	}
	return historyModel{viewport: vp}
}

func (m historyModel) Init() tea.Cmd {
	return func() tea.Msg {
		if !db.HasStore() {
			return historyLoadedMsg{}
		}
		calcs, err := db.GetAllCalculations()
		return historyLoadedMsg{calcs: calcs, err: err}
	}
}

func (m historyModel) Update(msg tea.Msg) (historyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" || msg.String() == "q" {
			return m, backToMenu
		}
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 8
	case historyLoadedMsg:
		m.loaded = true
		m.err = msg.err
		m.count = len(msg.calcs)
		lines := make([]string, 0, len(msg.calcs))
		for _, c := range msg.calcs {
			lines = append(lines, c.String())
		}
		m.viewport.SetContent(strings.Join(lines, "\n"))
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m historyModel) View() string {
	var b []string
	b = append(b, titleStyle.Render(i18n.T("history.title")))

	switch {
	case m.err != nil:
		b = append(b, errorStyle.Render(m.err.Error()))
	case m.loaded && m.count == 0:
		b = append(b, helpStyle.Render(i18n.T("history.empty")))
	default:
		b = append(b, helpStyle.Render(i18n.T("history.count", m.count)), "")
		b = append(b, m.viewport.View())
	}

	b = append(b, "", helpStyle.Render(i18n.T("history.help")))
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, b...))
}
