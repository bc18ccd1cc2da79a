// Copyright (c) 2026 liuyuxun, 1225
// bigcalc - arbitrary-precision integer calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// tui.go is the top-level entry point of the terminal interface: a
// bubbletea model that routes between the menu dashboard and the
// sub-views (calculator, history, usage, changelog, session stats,
// about, language).
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/liuyuxun641102/liuyuxun/internal/calc"
	"github.com/liuyuxun641102/liuyuxun/internal/config"
	"github.com/liuyuxun641102/liuyuxun/internal/db"
	"github.com/liuyuxun641102/liuyuxun/internal/diag"
	"github.com/liuyuxun641102/liuyuxun/internal/i18n"
	"github.com/liuyuxun641102/liuyuxun/internal/logging"
	"github.com/liuyuxun641102/liuyuxun/internal/model"
)

// viewState represents which part of the UI is currently active.
type viewState int

const (
	menuView viewState = iota
	calcView
	historyView
	usageView
	changelogView
	memoryView
	aboutView
	languageView
)

// Options wires the TUI to the rest of the application. Everything is
// passed in explicitly; the TUI owns no global state of its own.
type Options struct {
	Engine     *calc.Engine
	Tracker    *diag.Tracker
	Config     *config.Config
	SaveConfig func() error // persists Config after a language switch; may be nil
	Version    string
}

// backToMenuMsg asks the router to return to the main menu.
type backToMenuMsg struct{}

func backToMenu() tea.Msg { return backToMenuMsg{} }

// languageChangedMsg signals that the UI must be rebuilt with fresh
// translations.
type languageChangedMsg struct{}

// dashboardDataMsg carries freshly loaded dashboard numbers.
type dashboardDataMsg struct {
	data dashboardData
}

// dashboardData holds the summary shown beside the main menu.
type dashboardData struct {
	historyCount int
	recent       []model.Calculation
	err          error
}

// refreshDashboardCmd loads the dashboard numbers from the history store.
func refreshDashboardCmd() tea.Cmd {
	return func() tea.Msg {
		var d dashboardData
		if db.HasStore() {
			n, err := db.CountCalculations()
			if err != nil {
				d.err = err
				return dashboardDataMsg{data: d}
			}
			d.historyCount = n
			recent, err := db.GetRecentCalculations(5)
			if err != nil {
				d.err = err
				return dashboardDataMsg{data: d}
			}
			d.recent = recent
		}
		return dashboardDataMsg{data: d}
	}
}

// menuModel holds the state for the main menu.
type menuModel struct {
	choices []string
	cursor  int
}

// mainModel is the top-level model. It acts as a state machine and
// router, delegating updates and rendering to the active sub-model.
type mainModel struct {
	opts      Options
	state     viewState
	menu      menuModel
	calc      calcModel
	history   historyModel
	static    staticModel
	memory    memoryModel
	language  languageModel
	dashboard dashboardData
	width     int
	height    int
	err       error
}

func initialModel(opts Options) mainModel {
	return mainModel{
		opts:  opts,
		state: menuView,
		menu: menuModel{
			choices: []string{
				i18n.T("menu.calculator"),
				i18n.T("menu.history"),
				i18n.T("menu.usage"),
				i18n.T("menu.changelog"),
				i18n.T("menu.memory"),
				i18n.T("menu.about"),
				i18n.T("menu.language"),
			},
		},
	}
}

// Init kicks off the initial dashboard load.
func (m mainModel) Init() tea.Cmd {
	return refreshDashboardCmd()
}

// Update is the main message loop, delegating to the active sub-model.
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case dashboardDataMsg:
		m.dashboard = msg.data
		if msg.data.err != nil {
			m.err = msg.data.err
		}
		return m, nil
	case languageChangedMsg:
		// Rebuild everything so fresh translations apply, keeping the
		// window dimensions.
		newModel := initialModel(m.opts)
		newModel.width = m.width
		newModel.height = m.height
		return newModel, newModel.Init()
	}

	if _, ok := msg.(backToMenuMsg); ok && m.state != menuView {
		m.state = menuView
		return m, refreshDashboardCmd()
	}

	switch m.state {
	case calcView:
		m.calc, cmd = m.calc.Update(msg)
	case historyView:
		m.history, cmd = m.history.Update(msg)
	case usageView, changelogView, aboutView:
		m.static, cmd = m.static.Update(msg)
	case memoryView:
		m.memory, cmd = m.memory.Update(msg)
	case languageView:
		return m.updateLanguage(msg)
	default: // menuView
		return m.updateMenu(msg)
	}
	return m, cmd
}

func (m mainModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.menu.cursor > 0 {
			m.menu.cursor--
		}
	case "down", "j":
		if m.menu.cursor < len(m.menu.choices)-1 {
			m.menu.cursor++
		}
	case "u":
		m.state = usageView
		m.static = newStaticModel("usage.title", "usage.body")
		return m, nil
	case "enter":
		switch m.menu.cursor {
		case 0:
			m.state = calcView
			m.calc = newCalcModel(m.opts.Engine, m.opts.Config)
			return m, m.calc.Init()
		case 1:
			m.state = historyView
			m.history = newHistoryModel(m.width, m.height)
			return m, m.history.Init()
		case 2:
			m.state = usageView
			m.static = newStaticModel("usage.title", "usage.body")
			return m, nil
		case 3:
			m.state = changelogView
			m.static = newStaticModel("changelog.title", "changelog.body")
			return m, nil
		case 4:
			m.state = memoryView
			m.memory = newMemoryModel(m.opts.Tracker)
			return m, nil
		case 5:
			m.state = aboutView
			m.static = newStaticModel("about.title", "about.body")
			return m, nil
		case 6:
			m.state = languageView
			m.language = newLanguageModel()
			return m, nil
		}
	}
	return m, nil
}

func (m mainModel) updateLanguage(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "esc":
		m.state = menuView
		return m, refreshDashboardCmd()
	case "up", "k":
		if m.language.cursor > 0 {
			m.language.cursor--
		}
	case "down", "j":
		if m.language.cursor < len(m.language.codes)-1 {
			m.language.cursor++
		}
	case "enter":
		code := m.language.codes[m.language.cursor]
		i18n.SetLang(code)
		if m.opts.Config != nil {
			m.opts.Config.Language = code
		}
		if m.opts.SaveConfig != nil {
			if err := m.opts.SaveConfig(); err != nil {
				m.err = fmt.Errorf("failed to save config: %w", err)
			}
		}
		return m, func() tea.Msg { return languageChangedMsg{} }
	}
	return m, nil
}

// View delegates rendering to the active sub-model.
func (m mainModel) View() string {
	if m.err != nil {
		return docStyle.Render(errorStyle.Render(fmt.Sprintf("An error occurred: %v", m.err)))
	}

	switch m.state {
	case calcView:
		return m.calc.View()
	case historyView:
		return m.history.View()
	case usageView, changelogView, aboutView:
		return m.static.View()
	case memoryView:
		return m.memory.View()
	case languageView:
		return m.language.View()
	default:
		return m.menuView()
	}
}

// menuView renders the banner, the navigation list and the dashboard.
func (m mainModel) menuView() string {
	title := mainTitleStyle.Render("∑ " + i18n.T("dashboard.title"))
	subTitle := helpStyle.Render(i18n.T("dashboard.subtitle"))
	if m.opts.Version != "" {
		subTitle = lipgloss.JoinVertical(lipgloss.Left, subTitle,
			helpStyle.Render(i18n.T("banner.version", m.opts.Version)))
	}
	header := lipgloss.JoinVertical(lipgloss.Left, title, subTitle)

	paneTitleStyle := lipgloss.NewStyle().Bold(true)

	var menuItems []string
	menuItems = append(menuItems, paneTitleStyle.Render(i18n.T("menu.navigation")), "")
	for i, choice := range m.menu.choices {
		if m.menu.cursor == i {
			menuItems = append(menuItems, selectedItemStyle.Render("▸ "+choice))
		} else {
			menuItems = append(menuItems, itemStyle.Render("  "+choice))
		}
	}
	menuContent := lipgloss.JoinVertical(lipgloss.Left, menuItems...)

	var status []string
	status = append(status, paneTitleStyle.Render(i18n.T("dashboard.status")), "")
	if db.HasStore() {
		status = append(status, i18n.T("dashboard.history_count", m.dashboard.historyCount))
		if m.opts.Config != nil {
			status = append(status, i18n.T("dashboard.db_type", m.opts.Config.Database.Type))
		}
	} else {
		status = append(status, helpStyle.Render(i18n.T("dashboard.history_off")))
	}
	if m.opts.Config != nil && m.opts.Config.Engine.ExponentLimit > 0 {
		status = append(status, i18n.T("dashboard.exponent_limit", m.opts.Config.Engine.ExponentLimit))
	}
	status = append(status, i18n.T("dashboard.language", i18n.GetLang()))

	status = append(status, "", paneTitleStyle.Render(i18n.T("dashboard.recent")), "")
	if len(m.dashboard.recent) == 0 {
		status = append(status, helpStyle.Render(i18n.T("dashboard.none_yet")))
	} else {
		for _, c := range m.dashboard.recent {
			status = append(status, "  "+c.String())
		}
	}
	statusContent := lipgloss.JoinVertical(lipgloss.Left, status...)

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().MarginRight(6).Render(menuContent),
		statusContent,
	)

	footer := helpStyle.Render(strings.Join([]string{
		i18n.T("menu.quit_hint"),
		i18n.T("banner.hint_usage"),
	}, " • "))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", panes, "", footer))
}

// Run starts the interactive interface and blocks until it exits.
func Run(opts Options) {
	if _, err := tea.NewProgram(initialModel(opts), tea.WithAltScreen()).Run(); err != nil {
		logging.Errorf("TUI error: %v", err)
	}
}
