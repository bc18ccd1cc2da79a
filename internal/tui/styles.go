// Copyright (c) 2026 liuyuxun, 1225
// bigcalc - arbitrary-precision integer calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the interactive terminal interface for bigcalc.
// This file defines the shared lipgloss styles so the views stay
// consistent.
package tui

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // muted gray
	colorHighlight = lipgloss.Color("81")  // teal/cyan
	colorSpecial   = lipgloss.Color("208") // orange for warnings
	colorError     = lipgloss.Color("196") // bright red
	colorSuccess   = lipgloss.Color("40")  // green
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	helpStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	errorStyle = lipgloss.NewStyle().Foreground(colorError)

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	advisoryStyle = lipgloss.NewStyle().Foreground(colorSpecial)

	mainTitleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			Padding(1, 3)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			Padding(1, 2)

	itemStyle         = lipgloss.NewStyle()
	selectedItemStyle = lipgloss.NewStyle().Foreground(colorHighlight)

	resultStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorHighlight).
			Padding(0, 1)
)
