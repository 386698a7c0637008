// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	statusStyle = lipgloss.NewStyle().Faint(true)
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	errorPanelStyle = panelStyle.BorderForeground(lipgloss.Color("196"))
	helpStyle       = lipgloss.NewStyle().Faint(true)
)
