// Package ui is the interactive dashboard: a read-mostly bubbletea view
// over the engine with routine toggling, status changes, and async
// advisory enrichment.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"silentvoices/internal/types"
)

// SilentVoices theme. Small on purpose: a few reusable styles.

var (
	cGreen = lipgloss.Color("42")
	cAmber = lipgloss.Color("214")
	cRed   = lipgloss.Color("196")
	cTeal  = lipgloss.Color("30")
	cMuted = lipgloss.Color("244")
	cGold  = lipgloss.Color("220")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(cTeal)
	mutedStyle  = lipgloss.NewStyle().Foreground(cMuted)
	goldStyle   = lipgloss.NewStyle().Foreground(cGold)
	notifStyle  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(cTeal)

	statusStyles = map[types.Status]lipgloss.Style{
		types.StatusGreen: lipgloss.NewStyle().Bold(true).Foreground(cGreen),
		types.StatusAmber: lipgloss.NewStyle().Bold(true).Foreground(cAmber),
		types.StatusRed:   lipgloss.NewStyle().Bold(true).Foreground(cRed),
	}

	riskStyles = map[types.RiskLevel]lipgloss.Style{
		types.RiskLow:    lipgloss.NewStyle().Foreground(cGreen),
		types.RiskMedium: lipgloss.NewStyle().Foreground(cAmber),
		types.RiskHigh:   lipgloss.NewStyle().Bold(true).Foreground(cRed),
	}
)

func statusText(s types.Status) string {
	if style, ok := statusStyles[s]; ok {
		return style.Render(string(s))
	}
	return string(s)
}

func riskText(r types.RiskLevel) string {
	if style, ok := riskStyles[r]; ok {
		return style.Render(string(r))
	}
	return string(r)
}
