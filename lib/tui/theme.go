// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Autochez/fork-you/lib/location"
)

// Theme defines the color palette for roomid's terminal output. All
// colors use lipgloss ANSI 256-color codes for broad terminal
// compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// School colors for rendered identifiers.
	Highfield lipgloss.Color
	Fearnhill lipgloss.Color

	// UI chrome.
	HeaderForeground  lipgloss.Color
	WarningForeground lipgloss.Color
}

// SchoolColor returns the color for identifiers at school. Undeclared
// schools return NormalText.
func (theme Theme) SchoolColor(school location.School) lipgloss.Color {
	switch school {
	case location.Highfield:
		return theme.Highfield
	case location.Fearnhill:
		return theme.Fearnhill
	default:
		return theme.NormalText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	Highfield: lipgloss.Color("75"),  // blue
	Fearnhill: lipgloss.Color("114"), // green

	HeaderForeground:  lipgloss.Color("255"),
	WarningForeground: lipgloss.Color("196"), // red
}
