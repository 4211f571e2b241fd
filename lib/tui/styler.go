// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/Autochez/fork-you/lib/config"
	"github.com/Autochez/fork-you/lib/location"
)

// Styler renders text for one output writer.
type Styler struct {
	renderer *lipgloss.Renderer
	theme    Theme
}

// NewStyler returns a Styler for w. When enabled is false every method
// returns its input unchanged.
func NewStyler(w io.Writer, theme Theme, enabled bool) *Styler {
	profile := termenv.Ascii
	if enabled {
		profile = termenv.ANSI256
	}
	// SetColorProfile is required: the renderer otherwise probes the
	// writer and would drop colors for anything but a terminal.
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)
	return &Styler{renderer: renderer, theme: theme}
}

// Identifier renders the identifier of loc in its school's color.
// Named rooms (halls, studios) are italic; classrooms are bold.
func (s *Styler) Identifier(loc location.Location) string {
	style := s.renderer.NewStyle().Foreground(s.theme.SchoolColor(loc.School()))
	if isClassroom(loc) {
		style = style.Bold(true)
	} else {
		style = style.Italic(true)
	}
	return style.Render(loc.String())
}

// Header renders a section heading.
func (s *Styler) Header(text string) string {
	return s.renderer.NewStyle().Foreground(s.theme.HeaderForeground).Bold(true).Render(text)
}

// Faint renders secondary text such as indexes and fingerprints.
func (s *Styler) Faint(text string) string {
	return s.renderer.NewStyle().Foreground(s.theme.FaintText).Render(text)
}

// Warning renders problem reports.
func (s *Styler) Warning(text string) string {
	return s.renderer.NewStyle().Foreground(s.theme.WarningForeground).Bold(true).Render(text)
}

func isClassroom(loc location.Location) bool {
	if room, ok := loc.Highfield(); ok {
		_, _, _, classroom := room.Classroom()
		return classroom
	}
	if room, ok := loc.Fearnhill(); ok {
		_, _, classroom := room.Classroom()
		return classroom
	}
	return false
}

// ColorEnabled reports whether output to w should be styled under
// mode. In auto mode only terminals are styled.
func ColorEnabled(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		file, ok := w.(*os.File)
		return ok && term.IsTerminal(int(file.Fd()))
	}
}

// PadRight pads styled text with spaces to width display columns.
// Escape sequences do not count toward the width. Text already at
// least width wide is returned unchanged.
func PadRight(styled string, width int) string {
	padding := width - ansi.StringWidth(styled)
	if padding <= 0 {
		return styled
	}
	return styled + strings.Repeat(" ", padding)
}
