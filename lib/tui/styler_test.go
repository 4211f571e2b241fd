// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/Autochez/fork-you/lib/config"
	"github.com/Autochez/fork-you/lib/location"
	"github.com/Autochez/fork-you/lib/ranged"
)

func sampleLocations() []location.Location {
	discriminator := ranged.MustNew[location.DiscriminatorBounds](5)
	return []location.Location{
		location.AtHighfield(location.HighfieldClassroom(location.Howard, location.Ground(), discriminator)),
		location.AtHighfield(location.HighfieldSportsHall()),
		location.AtFearnhill(location.FearnhillClassroom(location.Music, discriminator)),
		location.AtFearnhill(location.FearnhillDramaStudio()),
	}
}

func TestStylerDisabled(t *testing.T) {
	var buffer bytes.Buffer
	styler := NewStyler(&buffer, DefaultTheme, false)

	for _, loc := range sampleLocations() {
		if got, want := styler.Identifier(loc), loc.String(); got != want {
			t.Errorf("Identifier() = %q, want %q", got, want)
		}
	}
	if got := styler.Header("highfield"); got != "highfield" {
		t.Errorf("Header() = %q, want plain text", got)
	}
	if got := styler.Faint("#3"); got != "#3" {
		t.Errorf("Faint() = %q, want plain text", got)
	}
	if got := styler.Warning("collision"); got != "collision" {
		t.Errorf("Warning() = %q, want plain text", got)
	}
}

func TestStylerEnabled(t *testing.T) {
	var buffer bytes.Buffer
	styler := NewStyler(&buffer, DefaultTheme, true)

	for _, loc := range sampleLocations() {
		styled := styler.Identifier(loc)
		if !strings.Contains(styled, "\x1b[") {
			t.Errorf("Identifier(%s) = %q, want escape sequences", loc, styled)
		}
		if got := ansi.Strip(styled); got != loc.String() {
			t.Errorf("visible text = %q, want %q", got, loc.String())
		}
	}
}

func TestStylerSchoolsDiffer(t *testing.T) {
	var buffer bytes.Buffer
	styler := NewStyler(&buffer, DefaultTheme, true)

	highfield := styler.Identifier(location.AtHighfield(location.HighfieldSportsHall()))
	fearnhill := styler.Identifier(location.AtFearnhill(location.FearnhillSportsHall()))
	if !strings.Contains(highfield, "38;5;75") {
		t.Errorf("Highfield identifier %q does not use the Highfield color", highfield)
	}
	if !strings.Contains(fearnhill, "38;5;114") {
		t.Errorf("Fearnhill identifier %q does not use the Fearnhill color", fearnhill)
	}
}

func TestSchoolColor(t *testing.T) {
	theme := DefaultTheme
	if got := theme.SchoolColor(location.Highfield); got != theme.Highfield {
		t.Errorf("SchoolColor(Highfield) = %q, want %q", got, theme.Highfield)
	}
	if got := theme.SchoolColor(location.Fearnhill); got != theme.Fearnhill {
		t.Errorf("SchoolColor(Fearnhill) = %q, want %q", got, theme.Fearnhill)
	}
	if got := theme.SchoolColor(location.School(0)); got != theme.NormalText {
		t.Errorf("SchoolColor(0) = %q, want NormalText", got)
	}
}

func TestColorEnabled(t *testing.T) {
	var buffer bytes.Buffer
	tests := []struct {
		mode config.ColorMode
		want bool
	}{
		{config.ColorAlways, true},
		{config.ColorNever, false},
		{config.ColorAuto, false}, // a buffer is not a terminal
	}
	for _, test := range tests {
		if got := ColorEnabled(test.mode, &buffer); got != test.want {
			t.Errorf("ColorEnabled(%s) = %v, want %v", test.mode, got, test.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	var buffer bytes.Buffer
	styler := NewStyler(&buffer, DefaultTheme, true)

	styled := styler.Header("UG01")
	padded := PadRight(styled, 8)
	if got := ansi.StringWidth(padded); got != 8 {
		t.Errorf("width = %d, want 8", got)
	}
	if got := PadRight("Sports Hall", 4); got != "Sports Hall" {
		t.Errorf("PadRight() truncated or padded wide text: %q", got)
	}
	if got := PadRight("E1", 4); got != "E1  " {
		t.Errorf("PadRight() = %q, want %q", got, "E1  ")
	}
}
