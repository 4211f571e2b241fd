// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

// Package check implements "roomid check": identifier collisions
// across definition files.
package check

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/x/ansi"

	"github.com/Autochez/fork-you/cmd/roomid/catalogue"
	"github.com/Autochez/fork-you/cmd/roomid/cli"
	"github.com/Autochez/fork-you/lib/locationdef"
	"github.com/Autochez/fork-you/lib/tui"
)

// checkParams holds the parameters for "roomid check".
type checkParams struct {
	cli.JSONOutput
	ConfigFile string `json:"-" flag:"config" desc:"path to roomid.yaml (default: $ROOMID_CONFIG)"`
}

// collisionReport is one identifier shared by several entries.
type collisionReport struct {
	Identifier string   `json:"identifier"`
	Entries    []string `json:"entries"`

	// sources holds the colliding entries for text output.
	sources []catalogue.Entry
}

// checkResult is the --json output.
type checkResult struct {
	Locations  int               `json:"locations"`
	Collisions []collisionReport `json:"collisions"`
}

// Command returns the "check" command.
func Command() *cli.Command {
	var params checkParams

	return &cli.Command{
		Name:    "check",
		Summary: "Report identifiers shared by more than one location",
		Description: `Read one or more definition files and report every identifier that
more than one entry renders to.

Classroom numbers are not required to be unique by the location model
itself, so two entries can describe the same room. Entries are named
"definition #index" (the file name without extension and the entry's
position in the file). Text output lists each entry with the path it
was read from.

Exits 0 when every identifier is distinct and 1 when any collide.`,
		Usage:  "roomid check [flags] FILE...",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Check both schools' catalogues together",
				Command:     "roomid check highfield.jsonc fearnhill.yaml",
			},
			{
				Description: "Machine-readable report",
				Command:     "roomid check --json rooms.jsonc",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			return run(os.Stdout, &params, args, logger)
		},
	}
}

func run(stdout io.Writer, params *checkParams, args []string, logger *slog.Logger) error {
	cfg, err := catalogue.LoadConfig(params.ConfigFile)
	if err != nil {
		return err
	}

	loaded, err := catalogue.Read(cfg, args, logger)
	if err != nil {
		return err
	}

	result := checkResult{Locations: len(loaded.Entries)}
	for _, collision := range locationdef.Collisions(loaded.Locations()) {
		report := collisionReport{Identifier: collision.Identifier}
		for _, index := range collision.Indexes {
			report.Entries = append(report.Entries, loaded.Entries[index].Label())
			report.sources = append(report.sources, loaded.Entries[index])
		}
		result.Collisions = append(result.Collisions, report)
	}
	if len(result.Collisions) > 0 {
		logger.Warn("identifier collisions found", "collisions", len(result.Collisions))
	}

	done, err := params.EmitJSON(stdout, normalize(result))
	if !done {
		styler := tui.NewStyler(stdout, tui.DefaultTheme, tui.ColorEnabled(cfg.Output.Color, stdout))
		err = writeText(stdout, styler, result)
	}
	if err != nil {
		return err
	}

	if len(result.Collisions) > 0 {
		return &cli.ExitError{Code: 1}
	}
	return nil
}

func normalize(result checkResult) checkResult {
	if result.Collisions == nil {
		result.Collisions = []collisionReport{}
	}
	return result
}

func writeText(w io.Writer, styler *tui.Styler, result checkResult) error {
	if len(result.Collisions) == 0 {
		_, err := fmt.Fprintf(w, "%d locations, no collisions\n", result.Locations)
		return err
	}

	for _, collision := range result.Collisions {
		if _, err := fmt.Fprintf(w, "%s %q\n", styler.Warning("collision:"), collision.Identifier); err != nil {
			return err
		}
		width := 0
		for _, label := range collision.Entries {
			width = max(width, ansi.StringWidth(label))
		}
		for i, entry := range collision.sources {
			label := tui.PadRight(styler.Faint(collision.Entries[i]), width)
			if _, err := fmt.Fprintf(w, "  %s  %s\n", label, entry.Path); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "%d locations, %d colliding identifiers\n", result.Locations, len(result.Collisions))
	return err
}
