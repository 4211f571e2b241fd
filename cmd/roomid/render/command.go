// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

// Package render implements "roomid render": the identifiers of every
// location in one or more definition files.
package render

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Autochez/fork-you/cmd/roomid/catalogue"
	"github.com/Autochez/fork-you/cmd/roomid/cli"
	"github.com/Autochez/fork-you/lib/codec"
	"github.com/Autochez/fork-you/lib/config"
	"github.com/Autochez/fork-you/lib/locationdef"
	"github.com/Autochez/fork-you/lib/tui"
)

// renderParams holds the parameters for "roomid render". Empty Format
// and Color fall back to the configuration file.
type renderParams struct {
	ConfigFile  string `json:"-"           flag:"config"      desc:"path to roomid.yaml (default: $ROOMID_CONFIG)"`
	Format      string `json:"format"      flag:"format,o"    desc:"output format: text, json, cbor, or diag (default from config)"`
	Color       string `json:"color"       flag:"color"       desc:"styled text: auto, always, or never (default from config)"`
	Fingerprint bool   `json:"fingerprint" flag:"fingerprint" desc:"append the catalogue fingerprint"`
}

// renderOutput is the structured (JSON and CBOR) form of a rendered
// catalogue.
type renderOutput struct {
	Entries     []catalogue.Entry `json:"entries"`
	Fingerprint string            `json:"fingerprint,omitempty"`
}

// Command returns the "render" command.
func Command() *cli.Command {
	var params renderParams

	return &cli.Command{
		Name:    "render",
		Summary: "Render the identifiers of definition files",
		Description: `Read one or more definition files and print the canonical identifier
of every location, in file order.

Definition files are JSONC (comments and trailing commas allowed) or
YAML (.yaml/.yml). Relative paths are resolved against
definitions.directory from the configuration.

Text output is one identifier per line, with a header per file when
more than one file is given. Styling is applied when stdout is a
terminal (see --color). JSON and CBOR output carry each entry's
definition name, index, identifier, and structured location. CBOR uses
Core Deterministic Encoding; diag prints the same CBOR in diagnostic
notation (RFC 8949 section 8) for reading without a CBOR tool.

--fingerprint appends a keyed BLAKE3 digest of the identifier sequence.
Two catalogues share a fingerprint exactly when they render the same
identifiers in the same order.`,
		Usage:  "roomid render [flags] FILE...",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Print identifiers",
				Command:     "roomid render highfield.jsonc fearnhill.yaml",
			},
			{
				Description: "JSON with fingerprint",
				Command:     "roomid render --format json --fingerprint rooms.jsonc",
			},
			{
				Description: "CBOR for another program",
				Command:     "roomid render -o cbor rooms.jsonc > rooms.cbor",
			},
			{
				Description: "Inspect the CBOR form as text",
				Command:     "roomid render -o diag rooms.jsonc",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			return run(os.Stdout, &params, args, logger)
		},
	}
}

func run(stdout io.Writer, params *renderParams, args []string, logger *slog.Logger) error {
	cfg, err := catalogue.LoadConfig(params.ConfigFile)
	if err != nil {
		return err
	}
	if params.Format != "" {
		cfg.Output.Format = config.Format(params.Format)
	}
	if params.Color != "" {
		cfg.Output.Color = config.ColorMode(params.Color)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	loaded, err := catalogue.Read(cfg, args, logger)
	if err != nil {
		return err
	}

	output := renderOutput{Entries: loaded.Entries}
	if params.Fingerprint {
		output.Fingerprint = locationdef.Fingerprint(loaded.Locations()).String()
	}
	logger.Debug("rendered catalogue",
		"files", len(args),
		"entries", len(loaded.Entries),
		"format", cfg.Output.Format,
	)

	switch cfg.Output.Format {
	case config.FormatJSON:
		if output.Entries == nil {
			output.Entries = []catalogue.Entry{}
		}
		return cli.WriteJSON(stdout, output)
	case config.FormatCBOR:
		return codec.NewEncoder(stdout).Encode(output)
	case config.FormatDiag:
		return writeDiag(stdout, output)
	default:
		styler := tui.NewStyler(stdout, tui.DefaultTheme, tui.ColorEnabled(cfg.Output.Color, stdout))
		return writeText(stdout, styler, output, len(args) > 1)
	}
}

// writeDiag writes the CBOR form of output in diagnostic notation.
func writeDiag(w io.Writer, output renderOutput) error {
	data, err := codec.Marshal(output)
	if err != nil {
		return fmt.Errorf("encoding catalogue: %w", err)
	}
	notation, err := codec.Diagnose(data)
	if err != nil {
		return fmt.Errorf("diagnosing catalogue: %w", err)
	}
	_, err = fmt.Fprintln(w, notation)
	return err
}

// writeText writes one identifier per line. With headers, each
// file's entries are preceded by its definition name.
func writeText(w io.Writer, styler *tui.Styler, output renderOutput, headers bool) error {
	current := -1
	for i, entry := range output.Entries {
		if headers && entry.File != current {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w, styler.Header(entry.Definition+":")); err != nil {
				return err
			}
			current = entry.File
		}
		if _, err := fmt.Fprintln(w, styler.Identifier(entry.Location)); err != nil {
			return err
		}
	}
	if output.Fingerprint != "" {
		if _, err := fmt.Fprintln(w, styler.Faint("fingerprint: "+output.Fingerprint)); err != nil {
			return err
		}
	}
	return nil
}
