// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

// Package catalogue loads the definition files named on a roomid
// command line into one ordered list of entries. The render and check
// commands share it.
package catalogue

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/Autochez/fork-you/lib/config"
	"github.com/Autochez/fork-you/lib/location"
	"github.com/Autochez/fork-you/lib/locationdef"
)

// Entry is one location with its provenance.
type Entry struct {
	// Definition is the name of the file the entry came from, without
	// directory or extension.
	Definition string `json:"definition"`
	// Index is the entry's position within its definition file.
	Index      int               `json:"index"`
	Identifier string            `json:"identifier"`
	Location   location.Location `json:"location"`

	// File is the position of the entry's file among the paths passed
	// to [Read]. Distinct files can share a Definition name.
	File int `json:"-"`
	// Path is the resolved path the entry was read from.
	Path string `json:"-"`
}

// Catalogue is every entry of the loaded files, in command-line order
// and then file order.
type Catalogue struct {
	Entries []Entry
}

// Locations returns the location of every entry, in order.
func (c *Catalogue) Locations() []location.Location {
	locations := make([]location.Location, len(c.Entries))
	for i, entry := range c.Entries {
		locations[i] = entry.Location
	}
	return locations
}

// LoadConfig returns the configuration for a command: the file named by
// path when set, else the file named by ROOMID_CONFIG when set, else
// [config.Default].
func LoadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	if os.Getenv("ROOMID_CONFIG") != "" {
		return config.Load()
	}
	return config.Default(), nil
}

// Read loads the definition files at paths, resolved against the
// configured definitions directory.
func Read(cfg *config.Config, paths []string, logger *slog.Logger) (*Catalogue, error) {
	if len(paths) == 0 {
		return nil, errors.New("at least one definition file is required")
	}

	catalogue := &Catalogue{}
	for file, path := range paths {
		resolved := cfg.DefinitionPath(path)
		definition, err := locationdef.ReadFile(resolved)
		if err != nil {
			return nil, err
		}

		name := locationdef.NameFromPath(resolved)
		logger.Debug("read definition file",
			"path", resolved,
			"definition", name,
			"locations", len(definition.Locations),
		)
		for index, loc := range definition.Locations {
			catalogue.Entries = append(catalogue.Entries, Entry{
				Definition: name,
				Index:      index,
				Identifier: loc.String(),
				Location:   loc,
				File:       file,
				Path:       resolved,
			})
		}
	}
	return catalogue, nil
}

// Label returns "definition #index" for messages.
func (e Entry) Label() string {
	return fmt.Sprintf("%s #%d", e.Definition, e.Index)
}
