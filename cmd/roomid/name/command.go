// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

// Package name implements "roomid name": the identifier of one
// location described by flags.
package name

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Autochez/fork-you/cmd/roomid/cli"
	"github.com/Autochez/fork-you/lib/location"
)

// nameParams holds the parameters for "roomid name". The location
// flags mirror the fields of a definition file entry.
type nameParams struct {
	cli.JSONOutput
	School        string `json:"school"        flag:"school,s"        desc:"school: highfield or fearnhill"`
	Room          string `json:"room"          flag:"room,r"          desc:"room kind (hall, sports_hall, gym, dance_studio, drama_studio, classroom)"`
	Block         string `json:"block"         flag:"block,b"         desc:"Highfield block: howard, parker, or unwin"`
	Floor         uint8  `json:"floor"         flag:"floor,f"         desc:"Highfield floor: 0 for ground, 1-9 for upper floors"`
	Section       string `json:"section"       flag:"section"         desc:"Fearnhill section (science, music, it, ...)"`
	Discriminator uint8  `json:"discriminator" flag:"discriminator,d" desc:"classroom number within its floor or section (1-99)"`
}

// nameResult is the --json output.
type nameResult struct {
	Identifier string            `json:"identifier"`
	Location   location.Location `json:"location"`
}

// Command returns the "name" command.
func Command() *cli.Command {
	var params nameParams

	return &cli.Command{
		Name:    "name",
		Summary: "Print the identifier of one location",
		Description: `Build one location from flags and print its canonical identifier.

The flags are the structured fields of a definition file entry. Only
classrooms take block/floor/section/discriminator; the named rooms
(halls, studios, gym) take none. Invalid combinations and out-of-range
numbers are rejected.`,
		Usage:  "roomid name --school SCHOOL --room ROOM [flags]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "A Highfield classroom on the third floor of Parker",
				Command:     "roomid name -s highfield -r classroom -b parker -f 3 -d 27",
			},
			{
				Description: "A Fearnhill music room",
				Command:     "roomid name --school fearnhill --room classroom --section music --discriminator 4",
			},
			{
				Description: "The structured form as JSON",
				Command:     "roomid name --school fearnhill --room gym --json",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			return run(os.Stdout, &params, args, logger)
		},
	}
}

func run(stdout io.Writer, params *nameParams, args []string, logger *slog.Logger) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q (locations are described with flags)", args[0])
	}

	fields := location.Fields{
		School:        params.School,
		Room:          params.Room,
		Block:         params.Block,
		Floor:         params.Floor,
		Section:       params.Section,
		Discriminator: params.Discriminator,
	}
	loc, err := fields.Location()
	if err != nil {
		return fmt.Errorf("invalid location: %w", err)
	}
	logger.Debug("named location", "identifier", loc.String())

	if done, err := params.EmitJSON(stdout, nameResult{Identifier: loc.String(), Location: loc}); done {
		return err
	}
	_, err = fmt.Fprintln(stdout, loc)
	return err
}
