// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete roomid CLI command tree.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	checkcmd "github.com/Autochez/fork-you/cmd/roomid/check"
	"github.com/Autochez/fork-you/cmd/roomid/cli"
	namecmd "github.com/Autochez/fork-you/cmd/roomid/name"
	rendercmd "github.com/Autochez/fork-you/cmd/roomid/render"
	"github.com/Autochez/fork-you/lib/version"
)

// Root builds and returns the complete roomid CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "roomid",
		Description: `roomid: canonical room identifiers for Highfield and Fearnhill.

Every room at either school has exactly one identifier, built from its
structured description: "HG05" is classroom 5 on the ground floor of
Howard block, "FH Mu4" is Fearnhill music room 4. Identifiers are
output only; rooms are always described by school, room kind, and the
classroom fields.`,
		Subcommands: []*cli.Command{
			namecmd.Command(),
			rendercmd.Command(),
			checkcmd.Command(),
			versionCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Identifier of one classroom",
				Command:     "roomid name --school highfield --room classroom --block howard --discriminator 5",
			},
			{
				Description: "Identifiers of every room in a definition file",
				Command:     "roomid render rooms.jsonc",
			},
			{
				Description: "Find rooms described twice",
				Command:     "roomid check highfield.jsonc fearnhill.yaml",
			},
		},
	}
}

type versionParams struct {
	cli.JSONOutput
}

func versionCommand() *cli.Command {
	var params versionParams

	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Params:  func() any { return &params },
		Run: func(_ context.Context, _ []string, _ *slog.Logger) error {
			if done, err := params.EmitJSON(os.Stdout, version.Current()); done {
				return err
			}
			fmt.Printf("roomid %s\n", version.Full())
			return nil
		},
	}
}
