// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the roomid CLI.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a flag source, and a Run
// function. Commands are assembled into a tree in cmd/roomid/commands
// and dispatched via [Command.Execute], which handles flag parsing,
// subcommand routing, and structured help output with examples.
//
// Flags come from either a [pflag.FlagSet] factory or, more commonly, a
// tagged parameter struct bound by [FlagsFromParams]. Embedding
// [JSONOutput] in the struct adds --json.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3). This is implemented in
// suggest.go.
//
// Run functions receive a [*slog.Logger] scoped to the command path.
// The logger comes from the context ([WithLogger]) or, by default,
// [NewCommandLogger].
package cli
