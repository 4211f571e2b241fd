// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the roomid
// command.
//
// Configuration is loaded from a single file specified by either the
// ROOMID_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There are no fallbacks, no ~/.config discovery,
// and no automatic file search. Commands that run without a config
// file use [Default].
//
// Variable expansion is performed on path fields after loading:
// ${HOME} and ${VAR:-default} patterns are expanded. No other
// environment variables override config values.
//
// Key exports:
//
//   - [Config] -- master struct with Output and Definitions
//   - [Default] -- returns a Config with interactive defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.DefinitionPath] -- resolves definition file arguments
//
// This package depends on no other roomid packages.
package config
