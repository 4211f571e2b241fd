// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for the roomid
// binary.
//
// Three package-level variables are injected at build time via
// -ldflags -X:
//
//   - [GitCommit] -- short git SHA of the build
//   - [BuildTime] -- UTC timestamp of the build
//   - [Version] -- semantic version string (set manually for releases)
//
// They default to "unknown" / "0.1.0-dev" in development builds and
// test runs. [Info] and [Full] format them for humans; [Current]
// returns them as a struct for --json output.
package version
