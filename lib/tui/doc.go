// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui styles roomid's terminal output. A [Styler] renders
// identifiers, headers, and warnings through lipgloss with a [Theme]
// palette; when styling is disabled it returns text unchanged, so
// callers format one way for both terminals and pipes.
//
// [ColorEnabled] applies the output.color setting to a destination
// writer. [PadRight] aligns columns of styled text by display width.
package tui
