// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for roomid packages.
//
// [WriteFile] places a named file with the given content in a
// per-test temporary directory and returns its path. Definition and
// configuration tests use it to exercise the on-disk readers, which
// dispatch on file extension.
//
// [WriteDir] does the same for several files at once, for commands
// that accept more than one input.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no roomid-internal dependencies.
package testutil
