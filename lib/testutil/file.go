// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// WriteFile writes content to name inside a fresh temporary directory
// and returns the absolute path. The directory is removed when the test
// completes.
//
//	path := testutil.WriteFile(t, "rooms.jsonc", `{"locations": []}`)
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()
	return filepath.Join(WriteDir(t, map[string]string{name: content}), name)
}

// WriteDir writes every entry of files (name → content) into one fresh
// temporary directory and returns the directory path.
func WriteDir(t testing.TB, files map[string]string) string {
	t.Helper()

	directory := t.TempDir()
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(directory, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("creating directory for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(files[name]), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return directory
}
