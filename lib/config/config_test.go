// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Autochez/fork-you/lib/testutil"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output.Format != FormatText {
		t.Errorf("expected format=text, got %s", cfg.Output.Format)
	}
	if cfg.Output.Color != ColorAuto {
		t.Errorf("expected color=auto, got %s", cfg.Output.Color)
	}
	if cfg.Definitions.Directory != "" {
		t.Errorf("expected empty definitions directory, got %s", cfg.Definitions.Directory)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() does not validate: %v", err)
	}
}

func TestLoad_RequiresRoomidConfig(t *testing.T) {
	t.Setenv("ROOMID_CONFIG", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when ROOMID_CONFIG not set, got nil")
	}

	expectedMsg := "ROOMID_CONFIG environment variable not set"
	if !strings.HasPrefix(err.Error(), expectedMsg) {
		t.Errorf("expected error message to start with %q, got %q", expectedMsg, err.Error())
	}
}

func TestLoad_WithRoomidConfig(t *testing.T) {
	configPath := testutil.WriteFile(t, "roomid.yaml", `
output:
  format: json
definitions:
  directory: /srv/rooms
`)
	t.Setenv("ROOMID_CONFIG", configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Output.Format != FormatJSON {
		t.Errorf("expected format=json, got %s", cfg.Output.Format)
	}
	// Omitted fields keep their defaults.
	if cfg.Output.Color != ColorAuto {
		t.Errorf("expected color=auto, got %s", cfg.Output.Color)
	}
	if cfg.Definitions.Directory != "/srv/rooms" {
		t.Errorf("expected directory=/srv/rooms, got %s", cfg.Definitions.Directory)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("HOME", "/home/staff")

	configPath := testutil.WriteFile(t, "roomid.yaml", `
output:
  format: cbor
  color: never
definitions:
  directory: ${HOME}/rooms
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Output.Format != FormatCBOR {
		t.Errorf("expected format=cbor, got %s", cfg.Output.Format)
	}
	if cfg.Output.Color != ColorNever {
		t.Errorf("expected color=never, got %s", cfg.Output.Color)
	}
	if cfg.Definitions.Directory != "/home/staff/rooms" {
		t.Errorf("expected directory=/home/staff/rooms, got %s", cfg.Definitions.Directory)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			content: "output: [\n",
			wantErr: "parsing config",
		},
		{
			name:    "unknown format",
			content: "output:\n  format: xml\n",
			wantErr: "output.format",
		},
		{
			name:    "unknown color",
			content: "output:\n  color: sometimes\n",
			wantErr: "output.color",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := testutil.WriteFile(t, "roomid.yaml", tt.content)
			_, err := LoadFile(configPath)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestEnvVarsDoNotOverride(t *testing.T) {
	// The config file is the single source of truth; only explicit
	// ${VAR} references consult the environment.
	t.Setenv("ROOMID_FORMAT", "json")
	t.Setenv("ROOMID_DEFINITIONS", "/env/rooms")

	configPath := testutil.WriteFile(t, "roomid.yaml", `
output:
  format: text
definitions:
  directory: /file/rooms
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Output.Format != FormatText {
		t.Errorf("expected format=text from file, got %s (env vars should not override)", cfg.Output.Format)
	}
	if cfg.Definitions.Directory != "/file/rooms" {
		t.Errorf("expected directory=/file/rooms from file, got %s (env vars should not override)", cfg.Definitions.Directory)
	}
}

func TestExpandVars(t *testing.T) {
	tests := []struct {
		input    string
		vars     map[string]string
		expected string
	}{
		{
			input:    "${HOME}/rooms",
			vars:     map[string]string{"HOME": "/home/user"},
			expected: "/home/user/rooms",
		},
		{
			input:    "${ROOMID_TEST_MISSING:-default}",
			vars:     map[string]string{},
			expected: "default",
		},
		{
			input:    "${PRESENT:-default}",
			vars:     map[string]string{"PRESENT": "value"},
			expected: "value",
		},
		{
			input:    "${A}/${B}",
			vars:     map[string]string{"A": "first", "B": "second"},
			expected: "first/second",
		},
		{
			input:    "no variables here",
			vars:     map[string]string{},
			expected: "no variables here",
		},
	}

	for _, tt := range tests {
		result := expandVars(tt.input, tt.vars)
		if result != tt.expected {
			t.Errorf("expandVars(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "every format",
			modify: func(c *Config) {
				c.Output.Format = FormatCBOR
				c.Output.Color = ColorAlways
			},
			wantErr: false,
		},
		{
			name: "invalid format",
			modify: func(c *Config) {
				c.Output.Format = "xml"
			},
			wantErr: true,
		},
		{
			name: "empty color",
			modify: func(c *Config) {
				c.Output.Color = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Output.Format = "xml"
	cfg.Output.Color = "sometimes"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, field := range []string{"output.format", "output.color"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err, field)
		}
	}
}

func TestDefinitionPath(t *testing.T) {
	cfg := Default()
	if got := cfg.DefinitionPath("rooms.jsonc"); got != "rooms.jsonc" {
		t.Errorf("without directory: got %q, want %q", got, "rooms.jsonc")
	}

	cfg.Definitions.Directory = "/srv/rooms"
	if got, want := cfg.DefinitionPath("highfield.jsonc"), "/srv/rooms/highfield.jsonc"; got != want {
		t.Errorf("relative: got %q, want %q", got, want)
	}
	if got, want := cfg.DefinitionPath("/tmp/other.yaml"), "/tmp/other.yaml"; got != want {
		t.Errorf("absolute: got %q, want %q", got, want)
	}
}
