// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

// Roomid prints canonical room identifiers for the Highfield and
// Fearnhill schools.
//
// Usage:
//
//	roomid name --school SCHOOL --room ROOM [flags]
//	roomid render [--format text|json|cbor] [--fingerprint] FILE...
//	roomid check [--json] FILE...
//	roomid version
//
// Definition files list structured locations in JSONC or YAML:
//
//	{"locations": [
//	  {"school": "highfield", "room": "classroom", "block": "parker", "floor": 3, "discriminator": 27},
//	  {"school": "fearnhill", "room": "classroom", "section": "music", "discriminator": 4},
//	]}
//
// render prints "P327" and "FH Mu4" for this file. Configuration is
// read from --config or ROOMID_CONFIG; see lib/config.
package main
