// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

// Package locationdef reads room definition files: ordered lists of
// structured locations authored on disk.
//
// Definition files are JSONC (JSON extended with comments and trailing
// commas) or YAML, selected by extension:
//
//	// highfield.jsonc
//	{
//	  "locations": [
//	    {"school": "highfield", "room": "hall"},
//	    {"school": "highfield", "room": "classroom", "block": "howard", "discriminator": 5},
//	  ],
//	}
//
// Either form may be compressed with zstd (".zst") or LZ4 frames
// (".lz4"); [ReadFile] decompresses by suffix before parsing.
//
// Each entry is decoded through location.Fields and validated by the
// location package's constructors. Entries are never identifier strings
// such as "HG05"; identifiers are output only.
//
// The typical flow:
//
//  1. ReadFile: JSONC/YAML bytes → Definition
//  2. Collisions: report identifiers produced by more than one entry
//  3. Fingerprint: digest of the rendered catalogue for change detection
//
// The location model deliberately does not enforce uniqueness of
// classroom triples. Collisions is the check for callers that need it.
package locationdef
