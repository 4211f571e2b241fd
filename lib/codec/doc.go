// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the project's standard CBOR encoding
// configuration.
//
// JSON and YAML serve people (definition files, CLI output); CBOR
// serves programs that consume rendered catalogues or structured
// locations in bulk ("roomid render --format cbor"). Every package that
// speaks CBOR goes through this one so that encodings are identical.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. The
// same logical value always produces identical bytes, so CBOR output
// can be hashed and diffed.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For streams (CBOR sequences written to stdout):
//
//	encoder := codec.NewEncoder(os.Stdout)
//
// # Struct tags
//
// fxamacker/cbor reads `json` tags when `cbor` tags are absent. Types
// that appear in both JSON and CBOR output carry only `json` tags (plus
// `yaml` where they are authored in YAML). Use `cbor` tags only for
// types that never leave CBOR.
package codec
