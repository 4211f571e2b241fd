// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

// Package location models rooms at the Highfield and Fearnhill schools
// and renders each one to a canonical identifier.
//
// Every type here is an immutable value: construct it with the package
// constructors, compare it with ==, and call String for the identifier.
// Rendering never fails. All range checks happen when a [FloorLevel] or
// [Discriminator] is constructed (see package ranged), so once a value
// exists its identifier is well-formed.
//
// Identifier formats:
//
//	Highfield hall              Hall
//	Highfield sports hall       Sports Hall
//	Highfield classroom         <block><floor><discriminator, 2 digits>   HG05, P327
//	Fearnhill named rooms       FH Sports Hall, FH Gym, FH Dance Studio, FH Drama Studio
//	Fearnhill classroom         FH <section><discriminator, unpadded>     FH Mu4, FH S12
//
// Highfield identifiers are unprefixed. Fearnhill identifiers carry the
// "FH " prefix because both schools have a sports hall.
//
// [HighfieldRoom] and [FearnhillRoom] are open sets: more rooms may be
// added as they are surveyed. Code that switches on [HighfieldRoomKind]
// or [FearnhillRoomKind] must keep a default arm. [HighfieldBlock],
// [FearnhillSection] and [School] are closed.
//
// Identifiers are one-way. Nothing in this package parses "HG05" back
// into a room. The structured JSON, YAML, and CBOR encodings of
// [Location] (see encoding.go) exist for definition files and tooling.
//
// Uniqueness of classroom triples across rooms is the caller's
// responsibility; see lib/locationdef for a collision check.
package location
