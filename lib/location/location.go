// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

package location

import "strconv"

// fearnhillPrefix disambiguates Fearnhill identifiers from Highfield's
// unprefixed ones ("Sports Hall" vs "FH Sports Hall").
const fearnhillPrefix = "FH "

// School identifies which school a [Location] belongs to.
type School uint8

const (
	Highfield School = iota + 1
	Fearnhill
)

func (s School) String() string {
	switch s {
	case Highfield:
		return "highfield"
	case Fearnhill:
		return "fearnhill"
	default:
		return "School(" + strconv.Itoa(int(s)) + ")"
	}
}

// Location is a room at either school. Exactly one of the two rooms is
// meaningful, selected by the school.
//
// Location is an immutable value type. The zero value is not a valid
// location; use IsZero to check.
type Location struct {
	school    School
	highfield HighfieldRoom
	fearnhill FearnhillRoom
}

// AtHighfield returns the location of room at Highfield.
func AtHighfield(room HighfieldRoom) Location {
	return Location{school: Highfield, highfield: room}
}

// AtFearnhill returns the location of room at Fearnhill.
func AtFearnhill(room FearnhillRoom) Location {
	return Location{school: Fearnhill, fearnhill: room}
}

// School returns the school of the location, or 0 for the zero value.
func (l Location) School() School { return l.school }

// IsZero reports whether l is the uninitialized zero value.
func (l Location) IsZero() bool { return l.school == 0 }

// Highfield returns the room and true when l is at Highfield.
func (l Location) Highfield() (HighfieldRoom, bool) {
	return l.highfield, l.school == Highfield
}

// Fearnhill returns the room and true when l is at Fearnhill.
func (l Location) Fearnhill() (FearnhillRoom, bool) {
	return l.fearnhill, l.school == Fearnhill
}

// String returns the canonical identifier: the Highfield room
// identifier as-is, or "FH " followed by the Fearnhill room identifier.
// The zero value renders as "".
func (l Location) String() string {
	switch l.school {
	case Highfield:
		return l.highfield.String()
	case Fearnhill:
		return fearnhillPrefix + l.fearnhill.String()
	default:
		return ""
	}
}
