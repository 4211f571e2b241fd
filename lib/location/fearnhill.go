// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

package location

import "strconv"

// FearnhillSection is an academic section at Fearnhill.
type FearnhillSection uint8

const (
	Science FearnhillSection = iota + 1
	Business
	PSHE
	Languages
	Technology
	Mathematics
	English
	Music
	Humanities
	IT
)

// String returns the section code. Music is "Mu" so that it does not
// collide with Mathematics ("M").
func (s FearnhillSection) String() string {
	switch s {
	case Science:
		return "S"
	case Business:
		return "B"
	case PSHE:
		return "P"
	case Languages:
		return "L"
	case Technology:
		return "T"
	case Mathematics:
		return "M"
	case English:
		return "E"
	case Music:
		return "Mu"
	case Humanities:
		return "H"
	case IT:
		return "I"
	default:
		return "FearnhillSection(" + strconv.Itoa(int(s)) + ")"
	}
}

// Valid reports whether s is one of the declared sections.
func (s FearnhillSection) Valid() bool {
	return s >= Science && s <= IT
}

// FearnhillRoomKind identifies the variant of a [FearnhillRoom]. The set
// is not final; switches over it need a default arm.
type FearnhillRoomKind uint8

const (
	FearnhillKindSportsHall FearnhillRoomKind = iota + 1
	FearnhillKindGym
	FearnhillKindDanceStudio
	FearnhillKindDramaStudio
	FearnhillKindClassroom
)

func (k FearnhillRoomKind) String() string {
	switch k {
	case FearnhillKindSportsHall:
		return "sports_hall"
	case FearnhillKindGym:
		return "gym"
	case FearnhillKindDanceStudio:
		return "dance_studio"
	case FearnhillKindDramaStudio:
		return "drama_studio"
	case FearnhillKindClassroom:
		return "classroom"
	default:
		return "FearnhillRoomKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// FearnhillRoom is a room at Fearnhill.
type FearnhillRoom struct {
	kind          FearnhillRoomKind
	section       FearnhillSection
	discriminator Discriminator
}

func FearnhillSportsHall() FearnhillRoom  { return FearnhillRoom{kind: FearnhillKindSportsHall} }
func FearnhillGym() FearnhillRoom         { return FearnhillRoom{kind: FearnhillKindGym} }
func FearnhillDanceStudio() FearnhillRoom { return FearnhillRoom{kind: FearnhillKindDanceStudio} }
func FearnhillDramaStudio() FearnhillRoom { return FearnhillRoom{kind: FearnhillKindDramaStudio} }

// FearnhillClassroom returns the classroom in section with the given
// discriminator.
func FearnhillClassroom(section FearnhillSection, discriminator Discriminator) FearnhillRoom {
	return FearnhillRoom{
		kind:          FearnhillKindClassroom,
		section:       section,
		discriminator: discriminator,
	}
}

// Kind returns the room variant. The zero FearnhillRoom has kind 0.
func (r FearnhillRoom) Kind() FearnhillRoomKind { return r.kind }

// IsZero reports whether r is the uninitialized zero value.
func (r FearnhillRoom) IsZero() bool { return r.kind == 0 }

// Classroom returns the section and discriminator and true when r is a
// classroom.
func (r FearnhillRoom) Classroom() (FearnhillSection, Discriminator, bool) {
	if r.kind != FearnhillKindClassroom {
		return 0, Discriminator{}, false
	}
	return r.section, r.discriminator, true
}

// String returns the room identifier without the school prefix.
// Classroom discriminators are not padded: Mu4, S12.
func (r FearnhillRoom) String() string {
	switch r.kind {
	case FearnhillKindSportsHall:
		return "Sports Hall"
	case FearnhillKindGym:
		return "Gym"
	case FearnhillKindDanceStudio:
		return "Dance Studio"
	case FearnhillKindDramaStudio:
		return "Drama Studio"
	case FearnhillKindClassroom:
		return r.section.String() + r.discriminator.String()
	default:
		return ""
	}
}
