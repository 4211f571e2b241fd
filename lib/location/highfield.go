// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

package location

import (
	"fmt"
	"strconv"

	"github.com/Autochez/fork-you/lib/ranged"
)

// FloorBounds limits Highfield floor levels to 1..9. Level 0 is
// represented by [Ground], and Highfield has no more than nine levels.
type FloorBounds struct{}

func (FloorBounds) Min() uint8 { return 1 }
func (FloorBounds) Max() uint8 { return 9 }

// DiscriminatorBounds limits classroom discriminators to 1..99.
type DiscriminatorBounds struct{}

func (DiscriminatorBounds) Min() uint8 { return 1 }
func (DiscriminatorBounds) Max() uint8 { return 99 }

// FloorLevel is an upper floor number of a Highfield block.
type FloorLevel = ranged.U8[FloorBounds]

// Discriminator distinguishes classrooms that share every other field
// (the same floor of the same block, or the same Fearnhill section).
type Discriminator = ranged.U8[DiscriminatorBounds]

// NewFloorLevel validates n as a floor level.
func NewFloorLevel(n uint8) (FloorLevel, error) {
	return ranged.New[FloorBounds](n)
}

// NewDiscriminator validates n as a classroom discriminator.
func NewDiscriminator(n uint8) (Discriminator, error) {
	return ranged.New[DiscriminatorBounds](n)
}

// HighfieldBlock is a building at Highfield.
type HighfieldBlock uint8

const (
	Howard HighfieldBlock = iota + 1
	Parker
	Unwin
)

// String returns the block letter: H, P, or U.
func (b HighfieldBlock) String() string {
	switch b {
	case Howard:
		return "H"
	case Parker:
		return "P"
	case Unwin:
		return "U"
	default:
		return "HighfieldBlock(" + strconv.Itoa(int(b)) + ")"
	}
}

// Valid reports whether b is one of the declared blocks.
func (b HighfieldBlock) Valid() bool {
	return b >= Howard && b <= Unwin
}

// HighfieldFloor is a floor of a [HighfieldBlock]: the ground floor or
// a numbered level. The zero value is the ground floor.
type HighfieldFloor struct {
	upper bool
	level FloorLevel
}

// Ground returns the ground floor.
func Ground() HighfieldFloor {
	return HighfieldFloor{}
}

// Level returns the upper floor numbered level.
func Level(level FloorLevel) HighfieldFloor {
	return HighfieldFloor{upper: true, level: level}
}

// NewLevel validates n and returns the corresponding upper floor.
func NewLevel(n uint8) (HighfieldFloor, error) {
	level, err := NewFloorLevel(n)
	if err != nil {
		return HighfieldFloor{}, fmt.Errorf("highfield floor: %w", err)
	}
	return Level(level), nil
}

// IsGround reports whether f is the ground floor.
func (f HighfieldFloor) IsGround() bool { return !f.upper }

// Level returns the floor number and true for an upper floor, or false
// for the ground floor.
func (f HighfieldFloor) Level() (FloorLevel, bool) {
	return f.level, f.upper
}

// String returns "G" for the ground floor and the level digit otherwise.
func (f HighfieldFloor) String() string {
	if !f.upper {
		return "G"
	}
	return f.level.String()
}

// HighfieldRoomKind identifies the variant of a [HighfieldRoom]. The set
// is not final; switches over it need a default arm.
type HighfieldRoomKind uint8

const (
	HighfieldKindHall HighfieldRoomKind = iota + 1
	HighfieldKindSportsHall
	HighfieldKindClassroom
)

func (k HighfieldRoomKind) String() string {
	switch k {
	case HighfieldKindHall:
		return "hall"
	case HighfieldKindSportsHall:
		return "sports_hall"
	case HighfieldKindClassroom:
		return "classroom"
	default:
		return "HighfieldRoomKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// HighfieldRoom is a room at Highfield.
//
// Classrooms are identified by (block, floor, discriminator). Nothing
// here stops two values from sharing a triple.
type HighfieldRoom struct {
	kind          HighfieldRoomKind
	block         HighfieldBlock
	floor         HighfieldFloor
	discriminator Discriminator
}

// HighfieldHall returns the assembly hall.
func HighfieldHall() HighfieldRoom {
	return HighfieldRoom{kind: HighfieldKindHall}
}

// HighfieldSportsHall returns the sports hall.
func HighfieldSportsHall() HighfieldRoom {
	return HighfieldRoom{kind: HighfieldKindSportsHall}
}

// HighfieldClassroom returns the classroom on floor of block with the
// given discriminator.
func HighfieldClassroom(block HighfieldBlock, floor HighfieldFloor, discriminator Discriminator) HighfieldRoom {
	return HighfieldRoom{
		kind:          HighfieldKindClassroom,
		block:         block,
		floor:         floor,
		discriminator: discriminator,
	}
}

// Kind returns the room variant. The zero HighfieldRoom has kind 0.
func (r HighfieldRoom) Kind() HighfieldRoomKind { return r.kind }

// IsZero reports whether r is the uninitialized zero value.
func (r HighfieldRoom) IsZero() bool { return r.kind == 0 }

// Classroom returns the classroom fields and true when r is a
// classroom, or zero values and false otherwise.
func (r HighfieldRoom) Classroom() (HighfieldBlock, HighfieldFloor, Discriminator, bool) {
	if r.kind != HighfieldKindClassroom {
		return 0, HighfieldFloor{}, Discriminator{}, false
	}
	return r.block, r.floor, r.discriminator, true
}

// String returns the room identifier. Classroom discriminators are
// zero-padded to two digits: HG05, P327.
func (r HighfieldRoom) String() string {
	switch r.kind {
	case HighfieldKindHall:
		return "Hall"
	case HighfieldKindSportsHall:
		return "Sports Hall"
	case HighfieldKindClassroom:
		return r.block.String() + r.floor.String() + fmt.Sprintf("%02d", r.discriminator.Get())
	default:
		return ""
	}
}
