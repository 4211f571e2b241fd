// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

package location

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Autochez/fork-you/lib/codec"
)

// Fields is the structured description of a [Location]: the form used
// in definition files, CLI flags, and JSON/YAML/CBOR encodings.
//
//	{"school": "highfield", "room": "classroom", "block": "parker", "floor": 3, "discriminator": 27}
//	{"school": "fearnhill", "room": "gym"}
//
// Floor 0 (or an absent floor) is the ground floor. Fields that do not
// apply to the room kind must be left empty.
type Fields struct {
	School        string `json:"school" yaml:"school"`
	Room          string `json:"room" yaml:"room"`
	Block         string `json:"block,omitempty" yaml:"block,omitempty"`
	Floor         uint8  `json:"floor,omitempty" yaml:"floor,omitempty"`
	Section       string `json:"section,omitempty" yaml:"section,omitempty"`
	Discriminator uint8  `json:"discriminator,omitempty" yaml:"discriminator,omitempty"`
}

// errZeroLocation is returned when encoding an uninitialized Location.
var errZeroLocation = errors.New("location is zero-value")

// encodable rejects locations whose [Fields] would not decode back:
// the zero Location, and classrooms built from an undeclared block or
// section, which have no name to encode.
func (l Location) encodable() error {
	switch l.school {
	case Highfield:
		if block, _, _, ok := l.highfield.Classroom(); ok && !block.Valid() {
			return fmt.Errorf("marshal Location: undeclared highfield block %s", block)
		}
	case Fearnhill:
		if section, _, ok := l.fearnhill.Classroom(); ok && !section.Valid() {
			return fmt.Errorf("marshal Location: undeclared fearnhill section %s", section)
		}
	default:
		return fmt.Errorf("marshal Location: %w", errZeroLocation)
	}
	return nil
}

// Fields returns the structured description of l. The zero Location
// yields zero Fields.
func (l Location) Fields() Fields {
	switch l.school {
	case Highfield:
		room := l.highfield
		fields := Fields{School: Highfield.String(), Room: room.kind.String()}
		if block, floor, discriminator, ok := room.Classroom(); ok {
			fields.Block = block.Name()
			if level, upper := floor.Level(); upper {
				fields.Floor = level.Get()
			}
			fields.Discriminator = discriminator.Get()
		}
		return fields
	case Fearnhill:
		room := l.fearnhill
		fields := Fields{School: Fearnhill.String(), Room: room.kind.String()}
		if section, discriminator, ok := room.Classroom(); ok {
			fields.Section = section.Name()
			fields.Discriminator = discriminator.Get()
		}
		return fields
	default:
		return Fields{}
	}
}

// Location validates f and constructs the Location it describes.
// Out-of-range floors and discriminators produce errors matching
// ranged.ErrOutOfRange.
func (f Fields) Location() (Location, error) {
	switch f.School {
	case Highfield.String():
		room, err := f.highfieldRoom()
		if err != nil {
			return Location{}, err
		}
		return AtHighfield(room), nil
	case Fearnhill.String():
		room, err := f.fearnhillRoom()
		if err != nil {
			return Location{}, err
		}
		return AtFearnhill(room), nil
	case "":
		return Location{}, fmt.Errorf("location: school is required")
	default:
		return Location{}, fmt.Errorf("location: unknown school %q (expected %q or %q)", f.School, Highfield, Fearnhill)
	}
}

func (f Fields) highfieldRoom() (HighfieldRoom, error) {
	kind, ok := highfieldKindsByName[f.Room]
	if !ok {
		return HighfieldRoom{}, fmt.Errorf("highfield: unknown room %q", f.Room)
	}
	if f.Section != "" {
		return HighfieldRoom{}, fmt.Errorf("highfield %s: section does not apply at highfield", kind)
	}

	switch kind {
	case HighfieldKindHall:
		if err := f.requireNoClassroomFields("highfield " + kind.String()); err != nil {
			return HighfieldRoom{}, err
		}
		return HighfieldHall(), nil
	case HighfieldKindSportsHall:
		if err := f.requireNoClassroomFields("highfield " + kind.String()); err != nil {
			return HighfieldRoom{}, err
		}
		return HighfieldSportsHall(), nil
	case HighfieldKindClassroom:
		if f.Block == "" {
			return HighfieldRoom{}, fmt.Errorf("highfield classroom: block is required")
		}
		block, ok := BlockByName(f.Block)
		if !ok {
			return HighfieldRoom{}, fmt.Errorf("highfield classroom: unknown block %q", f.Block)
		}
		floor := Ground()
		if f.Floor != 0 {
			var err error
			floor, err = NewLevel(f.Floor)
			if err != nil {
				return HighfieldRoom{}, fmt.Errorf("highfield classroom: %w", err)
			}
		}
		discriminator, err := NewDiscriminator(f.Discriminator)
		if err != nil {
			return HighfieldRoom{}, fmt.Errorf("highfield classroom discriminator: %w", err)
		}
		return HighfieldClassroom(block, floor, discriminator), nil
	default:
		return HighfieldRoom{}, fmt.Errorf("highfield: unsupported room %q", f.Room)
	}
}

func (f Fields) fearnhillRoom() (FearnhillRoom, error) {
	kind, ok := fearnhillKindsByName[f.Room]
	if !ok {
		return FearnhillRoom{}, fmt.Errorf("fearnhill: unknown room %q", f.Room)
	}
	if f.Block != "" || f.Floor != 0 {
		return FearnhillRoom{}, fmt.Errorf("fearnhill %s: block and floor do not apply at fearnhill", kind)
	}

	switch kind {
	case FearnhillKindSportsHall, FearnhillKindGym, FearnhillKindDanceStudio, FearnhillKindDramaStudio:
		if err := f.requireNoClassroomFields("fearnhill " + kind.String()); err != nil {
			return FearnhillRoom{}, err
		}
		return FearnhillRoom{kind: kind}, nil
	case FearnhillKindClassroom:
		if f.Section == "" {
			return FearnhillRoom{}, fmt.Errorf("fearnhill classroom: section is required")
		}
		section, ok := SectionByName(f.Section)
		if !ok {
			return FearnhillRoom{}, fmt.Errorf("fearnhill classroom: unknown section %q", f.Section)
		}
		discriminator, err := NewDiscriminator(f.Discriminator)
		if err != nil {
			return FearnhillRoom{}, fmt.Errorf("fearnhill classroom discriminator: %w", err)
		}
		return FearnhillClassroom(section, discriminator), nil
	default:
		return FearnhillRoom{}, fmt.Errorf("fearnhill: unsupported room %q", f.Room)
	}
}

// requireNoClassroomFields rejects classroom-only fields on a named room.
func (f Fields) requireNoClassroomFields(label string) error {
	if f.Block != "" || f.Floor != 0 || f.Section != "" || f.Discriminator != 0 {
		return fmt.Errorf("%s: block, floor, section, and discriminator apply only to classrooms", label)
	}
	return nil
}

// MarshalJSON encodes l as its structured [Fields].
func (l Location) MarshalJSON() ([]byte, error) {
	if err := l.encodable(); err != nil {
		return nil, err
	}
	return json.Marshal(l.Fields())
}

// UnmarshalJSON decodes structured [Fields] and validates them.
func (l *Location) UnmarshalJSON(data []byte) error {
	var fields Fields
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("unmarshal Location: %w", err)
	}
	return l.setFields(fields)
}

// MarshalYAML encodes l as its structured [Fields].
func (l Location) MarshalYAML() (any, error) {
	if err := l.encodable(); err != nil {
		return nil, err
	}
	return l.Fields(), nil
}

// UnmarshalYAML decodes structured [Fields] and validates them.
func (l *Location) UnmarshalYAML(node *yaml.Node) error {
	var fields Fields
	if err := node.Decode(&fields); err != nil {
		return fmt.Errorf("unmarshal Location: %w", err)
	}
	return l.setFields(fields)
}

// MarshalCBOR encodes l as its structured [Fields] using the
// deterministic codec.
func (l Location) MarshalCBOR() ([]byte, error) {
	if err := l.encodable(); err != nil {
		return nil, err
	}
	return codec.Marshal(l.Fields())
}

// UnmarshalCBOR decodes structured [Fields] and validates them.
func (l *Location) UnmarshalCBOR(data []byte) error {
	var fields Fields
	if err := codec.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("unmarshal Location: %w", err)
	}
	return l.setFields(fields)
}

func (l *Location) setFields(fields Fields) error {
	parsed, err := fields.Location()
	if err != nil {
		return fmt.Errorf("unmarshal Location: %w", err)
	}
	*l = parsed
	return nil
}
