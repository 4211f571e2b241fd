// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

package location

// Names used by the structured encodings. They are stable: definition
// files on disk depend on them.

// Blocks returns every Highfield block in declaration order.
func Blocks() []HighfieldBlock {
	return []HighfieldBlock{Howard, Parker, Unwin}
}

// Sections returns every Fearnhill section in declaration order.
func Sections() []FearnhillSection {
	return []FearnhillSection{
		Science, Business, PSHE, Languages, Technology,
		Mathematics, English, Music, Humanities, IT,
	}
}

// Name returns the lowercase name used in structured encodings
// ("howard"), or "" for an undeclared block.
func (b HighfieldBlock) Name() string {
	switch b {
	case Howard:
		return "howard"
	case Parker:
		return "parker"
	case Unwin:
		return "unwin"
	default:
		return ""
	}
}

// Name returns the lowercase name used in structured encodings
// ("music"), or "" for an undeclared section.
func (s FearnhillSection) Name() string {
	switch s {
	case Science:
		return "science"
	case Business:
		return "business"
	case PSHE:
		return "pshe"
	case Languages:
		return "languages"
	case Technology:
		return "technology"
	case Mathematics:
		return "mathematics"
	case English:
		return "english"
	case Music:
		return "music"
	case Humanities:
		return "humanities"
	case IT:
		return "it"
	default:
		return ""
	}
}

var (
	blocksByName   = make(map[string]HighfieldBlock)
	sectionsByName = make(map[string]FearnhillSection)

	highfieldKindsByName = map[string]HighfieldRoomKind{
		HighfieldKindHall.String():       HighfieldKindHall,
		HighfieldKindSportsHall.String(): HighfieldKindSportsHall,
		HighfieldKindClassroom.String():  HighfieldKindClassroom,
	}
	fearnhillKindsByName = map[string]FearnhillRoomKind{
		FearnhillKindSportsHall.String():  FearnhillKindSportsHall,
		FearnhillKindGym.String():         FearnhillKindGym,
		FearnhillKindDanceStudio.String(): FearnhillKindDanceStudio,
		FearnhillKindDramaStudio.String(): FearnhillKindDramaStudio,
		FearnhillKindClassroom.String():   FearnhillKindClassroom,
	}
)

func init() {
	for _, block := range Blocks() {
		blocksByName[block.Name()] = block
	}
	for _, section := range Sections() {
		sectionsByName[section.Name()] = section
	}
}

// BlockByName returns the block with the given structured name.
func BlockByName(name string) (HighfieldBlock, bool) {
	block, ok := blocksByName[name]
	return block, ok
}

// SectionByName returns the section with the given structured name.
func SectionByName(name string) (FearnhillSection, bool) {
	section, ok := sectionsByName[name]
	return section, ok
}
