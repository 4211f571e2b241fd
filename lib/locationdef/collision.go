// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

package locationdef

import (
	"sort"

	"github.com/Autochez/fork-you/lib/location"
)

// Collision is one identifier rendered by more than one location.
type Collision struct {
	Identifier string `json:"identifier"`
	// Indexes into the checked slice, ascending.
	Indexes []int `json:"indexes"`
}

// Collisions reports every identifier produced by two or more of
// locations, ordered by the index of its first occurrence. Equal
// locations collide as well as distinct ones that render alike.
// Returns nil when all identifiers are distinct.
func Collisions(locations []location.Location) []Collision {
	indexes := make(map[string][]int, len(locations))
	for i, loc := range locations {
		identifier := loc.String()
		indexes[identifier] = append(indexes[identifier], i)
	}

	var collisions []Collision
	for identifier, positions := range indexes {
		if len(positions) < 2 {
			continue
		}
		collisions = append(collisions, Collision{Identifier: identifier, Indexes: positions})
	}
	sort.Slice(collisions, func(i, j int) bool {
		return collisions[i].Indexes[0] < collisions[j].Indexes[0]
	})
	return collisions
}
