// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

package location_test

import (
	"fmt"

	"github.com/Autochez/fork-you/lib/location"
)

func ExampleLocation_String() {
	level, err := location.NewLevel(3)
	if err != nil {
		panic(err)
	}
	discriminator, err := location.NewDiscriminator(27)
	if err != nil {
		panic(err)
	}

	fmt.Println(location.AtHighfield(location.HighfieldClassroom(location.Parker, level, discriminator)))
	fmt.Println(location.AtHighfield(location.HighfieldSportsHall()))
	fmt.Println(location.AtFearnhill(location.FearnhillSportsHall()))
	fmt.Println(location.AtFearnhill(location.FearnhillClassroom(location.Music, discriminator)))
	// Output:
	// P327
	// Sports Hall
	// FH Sports Hall
	// FH Mu27
}

func ExampleFields_Location() {
	loc, err := location.Fields{
		School:        "highfield",
		Room:          "classroom",
		Block:         "howard",
		Discriminator: 5,
	}.Location()
	if err != nil {
		panic(err)
	}
	fmt.Println(loc)
	// Output: HG05
}
