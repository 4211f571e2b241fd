// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

// Package ranged provides bounded integer value types whose range is
// fixed by the type itself.
//
// A [U8] is parameterized by a [Bounds] type: a zero-size type whose
// Min and Max methods return constants. Each use site declares its own
// bounds type, so a floor level (1..9) and a room discriminator (1..99)
// are distinct, non-interchangeable types:
//
//	type LevelBounds struct{}
//
//	func (LevelBounds) Min() uint8 { return 1 }
//	func (LevelBounds) Max() uint8 { return 9 }
//
//	level, err := ranged.New[LevelBounds](3)
//
// [New] is the only way to produce a value other than the zero value,
// and it rejects anything outside [Min, Max] with an [*OutOfRangeError]
// that matches [ErrOutOfRange]. Values are immutable and comparable
// with ==. The zero value of a U8 holds its lower bound, so even an
// uninitialized U8 satisfies the range invariant.
//
// This package depends on no other project packages.
package ranged
