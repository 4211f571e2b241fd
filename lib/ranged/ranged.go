// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

package ranged

import (
	"errors"
	"fmt"
	"strconv"
)

// Bounds supplies the inclusive range of a [U8]. Implementations must
// be zero-size struct types whose methods return constants; the bounds
// are read from the type's zero value.
type Bounds interface {
	Min() uint8
	Max() uint8
}

// ErrOutOfRange is matched (via errors.Is) by every error returned when
// a value falls outside its declared bounds.
var ErrOutOfRange = errors.New("value out of range")

// OutOfRangeError describes a rejected construction.
type OutOfRangeError struct {
	Value uint8
	Min   uint8
	Max   uint8
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("value %d out of range [%d, %d]", e.Value, e.Min, e.Max)
}

// Is reports whether target is [ErrOutOfRange].
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// U8 is an unsigned 8-bit integer constrained to the inclusive range
// declared by B.
//
// The value is stored as an offset from the lower bound. The zero
// value therefore holds B.Min(), and no exported path can produce a
// value outside the range.
type U8[B Bounds] struct {
	offset uint8
}

// New returns a U8 holding value, or an [*OutOfRangeError] if value is
// outside [B.Min(), B.Max()].
func New[B Bounds](value uint8) (U8[B], error) {
	var bounds B
	low, high := bounds.Min(), bounds.Max()
	if value < low || value > high {
		return U8[B]{}, &OutOfRangeError{Value: value, Min: low, Max: high}
	}
	return U8[B]{offset: value - low}, nil
}

// MustNew is like [New] but panics if value is out of range. Use it
// for compile-time constants, never for external input.
func MustNew[B Bounds](value uint8) U8[B] {
	result, err := New[B](value)
	if err != nil {
		panic("ranged.MustNew: " + err.Error())
	}
	return result
}

// Get returns the stored value.
func (r U8[B]) Get() uint8 {
	var bounds B
	return bounds.Min() + r.offset
}

// Min returns the inclusive lower bound of the type.
func (U8[B]) Min() uint8 {
	var bounds B
	return bounds.Min()
}

// Max returns the inclusive upper bound of the type.
func (U8[B]) Max() uint8 {
	var bounds B
	return bounds.Max()
}

// String returns the decimal representation of the stored value.
func (r U8[B]) String() string {
	return strconv.Itoa(int(r.Get()))
}
