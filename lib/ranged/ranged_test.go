// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

package ranged_test

import (
	"errors"
	"testing"

	"github.com/Autochez/fork-you/lib/ranged"
)

type oneToNine struct{}

func (oneToNine) Min() uint8 { return 1 }
func (oneToNine) Max() uint8 { return 9 }

type oneToNinetyNine struct{}

func (oneToNinetyNine) Min() uint8 { return 1 }
func (oneToNinetyNine) Max() uint8 { return 99 }

type fullByte struct{}

func (fullByte) Min() uint8 { return 0 }
func (fullByte) Max() uint8 { return 255 }

func TestNewAcceptsEveryValueInRange(t *testing.T) {
	for value := 1; value <= 99; value++ {
		got, err := ranged.New[oneToNinetyNine](uint8(value))
		if err != nil {
			t.Fatalf("New(%d): unexpected error: %v", value, err)
		}
		if got.Get() != uint8(value) {
			t.Errorf("New(%d).Get() = %d, want %d", value, got.Get(), value)
		}
	}
}

func TestNewRejectsEveryValueOutOfRange(t *testing.T) {
	for value := 0; value <= 255; value++ {
		_, err := ranged.New[oneToNine](uint8(value))
		inRange := value >= 1 && value <= 9
		if inRange {
			if err != nil {
				t.Errorf("New(%d): unexpected error: %v", value, err)
			}
			continue
		}
		if err == nil {
			t.Fatalf("New(%d): expected error, got nil", value)
		}
		if !errors.Is(err, ranged.ErrOutOfRange) {
			t.Errorf("New(%d): error %v does not match ErrOutOfRange", value, err)
		}
	}
}

func TestOutOfRangeErrorDetails(t *testing.T) {
	_, err := ranged.New[oneToNine](42)

	var rangeErr *ranged.OutOfRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected *OutOfRangeError, got %T (%v)", err, err)
	}
	if rangeErr.Value != 42 || rangeErr.Min != 1 || rangeErr.Max != 9 {
		t.Errorf("error fields = %+v, want {Value:42 Min:1 Max:9}", *rangeErr)
	}
	if got, want := err.Error(), "value 42 out of range [1, 9]"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestFullByteRange(t *testing.T) {
	for _, value := range []uint8{0, 1, 128, 254, 255} {
		got, err := ranged.New[fullByte](value)
		if err != nil {
			t.Fatalf("New(%d): unexpected error: %v", value, err)
		}
		if got.Get() != value {
			t.Errorf("Get() = %d, want %d", got.Get(), value)
		}
	}
}

func TestZeroValueHoldsLowerBound(t *testing.T) {
	var level ranged.U8[oneToNine]
	if level.Get() != 1 {
		t.Errorf("zero value Get() = %d, want 1", level.Get())
	}
	if level != ranged.MustNew[oneToNine](1) {
		t.Error("zero value should equal MustNew(1)")
	}
}

func TestEquality(t *testing.T) {
	a := ranged.MustNew[oneToNinetyNine](27)
	b := ranged.MustNew[oneToNinetyNine](27)
	c := ranged.MustNew[oneToNinetyNine](28)

	if a != b {
		t.Error("values holding 27 should be equal")
	}
	if a == c {
		t.Error("values holding 27 and 28 should differ")
	}

	copied := a
	if copied != a {
		t.Error("copy should equal original")
	}
}

func TestBoundsAccessors(t *testing.T) {
	var discriminator ranged.U8[oneToNinetyNine]
	if discriminator.Min() != 1 || discriminator.Max() != 99 {
		t.Errorf("bounds = [%d, %d], want [1, 99]", discriminator.Min(), discriminator.Max())
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		value uint8
		want  string
	}{
		{1, "1"},
		{9, "9"},
		{10, "10"},
		{99, "99"},
	}
	for _, tt := range tests {
		got := ranged.MustNew[oneToNinetyNine](tt.value).String()
		if got != tt.want {
			t.Errorf("String() for %d = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestMustNewPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew(0) did not panic")
		}
	}()
	ranged.MustNew[oneToNine](0)
}
