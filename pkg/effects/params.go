// RGBKB Core
// Copyright (c) 2026 The RGBKB Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of RGBKB Core.
//
// RGBKB Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// RGBKB Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with RGBKB Core.  If not, see <http://www.gnu.org/licenses/>.

package effects

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const (
	// BrightnessMax is the highest brightness level the firmware accepts.
	BrightnessMax = 32

	// SpeedUltraFast is the reserved hardware speed code for inputs below 1.
	SpeedUltraFast = 0
)

// Direction codes understood by direction-capable effects.
const (
	DirectionRight uint8 = iota + 1
	DirectionLeft
	DirectionUp
	DirectionDown
	DirectionClockwise
	DirectionCounterclockwise
)

var directionNames = map[uint8]string{
	DirectionRight:            "right",
	DirectionLeft:             "left",
	DirectionUp:               "up",
	DirectionDown:             "down",
	DirectionClockwise:        "clockwise",
	DirectionCounterclockwise: "counterclockwise",
}

// DirectionName returns the label for a direction code, or "" if the code
// is not a valid direction.
func DirectionName(code uint8) string {
	return directionNames[code]
}

var (
	ErrInvalidColor = errors.New("invalid color format")
	ErrOutOfRange   = errors.New("value out of range")
)

// RGB is a parsed color triple.
type RGB struct {
	R, G, B uint8
}

// Params is the normalized, hardware-ready parameter set for one effect.
// A field is populated if and only if the effect's capability declares it.
type Params struct {
	Color      *RGB
	Speed      *uint8
	Brightness *uint8
	Direction  *uint8
}

// ParseColor converts an RRGGBB hex string, with or without a leading "#",
// into an RGB triple. Case-insensitive.
func ParseColor(s string) (RGB, error) {
	trimmed := strings.TrimPrefix(s, "#")
	if len(trimmed) != 6 {
		return RGB{}, fmt.Errorf("%w: %q must be a 6-digit RRGGBB hex", ErrInvalidColor, s)
	}
	raw, err := hex.DecodeString(trimmed)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q must be a 6-digit RRGGBB hex", ErrInvalidColor, s)
	}
	return RGB{R: raw[0], G: raw[1], B: raw[2]}, nil
}

// MapSpeed converts the user-facing float speed to a hardware speed code.
// Inputs of 1 and above floor to the hardware code, truncated to a byte.
// Inputs below 1 map to SpeedUltraFast.
//
// The firmware's usable animated range is 1-11. Larger values are passed
// through truncated rather than rejected, matching the original protocol
// capture tooling.
func MapSpeed(speed float64) uint8 {
	if speed < 1 {
		return SpeedUltraFast
	}
	return uint8(int64(speed))
}

// MapBrightness validates a brightness level in [0, BrightnessMax].
func MapBrightness(level int) (uint8, error) {
	if level < 0 || level > BrightnessMax {
		return 0, fmt.Errorf("%w: brightness %d not in 0-%d", ErrOutOfRange, level, BrightnessMax)
	}
	return uint8(level), nil
}

// MapDirection validates a direction code in [1, 6].
func MapDirection(direction int) (uint8, error) {
	if direction < int(DirectionRight) || direction > int(DirectionCounterclockwise) {
		return 0, fmt.Errorf("%w: direction %d not in 1-6", ErrOutOfRange, direction)
	}
	return uint8(direction), nil
}

// BuildParams validates raw user inputs against an effect's capability row
// and returns the normalized parameter set. Inputs for parameters the
// effect does not support are ignored.
func BuildParams(e Effect, hexcolor string, speed float64, level, direction int) (Params, error) {
	caps := e.Capability()
	var p Params

	if caps.Color {
		rgb, err := ParseColor(hexcolor)
		if err != nil {
			return Params{}, err
		}
		p.Color = &rgb
	}
	if caps.Speed {
		code := MapSpeed(speed)
		p.Speed = &code
	}
	if caps.Brightness {
		b, err := MapBrightness(level)
		if err != nil {
			return Params{}, err
		}
		p.Brightness = &b
	}
	if caps.Direction {
		d, err := MapDirection(direction)
		if err != nil {
			return Params{}, err
		}
		p.Direction = &d
	}

	return p, nil
}
