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
	"errors"
	"fmt"
)

// Effect is a named lighting behavior executed by the keyboard firmware.
// The set is closed: firmware only understands the codes registered here.
type Effect uint8

const (
	Wave Effect = iota
	Neon
	All
	Breathe
	Ripple
	Snake
	Heartbeat
	Snow
	Fireball
	Stars
	Spot
	Lightning
	Rain

	numEffects
)

// Capability describes which parameters an effect accepts. A parameter
// absent here must never be populated for the effect, and one present
// here must be populated before packets are built.
type Capability struct {
	Color      bool
	Speed      bool
	Brightness bool
	Direction  bool
}

var ErrUnknownEffect = errors.New("unknown effect")

type definition struct {
	name string
	code byte
	caps Capability
}

// Adding an effect means adding a row here, nothing else. Command
// registration, the menu and the parameter mapper all read this table.
var definitions = [numEffects]definition{
	Wave:      {"wave", 0x03, Capability{Speed: true, Brightness: true, Direction: true}},
	Neon:      {"neon", 0x08, Capability{Speed: true, Brightness: true}},
	All:       {"all", 0x01, Capability{Color: true}},
	Breathe:   {"breathe", 0x02, Capability{Color: true, Speed: true, Brightness: true}},
	Ripple:    {"ripple", 0x06, Capability{Color: true, Speed: true, Brightness: true}},
	Snake:     {"snake", 0x05, Capability{Color: true, Speed: true, Brightness: true}},
	Heartbeat: {"heartbeat", 0x29, Capability{Color: true, Speed: true, Brightness: true}},
	Snow:      {"snow", 0x28, Capability{Color: true, Speed: true, Brightness: true}},
	Fireball:  {"fireball", 0x27, Capability{Color: true, Speed: true, Brightness: true}},
	Stars:     {"stars", 0x26, Capability{Color: true, Speed: true, Brightness: true}},
	Spot:      {"spot", 0x25, Capability{Color: true, Speed: true, Brightness: true}},
	Lightning: {"lightning", 0x12, Capability{Color: true, Speed: true, Brightness: true}},
	Rain:      {"rain", 0x0A, Capability{Color: true, Speed: true, Brightness: true}},
}

func (e Effect) String() string {
	if e >= numEffects {
		return fmt.Sprintf("effect(%d)", uint8(e))
	}
	return definitions[e].name
}

// Code returns the one-byte effect constant the firmware expects in the
// activation packet.
func (e Effect) Code() byte {
	return definitions[e].code
}

func (e Effect) Capability() Capability {
	return definitions[e].caps
}

// Parse resolves an effect by its command name.
func Parse(name string) (Effect, error) {
	for e := Effect(0); e < numEffects; e++ {
		if definitions[e].name == name {
			return e, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEffect, name)
}

// List returns all effects in menu order.
func List() []Effect {
	out := make([]Effect, 0, numEffects)
	for e := Effect(0); e < numEffects; e++ {
		out = append(out, e)
	}
	return out
}
