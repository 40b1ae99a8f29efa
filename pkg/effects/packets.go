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

// PacketSize is the fixed length of every command packet in the protocol.
const PacketSize = 8

// Packet is one immutable fixed-length command frame.
type Packet [PacketSize]byte

// Preamble is the initialization packet sent once before any
// effect-specific packet, identical for every effect.
var Preamble = Packet{0xB1, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x4E}

// staticBrightness is the hardcoded brightness byte of the static fill
// activation packet. The firmware ignores any other value for this effect,
// which is why All does not declare a brightness capability.
const staticBrightness = 0x20

// colorLoad builds the packet that loads a custom color into the keyboard
// buffer. It always precedes the activation packet of a color effect.
func colorLoad(c RGB) Packet {
	return Packet{0x14, 0x00, 0x00, c.R, c.G, c.B, 0x00, 0x00}
}

// activation builds the effect activation packet. The seventh byte carries
// the direction code for direction-capable effects and 0x01 otherwise.
func activation(code, speed, brightness, direction byte) Packet {
	return Packet{0x08, 0x02, code, speed, brightness, 0x01, direction, 0x9B}
}

// BuildPackets maps an effect and its normalized parameters to the exact
// ordered command sequence the firmware expects: the preamble, a color
// load packet when the effect supports color, then the activation packet.
//
// Validation happens upstream in BuildParams. Passing params that violate
// the effect's capability row is a contract violation and produces an
// undefined but well-formed sequence; this function never fails.
func BuildPackets(e Effect, p Params) []Packet {
	caps := e.Capability()
	packets := make([]Packet, 0, 3)
	packets = append(packets, Preamble)

	if caps.Color && p.Color != nil {
		packets = append(packets, colorLoad(*p.Color))
	}

	speed := byte(0x00)
	if caps.Speed && p.Speed != nil {
		speed = *p.Speed
	}

	brightness := byte(staticBrightness)
	if caps.Brightness && p.Brightness != nil {
		brightness = *p.Brightness
	}

	direction := byte(0x01)
	if caps.Direction && p.Direction != nil {
		direction = *p.Direction
	}

	return append(packets, activation(e.Code(), speed, brightness, direction))
}
