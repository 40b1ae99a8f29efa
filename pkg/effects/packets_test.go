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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u8(v uint8) *uint8 { return &v }

func TestPreambleBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Packet{0xB1, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x4E}, Preamble)
}

func TestWaveActivationPacket(t *testing.T) {
	t.Parallel()

	p := Params{Speed: u8(5), Brightness: u8(20), Direction: u8(3)}
	packets := BuildPackets(Wave, p)

	require.Len(t, packets, 2)
	assert.Equal(t, Preamble, packets[0])
	assert.Equal(t, Packet{0x08, 0x02, 0x03, 5, 20, 0x01, 3, 0x9B}, packets[1])
}

func TestStaticFillSequence(t *testing.T) {
	t.Parallel()

	p := Params{Color: &RGB{R: 0xFF}}
	packets := BuildPackets(All, p)

	require.Len(t, packets, 3)
	assert.Equal(t, Preamble, packets[0])
	assert.Equal(t, Packet{0x14, 0x00, 0x00, 0xFF, 0x00, 0x00, 0x00, 0x00}, packets[1])
	// brightness byte is fixed at 0x20 for the static fill
	assert.Equal(t, Packet{0x08, 0x02, 0x01, 0x00, 0x20, 0x01, 0x01, 0x9B}, packets[2])
}

func TestColorEffectsLoadColorFirst(t *testing.T) {
	t.Parallel()

	rgb := RGB{R: 0x12, G: 0x34, B: 0x56}
	for _, e := range List() {
		if !e.Capability().Color {
			continue
		}

		p := Params{Color: &rgb, Speed: u8(1), Brightness: u8(32)}
		packets := BuildPackets(e, p)

		require.Len(t, packets, 3, e.String())
		assert.Equal(t, Preamble, packets[0], e.String())
		assert.Equal(t,
			Packet{0x14, 0x00, 0x00, 0x12, 0x34, 0x56, 0x00, 0x00},
			packets[1], e.String())
		assert.Equal(t, e.Code(), packets[2][2], e.String())
	}
}

func TestColorlessEffectsSkipColorLoad(t *testing.T) {
	t.Parallel()

	p := Params{Speed: u8(2), Brightness: u8(10)}
	packets := BuildPackets(Neon, p)

	require.Len(t, packets, 2)
	assert.Equal(t, Packet{0x08, 0x02, 0x08, 2, 10, 0x01, 0x01, 0x9B}, packets[1])
}

func TestActivationLayoutIsSharedAcrossEffects(t *testing.T) {
	t.Parallel()

	rgb := RGB{R: 1, G: 2, B: 3}
	for _, e := range List() {
		p := Params{Color: &rgb, Speed: u8(7), Brightness: u8(15), Direction: u8(2)}
		packets := BuildPackets(e, p)
		act := packets[len(packets)-1]

		assert.Equal(t, byte(0x08), act[0], e.String())
		assert.Equal(t, byte(0x02), act[1], e.String())
		assert.Equal(t, e.Code(), act[2], e.String())
		assert.Equal(t, byte(0x01), act[5], e.String())
		assert.Equal(t, byte(0x9B), act[7], e.String())

		if e.Capability().Direction {
			assert.Equal(t, byte(2), act[6], e.String())
		} else {
			assert.Equal(t, byte(0x01), act[6], e.String())
		}
	}
}

func TestBuildWithUltraFastSpeed(t *testing.T) {
	t.Parallel()

	p := Params{Color: &RGB{B: 0xFF}, Speed: u8(SpeedUltraFast), Brightness: u8(32)}
	packets := BuildPackets(Breathe, p)

	require.Len(t, packets, 3)
	assert.Equal(t, Packet{0x08, 0x02, 0x02, 0x00, 32, 0x01, 0x01, 0x9B}, packets[2])
}
