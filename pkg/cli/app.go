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

// Package cli wires the effect protocol, the USB transport, and the
// persisted state together behind the command surface.
package cli

import (
	"fmt"
	"math/rand"

	"github.com/rgbkb-project/rgbkb-core/pkg/config"
	"github.com/rgbkb-project/rgbkb-core/pkg/effects"
	"github.com/rgbkb-project/rgbkb-core/pkg/keyboard"
	"github.com/rs/zerolog/log"
)

// Default parameter values used when a flag is not given.
const (
	DefaultSpeed      = 1.0
	DefaultLevel      = effects.BrightnessMax
	DefaultDirection  = int(effects.DirectionRight)
	randomBrightness  = 10
	randomSpeedValues = 11
)

// randomPalette is the color pool the random command draws from.
var randomPalette = []string{
	"FF0000", "00FF00", "0000FF", "FFFF00",
	"800080", "00FFFF", "FFFFFF", "FF69B4",
	"1A2B3C", "ABCDEF",
}

// App executes effect operations against a keyboard and records the
// last applied effect for replay.
type App struct {
	store   *config.StateStore
	session *keyboard.Session
}

func NewApp(store *config.StateStore, transport keyboard.Transport) *App {
	return &App{
		store:   store,
		session: keyboard.NewSession(transport),
	}
}

// ApplyEffect validates the inputs, transmits the effect, and persists
// it as the new replay state. The state file is only touched after the
// device accepted the full packet sequence.
func (a *App) ApplyEffect(e effects.Effect, hexcolor string, speed float64, level, direction int) error {
	params, err := effects.BuildParams(e, hexcolor, speed, level, direction)
	if err != nil {
		return err
	}
	if err := a.session.Apply(e, params); err != nil {
		return err
	}
	if err := a.store.Save(config.NewRecord(e, hexcolor, params)); err != nil {
		return fmt.Errorf("effect applied but state not saved: %w", err)
	}
	return nil
}

// Replay re-transmits the last persisted effect without rewriting the
// state file.
func (a *App) Replay() error {
	rec, err := a.store.Load()
	if err != nil {
		return err
	}
	e, params, err := rec.ToEffect()
	if err != nil {
		return err
	}
	return a.session.Apply(e, params)
}

// ApplyRandom picks a random effect with random parameters from a
// fixed pool and applies it. Brightness is pinned low so a surprise
// effect is never blinding.
func (a *App) ApplyRandom(rng *rand.Rand) (effects.Effect, error) {
	list := effects.List()
	e := list[rng.Intn(len(list))]
	caps := e.Capability()

	var hexcolor string
	if caps.Color {
		hexcolor = randomPalette[rng.Intn(len(randomPalette))]
	}
	speed := float64(1 + rng.Intn(randomSpeedValues))
	direction := 1 + rng.Intn(6)

	log.Debug().
		Str("effect", e.String()).
		Str("color", hexcolor).
		Float64("speed", speed).
		Int("direction", direction).
		Msg("picked random effect")

	if err := a.ApplyEffect(e, hexcolor, speed, randomBrightness, direction); err != nil {
		return e, err
	}
	return e, nil
}
