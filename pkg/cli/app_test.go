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

package cli

import (
	"math/rand"
	"testing"

	"github.com/rgbkb-project/rgbkb-core/pkg/config"
	"github.com/rgbkb-project/rgbkb-core/pkg/effects"
	"github.com/rgbkb-project/rgbkb-core/pkg/keyboard"
	"github.com/rgbkb-project/rgbkb-core/pkg/keyboard/testutils"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, *testutils.MockTransport, *config.StateStore) {
	t.Helper()
	transport := testutils.NewMockTransport()
	store := config.NewStateStore(afero.NewMemMapFs(), "/state/state.json")
	return NewApp(store, transport), transport, store
}

func TestApplyEffectPersistsState(t *testing.T) {
	t.Parallel()

	app, transport, store := newTestApp(t)

	err := app.ApplyEffect(effects.Breathe, "00FF00", 5, 20, 1)
	require.NoError(t, err)

	// preamble, color load, activation
	assert.Len(t, transport.Writes(), 3)

	rec, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "breathe", rec.Effect)
	require.NotNil(t, rec.Params.HexColor)
	assert.Equal(t, "00FF00", *rec.Params.HexColor)
	require.NotNil(t, rec.Params.Speed)
	assert.Equal(t, 5, *rec.Params.Speed)
	require.NotNil(t, rec.Params.Level)
	assert.Equal(t, 20, *rec.Params.Level)
	assert.Nil(t, rec.Params.Direction)
}

func TestApplyEffectRejectsBadInput(t *testing.T) {
	t.Parallel()

	app, transport, store := newTestApp(t)

	err := app.ApplyEffect(effects.Breathe, "not-a-color", 5, 20, 1)
	require.ErrorIs(t, err, effects.ErrInvalidColor)

	// nothing transmitted, nothing saved
	assert.Empty(t, transport.Writes())
	_, err = store.Load()
	assert.ErrorIs(t, err, config.ErrNoSavedState)
}

func TestApplyEffectFailedTransmitLeavesOldState(t *testing.T) {
	t.Parallel()

	app, transport, store := newTestApp(t)

	require.NoError(t, app.ApplyEffect(effects.Wave, "", 3, 16, 2))

	transport.Device.FailAtPacket = 1
	err := app.ApplyEffect(effects.Neon, "", 7, 8, 1)
	require.ErrorIs(t, err, keyboard.ErrTransmission)

	rec, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "wave", rec.Effect)
}

func TestReplayDoesNotRewriteState(t *testing.T) {
	t.Parallel()

	app, transport, store := newTestApp(t)

	require.NoError(t, app.ApplyEffect(effects.Snake, "FF69B4", 2, 10, 1))
	firstWrites := len(transport.Writes())

	require.NoError(t, app.Replay())
	assert.Len(t, transport.Writes(), firstWrites*2)

	rec, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "snake", rec.Effect)
}

func TestReplayNoSavedState(t *testing.T) {
	t.Parallel()

	app, transport, _ := newTestApp(t)

	err := app.Replay()
	require.ErrorIs(t, err, config.ErrNoSavedState)
	assert.Empty(t, transport.Writes())
}

func TestApplyRandomAlwaysValid(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1)) //nolint:gosec

	// every draw must produce parameters the chosen effect accepts
	for i := 0; i < 50; i++ {
		app, transport, store := newTestApp(t)

		e, err := app.ApplyRandom(rng)
		require.NoError(t, err)
		assert.NotEmpty(t, transport.Writes())

		rec, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, e.String(), rec.Effect)

		if e.Capability().Speed {
			require.NotNil(t, rec.Params.Speed)
			assert.GreaterOrEqual(t, *rec.Params.Speed, 1)
			assert.LessOrEqual(t, *rec.Params.Speed, 11)
		}
		if e.Capability().Direction {
			require.NotNil(t, rec.Params.Direction)
			assert.GreaterOrEqual(t, *rec.Params.Direction, 1)
			assert.LessOrEqual(t, *rec.Params.Direction, 6)
		}
	}
}
