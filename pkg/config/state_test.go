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

package config

import (
	"encoding/json"
	"testing"

	"github.com/rgbkb-project/rgbkb-core/pkg/effects"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statePath = "/home/user/.config/rgbkb/state.json"

func newMemStore() *StateStore {
	return NewStateStore(afero.NewMemMapFs(), statePath)
}

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	store := newMemStore()

	rec := Record{
		Effect: "breathe",
		Params: RecordParams{
			HexColor: strPtr("FF8800"),
			Speed:    intPtr(5),
			Level:    intPtr(20),
		},
	}

	require.NoError(t, store.Save(rec))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, rec, loaded)
}

func TestLoadWithoutSave(t *testing.T) {
	t.Parallel()

	_, err := newMemStore().Load()
	require.ErrorIs(t, err, ErrNoSavedState)
}

func TestLoadCorruptState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"not json", "not json at all"},
		{"wrong shape", `[1, 2, 3]`},
		{"missing effect", `{"params": {"hexcolor": null, "speed": null, "level": null, "direction": null}}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, statePath, []byte(tt.data), 0o600))

			_, err := NewStateStore(fs, statePath).Load()
			require.ErrorIs(t, err, ErrCorruptState)
		})
	}
}

func TestSaveReplacesWholesale(t *testing.T) {
	t.Parallel()

	store := newMemStore()

	first := NewRecord(effects.Wave, "", mustParams(t, effects.Wave, "", 5, 20, 3))
	require.NoError(t, store.Save(first))

	second := NewRecord(effects.All, "#00FF00", mustParams(t, effects.All, "#00FF00", 0, 0, 0))
	require.NoError(t, store.Save(second))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, second, loaded)
	assert.Nil(t, loaded.Params.Speed, "stale fields must not survive a replace")
	assert.Nil(t, loaded.Params.Direction)
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	store := NewStateStore(fs, statePath)

	rec := NewRecord(effects.Neon, "", mustParams(t, effects.Neon, "", 1, 32, 0))
	require.NoError(t, store.Save(rec))

	exists, err := afero.Exists(fs, statePath+".tmp")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRecordAbsentParamsAreExplicitNulls(t *testing.T) {
	t.Parallel()

	rec := NewRecord(effects.Wave, "", mustParams(t, effects.Wave, "", 5, 20, 1))
	data, err := json.Marshal(&rec)
	require.NoError(t, err)

	// wave has no color capability but the key must still be present
	assert.JSONEq(t,
		`{"effect":"wave","params":{"hexcolor":null,"speed":5,"level":20,"direction":1}}`,
		string(data))
}

func TestNewRecordStripsHashFromColor(t *testing.T) {
	t.Parallel()

	rec := NewRecord(effects.All, "#AABBCC", mustParams(t, effects.All, "#AABBCC", 0, 0, 0))
	require.NotNil(t, rec.Params.HexColor)
	assert.Equal(t, "AABBCC", *rec.Params.HexColor)
}

func TestRecordToEffectRoundTrip(t *testing.T) {
	t.Parallel()

	for _, e := range effects.List() {
		params := mustParams(t, e, "ABCDEF", 5, 20, 3)
		rec := NewRecord(e, "ABCDEF", params)

		gotEffect, gotParams, err := rec.ToEffect()
		require.NoError(t, err, e.String())
		assert.Equal(t, e, gotEffect)
		assert.Equal(t, params, gotParams, e.String())
	}
}

func TestRecordToEffectRejectsBadValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rec  Record
	}{
		{
			name: "unknown effect",
			rec:  Record{Effect: "strobe"},
		},
		{
			name: "missing color",
			rec:  Record{Effect: "breathe", Params: RecordParams{Speed: intPtr(1), Level: intPtr(32)}},
		},
		{
			name: "direction out of range",
			rec: Record{Effect: "wave", Params: RecordParams{
				Speed: intPtr(1), Level: intPtr(32), Direction: intPtr(9),
			}},
		},
		{
			name: "level out of range",
			rec: Record{Effect: "neon", Params: RecordParams{
				Speed: intPtr(1), Level: intPtr(64),
			}},
		},
		{
			name: "bad stored color",
			rec: Record{Effect: "rain", Params: RecordParams{
				HexColor: strPtr("nothex"), Speed: intPtr(1), Level: intPtr(32),
			}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := tt.rec.ToEffect()
			require.ErrorIs(t, err, ErrCorruptState)
		})
	}
}

func mustParams(t *testing.T, e effects.Effect, hexcolor string, speed float64, level, direction int) effects.Params {
	t.Helper()
	p, err := effects.BuildParams(e, hexcolor, speed, level, direction)
	require.NoError(t, err)
	return p
}
