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
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rgbkb-project/rgbkb-core/pkg/effects"
	"github.com/spf13/afero"
)

var (
	ErrNoSavedState = errors.New("no saved state")
	ErrCorruptState = errors.New("corrupt state file")
)

// Record is the persisted last-applied effect. Params that the effect's
// capability row does not declare are explicit nulls, not omitted keys.
type Record struct {
	Effect string       `json:"effect"`
	Params RecordParams `json:"params"`
}

type RecordParams struct {
	HexColor  *string `json:"hexcolor"`
	Speed     *int    `json:"speed"`
	Level     *int    `json:"level"`
	Direction *int    `json:"direction"`
}

// NewRecord captures an applied effect for persistence. The hex color is
// stored as entered (minus any leading "#") so it can be shown back to the
// user; the remaining params are stored hardware-normalized.
func NewRecord(effect effects.Effect, hexcolor string, params effects.Params) Record {
	rec := Record{Effect: effect.String()}

	if params.Color != nil {
		c := hexcolor
		if len(c) > 0 && c[0] == '#' {
			c = c[1:]
		}
		rec.Params.HexColor = &c
	}
	if params.Speed != nil {
		v := int(*params.Speed)
		rec.Params.Speed = &v
	}
	if params.Brightness != nil {
		v := int(*params.Brightness)
		rec.Params.Level = &v
	}
	if params.Direction != nil {
		v := int(*params.Direction)
		rec.Params.Direction = &v
	}

	return rec
}

// ToEffect converts a loaded record back into an effect and its normalized
// params. Stored values are used verbatim; anything that no longer fits
// the effect's capability row or the hardware ranges means the file was
// tampered with or truncated and reports ErrCorruptState.
func (r Record) ToEffect() (effects.Effect, effects.Params, error) {
	effect, err := effects.Parse(r.Effect)
	if err != nil {
		return 0, effects.Params{}, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}

	caps := effect.Capability()
	var params effects.Params

	if caps.Color {
		if r.Params.HexColor == nil {
			return 0, effects.Params{}, fmt.Errorf("%w: missing color for %s", ErrCorruptState, effect)
		}
		rgb, err := effects.ParseColor(*r.Params.HexColor)
		if err != nil {
			return 0, effects.Params{}, fmt.Errorf("%w: %v", ErrCorruptState, err)
		}
		params.Color = &rgb
	}
	if caps.Speed {
		if r.Params.Speed == nil || *r.Params.Speed < 0 || *r.Params.Speed > 255 {
			return 0, effects.Params{}, fmt.Errorf("%w: bad speed for %s", ErrCorruptState, effect)
		}
		v := uint8(*r.Params.Speed)
		params.Speed = &v
	}
	if caps.Brightness {
		if r.Params.Level == nil {
			return 0, effects.Params{}, fmt.Errorf("%w: missing level for %s", ErrCorruptState, effect)
		}
		v, err := effects.MapBrightness(*r.Params.Level)
		if err != nil {
			return 0, effects.Params{}, fmt.Errorf("%w: %v", ErrCorruptState, err)
		}
		params.Brightness = &v
	}
	if caps.Direction {
		if r.Params.Direction == nil {
			return 0, effects.Params{}, fmt.Errorf("%w: missing direction for %s", ErrCorruptState, effect)
		}
		v, err := effects.MapDirection(*r.Params.Direction)
		if err != nil {
			return 0, effects.Params{}, fmt.Errorf("%w: %v", ErrCorruptState, err)
		}
		params.Direction = &v
	}

	return effect, params, nil
}

// StateStore persists the last-applied record as a single JSON object.
type StateStore struct {
	fs   afero.Fs
	path string
}

func NewStateStore(fs afero.Fs, path string) *StateStore {
	return &StateStore{fs: fs, path: path}
}

// Save replaces the stored record wholesale. The write goes to a temp
// file first and is renamed into place so a reader never observes a
// half-written record.
func (s *StateStore) Save(rec Record) error {
	data, err := json.Marshal(&rec)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}

// Load returns the stored record, ErrNoSavedState if nothing has ever
// been saved, or ErrCorruptState if the file does not parse as a record.
func (s *StateStore) Load() (Record, error) {
	exists, err := afero.Exists(s.fs, s.path)
	if err != nil {
		return Record{}, fmt.Errorf("failed to stat state file: %w", err)
	}
	if !exists {
		return Record{}, ErrNoSavedState
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return Record{}, fmt.Errorf("failed to read state file: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	if rec.Effect == "" {
		return Record{}, fmt.Errorf("%w: missing effect name", ErrCorruptState)
	}
	return rec, nil
}
