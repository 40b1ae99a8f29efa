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

package helpers

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathsUnderXDGHomes(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	xdg.Reload()

	assert.Equal(t, filepath.Join(tmp, "config", "rgbkb"), ConfigDir())
	assert.Equal(t, filepath.Join(tmp, "state", "rgbkb"), StateDir())
	assert.Equal(t, filepath.Join(ConfigDir(), "config.toml"), SettingsPath())
	assert.Equal(t, filepath.Join(ConfigDir(), "state.json"), StatePath())
	assert.Equal(t, filepath.Join(StateDir(), "core.log"), LogPath())
}

func TestEnsureDirectories(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	xdg.Reload()

	require.NoError(t, EnsureDirectories())
	assert.DirExists(t, ConfigDir())
	assert.DirExists(t, StateDir())
}
