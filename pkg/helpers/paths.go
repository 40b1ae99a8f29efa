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
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rgbkb-project/rgbkb-core/pkg/config"
)

// ConfigDir is where the settings file and the last-applied state live.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, config.AppName)
}

// StateDir holds runtime artifacts such as the log file.
func StateDir() string {
	return filepath.Join(xdg.StateHome, config.AppName)
}

func SettingsPath() string {
	return filepath.Join(ConfigDir(), config.CfgFile)
}

func StatePath() string {
	return filepath.Join(ConfigDir(), config.StateFile)
}

func LogPath() string {
	return filepath.Join(StateDir(), config.LogFile)
}

// EnsureDirectories creates the per-user directories before logging or
// config initialization touches them.
func EnsureDirectories() error {
	for _, dir := range []string{ConfigDir(), StateDir()} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}
