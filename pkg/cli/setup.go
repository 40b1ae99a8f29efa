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
	"fmt"

	"github.com/rgbkb-project/rgbkb-core/pkg/config"
	"github.com/rgbkb-project/rgbkb-core/pkg/helpers"
	"github.com/rgbkb-project/rgbkb-core/pkg/keyboard/usbhid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Setup prepares directories, logging, and the settings file. It runs
// once before any command touches the device.
func Setup() (*config.Instance, error) {
	if err := helpers.EnsureDirectories(); err != nil {
		return nil, err
	}
	if err := helpers.InitLogging(nil); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	cfg, err := config.NewConfig(helpers.ConfigDir(), config.BaseDefaults)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if cfg.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	return cfg, nil
}

// NewDefaultApp builds the production app: real HID transport, state
// store on the OS filesystem, device IDs from settings when overridden.
func NewDefaultApp(cfg *config.Instance) *App {
	transport := usbhid.New()
	if vendorID, productID, ok := cfg.DeviceOverride(); ok {
		transport = usbhid.NewWithIDs(vendorID, productID)
	}
	store := config.NewStateStore(afero.NewOsFs(), helpers.StatePath())
	return NewApp(store, transport)
}
