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

// Package usbhid implements the keyboard transport on top of hidapi.
package usbhid

import (
	"fmt"
	"sync"

	"github.com/rgbkb-project/rgbkb-core/pkg/keyboard"
	"github.com/rs/zerolog/log"
	"github.com/sstallion/go-hid"
)

// USB identifiers of the supported keyboard backlight controller
// (ITE Tech controller found in the Acer PH16-71).
const (
	DefaultVendorID  = 0x048D
	DefaultProductID = 0xCE00
)

var hidInit sync.Once

// Transport enumerates and opens the keyboard over raw HID.
type Transport struct {
	vendorID  uint16
	productID uint16
}

// New returns a transport filtering on the default vendor/product pair.
func New() *Transport {
	return NewWithIDs(DefaultVendorID, DefaultProductID)
}

// NewWithIDs returns a transport filtering on a custom vendor/product
// pair, for hardware revisions that reuse the protocol under other IDs.
func NewWithIDs(vendorID, productID uint16) *Transport {
	return &Transport{vendorID: vendorID, productID: productID}
}

func (t *Transport) ListCandidates() ([]keyboard.Candidate, error) {
	hidInit.Do(func() {
		if err := hid.Init(); err != nil {
			log.Warn().Err(err).Msg("hidapi init failed")
		}
	})

	var candidates []keyboard.Candidate
	err := hid.Enumerate(t.vendorID, t.productID, func(info *hid.DeviceInfo) error {
		candidates = append(candidates, keyboard.Candidate{
			Path:    info.Path,
			Product: info.ProductStr,
		})
		return nil
	})
	if err != nil {
		// hidapi reports an empty enumeration as an error on some
		// platforms; the session treats an empty list as "no device"
		// which is the right message either way.
		log.Debug().Err(err).
			Uint16("vendor", t.vendorID).
			Uint16("product", t.productID).
			Msg("hid enumeration returned error")
	}
	return candidates, nil
}

func (t *Transport) Open(path string) (keyboard.Device, error) {
	dev, err := hid.OpenPath(path)
	if err != nil {
		return nil, fmt.Errorf("opening hid device %s: %w", path, err)
	}
	return dev, nil
}
