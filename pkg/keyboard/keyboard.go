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

package keyboard

import (
	"errors"
	"fmt"

	"github.com/rgbkb-project/rgbkb-core/pkg/effects"
	"github.com/rs/zerolog/log"
)

var (
	ErrNoDevice     = errors.New("no compatible keyboard found")
	ErrTransmission = errors.New("transmission failed")
)

// Candidate identifies one discovered compatible device.
type Candidate struct {
	Path    string
	Product string
}

// Device is one open handle to a keyboard. It is owned exclusively by the
// session for the duration of a single apply call.
type Device interface {
	Write(p []byte) (int, error)
	Close() error
}

// Transport enumerates compatible devices and opens handles to them. The
// implementation is responsible for vendor/product filtering; the session
// always uses the first candidate it returns.
type Transport interface {
	ListCandidates() ([]Candidate, error)
	Open(path string) (Device, error)
}

// Session drives one apply or replay call against a single device.
type Session struct {
	transport Transport
}

func NewSession(transport Transport) *Session {
	return &Session{transport: transport}
}

// Apply builds the packet sequence for the effect and transmits it, in
// order, to the first discovered device. The handle is closed when the
// last packet is sent or on the first write error; a failed write aborts
// the whole sequence without retry.
func (s *Session) Apply(effect effects.Effect, params effects.Params) error {
	candidates, err := s.transport.ListCandidates()
	if err != nil {
		return fmt.Errorf("listing devices: %w", err)
	}
	if len(candidates) == 0 {
		return ErrNoDevice
	}

	target := candidates[0]
	dev, err := s.transport.Open(target.Path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", target.Path, err)
	}
	defer func() {
		if closeErr := dev.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Str("device", target.Path).Msg("error closing device")
		}
	}()

	packets := effects.BuildPackets(effect, params)
	for i, packet := range packets {
		n, err := dev.Write(packet[:])
		if err != nil {
			return fmt.Errorf("%w: packet %d of %d: %w", ErrTransmission, i+1, len(packets), err)
		}
		if n != len(packet) {
			return fmt.Errorf("%w: packet %d of %d: short write (%d bytes)",
				ErrTransmission, i+1, len(packets), n)
		}
	}

	log.Info().
		Str("effect", effect.String()).
		Str("device", target.Path).
		Int("packets", len(packets)).
		Msg("effect applied")
	return nil
}
