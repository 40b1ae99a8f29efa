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

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/coreos/go-systemd/v22/dbus"
)

// Manager drives the user systemd instance over D-Bus.
type Manager struct {
	conn *dbus.Conn
}

// NewManager opens a connection to the user's systemd instance.
func NewManager(ctx context.Context) (*Manager, error) {
	conn, err := dbus.NewUserConnectionContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to user systemd: %w", err)
	}
	return &Manager{conn: conn}, nil
}

// Reload asks systemd to re-read unit files after an install or
// uninstall.
func (m *Manager) Reload(ctx context.Context) error {
	if err := m.conn.ReloadContext(ctx); err != nil {
		return fmt.Errorf("failed to reload systemd units: %w", err)
	}
	return nil
}

// Enable marks the unit to start at login.
func (m *Manager) Enable(ctx context.Context) error {
	_, _, err := m.conn.EnableUnitFilesContext(ctx, []string{UnitName}, false, true)
	if err != nil {
		return fmt.Errorf("failed to enable %s: %w", UnitName, err)
	}
	return nil
}

// Disable removes the unit from the login startup set.
func (m *Manager) Disable(ctx context.Context) error {
	_, err := m.conn.DisableUnitFilesContext(ctx, []string{UnitName}, false)
	if err != nil {
		return fmt.Errorf("failed to disable %s: %w", UnitName, err)
	}
	return nil
}

// Status returns the unit's ActiveState as reported by systemd.
func (m *Manager) Status(ctx context.Context) (string, error) {
	prop, err := m.conn.GetUnitPropertyContext(ctx, UnitName, "ActiveState")
	if err != nil {
		return "", fmt.Errorf("failed to query %s: %w", UnitName, err)
	}
	return strings.Trim(prop.Value.String(), "\""), nil
}

// Close releases the D-Bus connection.
func (m *Manager) Close() {
	if m.conn != nil {
		m.conn.Close()
	}
}
