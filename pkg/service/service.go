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

// Package service installs a systemd user unit that replays the saved
// backlight effect at login, and controls it over the user D-Bus.
package service

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/adrg/xdg"
)

//go:embed conf/rgbkb.service
var unitTemplate string

// UnitName is the systemd unit the enable and disable commands manage.
const UnitName = "rgbkb.service"

// UnitPath is where the rendered unit file is installed for the
// current user.
func UnitPath() string {
	return filepath.Join(xdg.ConfigHome, "systemd", "user", UnitName)
}

// RenderUnit fills the unit template with the path of the binary that
// systemd should run at login.
func RenderUnit(execPath string) (string, error) {
	tmpl, err := template.New(UnitName).Parse(unitTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse unit template: %w", err)
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, struct{ Exec string }{Exec: execPath}); err != nil {
		return "", fmt.Errorf("failed to render unit template: %w", err)
	}
	return sb.String(), nil
}

// Install writes the unit file to the user's systemd directory,
// creating it if needed. Any existing unit is replaced.
func Install(execPath string) error {
	unit, err := RenderUnit(execPath)
	if err != nil {
		return err
	}
	dir := filepath.Dir(UnitPath())
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	if err := os.WriteFile(UnitPath(), []byte(unit), 0o644); err != nil {
		return fmt.Errorf("failed to write unit file: %w", err)
	}
	return nil
}

// Uninstall removes the unit file. A missing file is not an error.
func Uninstall() error {
	err := os.Remove(UnitPath())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove unit file: %w", err)
	}
	return nil
}

// Installed reports whether the unit file is present.
func Installed() bool {
	_, err := os.Stat(UnitPath())
	return err == nil
}
