//go:build linux

/*
RGBKB Core
Copyright (c) 2026 The RGBKB Project Contributors.

This file is part of RGBKB Core.

RGBKB Core is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

RGBKB Core is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with RGBKB Core.  If not, see <http://www.gnu.org/licenses/>.
*/

package main

import (
	"github.com/rgbkb-project/rgbkb-core/pkg/cli"
)

func main() {
	cli.Execute()
}
