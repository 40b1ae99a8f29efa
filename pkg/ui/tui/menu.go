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

// Package tui is the interactive effect picker.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rgbkb-project/rgbkb-core/pkg/config"
	"github.com/rgbkb-project/rgbkb-core/pkg/effects"
	"github.com/rivo/tview"
)

const (
	PageMenu   = "menu"
	PageParams = "params"
	PageResult = "result"
)

// Applier drives the keyboard on behalf of the menu.
type Applier interface {
	ApplyEffect(e effects.Effect, hexcolor string, speed float64, level, direction int) error
	Replay() error
}

type presetColor struct {
	Name string
	Hex  string
}

var presetColors = []presetColor{
	{"Red", "FF0000"},
	{"Green", "00FF00"},
	{"Blue", "0000FF"},
	{"Yellow", "FFFF00"},
	{"Purple", "800080"},
	{"Cyan", "00FFFF"},
	{"White", "FFFFFF"},
	{"Pink", "FF69B4"},
}

var directionOptions = []string{
	"Right", "Left", "Up", "Down", "Clockwise", "Counterclockwise",
}

// Run shows the effect menu and blocks until the user quits.
func Run(applier Applier) error {
	app := tview.NewApplication()
	pages := tview.NewPages()

	BuildMenuPage(applier, pages, app)

	if err := app.SetRoot(pages, true).Run(); err != nil {
		return fmt.Errorf("failed to run application: %w", err)
	}
	return nil
}

func capabilitySummary(caps effects.Capability) string {
	var parts []string
	if caps.Color {
		parts = append(parts, "color")
	}
	if caps.Speed {
		parts = append(parts, "speed")
	}
	if caps.Brightness {
		parts = append(parts, "brightness")
	}
	if caps.Direction {
		parts = append(parts, "direction")
	}
	return strings.Join(parts, ", ")
}

// BuildMenuPage creates the top-level effect list.
func BuildMenuPage(applier Applier, pages *tview.Pages, app *tview.Application) tview.Primitive {
	list := tview.NewList()
	list.SetSecondaryTextColor(tcell.ColorYellow)
	list.ShowSecondaryText(true)

	for _, e := range effects.List() {
		effect := e
		title := strings.ToUpper(effect.String()[:1]) + effect.String()[1:]
		list.AddItem(title, capabilitySummary(effect.Capability()), 0, func() {
			BuildParamsPage(applier, pages, app, effect)
		})
	}

	list.AddItem("Apply last", "Re-apply the saved effect", 'a', func() {
		if err := applier.Replay(); err != nil {
			showResultModal(pages, app, "Failed to apply: "+err.Error())
			return
		}
		showResultModal(pages, app, "Saved effect re-applied.")
	})
	list.AddItem("Quit", "", 'q', app.Stop)

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			app.Stop()
			return nil
		}
		return event
	})

	list.SetTitle(" " + config.AppName + " ")
	list.SetBorder(true)
	pages.AddAndSwitchToPage(PageMenu, list, true)
	return list
}

// BuildParamsPage creates the parameter form for one effect. Only the
// parameters the effect supports are shown.
func BuildParamsPage(
	applier Applier,
	pages *tview.Pages,
	app *tview.Application,
	e effects.Effect,
) tview.Primitive {
	caps := e.Capability()
	form := tview.NewForm()

	hexcolor := presetColors[6].Hex // White
	if caps.Color {
		var colorInput *tview.InputField
		names := make([]string, 0, len(presetColors)+1)
		for _, c := range presetColors {
			names = append(names, c.Name)
		}
		names = append(names, "Custom")

		form.AddDropDown("Color", names, 6, func(_ string, index int) {
			if index >= 0 && index < len(presetColors) {
				hexcolor = presetColors[index].Hex
				if colorInput != nil {
					colorInput.SetText(hexcolor)
				}
			}
		})
		form.AddInputField("Hex (RRGGBB)", hexcolor, 8, nil, func(text string) {
			hexcolor = text
		})
		colorInput, _ = form.GetFormItem(1).(*tview.InputField)
	}

	speedText := strconv.FormatFloat(1, 'f', -1, 64)
	if caps.Speed {
		form.AddInputField("Speed (1-11)", speedText, 6, tview.InputFieldFloat,
			func(text string) {
				speedText = text
			})
	}

	levelText := strconv.Itoa(effects.BrightnessMax)
	if caps.Brightness {
		form.AddInputField(fmt.Sprintf("Brightness (0-%d)", effects.BrightnessMax),
			levelText, 4, tview.InputFieldInteger,
			func(text string) {
				levelText = text
			})
	}

	direction := int(effects.DirectionRight)
	if caps.Direction {
		form.AddDropDown("Direction", directionOptions, 0, func(_ string, index int) {
			direction = index + 1
		})
	}

	form.AddButton("Apply", func() {
		speed, err := strconv.ParseFloat(speedText, 64)
		if err != nil {
			showResultModal(pages, app, "Invalid speed: "+speedText)
			return
		}
		level, err := strconv.Atoi(levelText)
		if err != nil {
			showResultModal(pages, app, "Invalid brightness: "+levelText)
			return
		}
		if err := applier.ApplyEffect(e, hexcolor, speed, level, direction); err != nil {
			showResultModal(pages, app, "Failed to apply: "+err.Error())
			return
		}
		showResultModal(pages, app, fmt.Sprintf("Effect %q applied.", e))
	})
	form.AddButton("Back", func() {
		pages.SwitchToPage(PageMenu)
	})

	form.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			pages.SwitchToPage(PageMenu)
			return nil
		}
		return event
	})

	form.SetTitle(fmt.Sprintf(" Effect - %s ", e))
	form.SetBorder(true)
	pages.AddAndSwitchToPage(PageParams, form, true)
	return form
}

func showResultModal(pages *tview.Pages, app *tview.Application, message string) {
	modal := tview.NewModal().
		SetText(message).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(_ int, _ string) {
			pages.RemovePage(PageResult)
			pages.SwitchToPage(PageMenu)
		})
	pages.AddPage(PageResult, modal, true, true)
	app.SetFocus(modal)
}
