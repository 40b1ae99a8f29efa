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
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/rgbkb-project/rgbkb-core/pkg/config"
	"github.com/rgbkb-project/rgbkb-core/pkg/effects"
	"github.com/rgbkb-project/rgbkb-core/pkg/service"
	"github.com/rgbkb-project/rgbkb-core/pkg/ui/tui"
	"github.com/spf13/cobra"
)

const dbusTimeout = 10 * time.Second

// NewRootCmd builds the full command tree. Setup and device access are
// deferred into each command's run function so help output never
// touches the filesystem or the USB bus.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Control the keyboard RGB backlight",
		Long:          "Set, randomize, and replay RGB backlight effects on the built-in keyboard.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	for _, e := range effects.List() {
		root.AddCommand(newEffectCmd(e))
	}
	root.AddCommand(newApplyCmd())
	root.AddCommand(newRandomCmd())
	root.AddCommand(newMenuCmd())
	root.AddCommand(newServiceCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and maps failures to an exit code.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func withApp(run func(app *App) error) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		cfg, err := Setup()
		if err != nil {
			return err
		}
		return run(NewDefaultApp(cfg))
	}
}

func newEffectCmd(e effects.Effect) *cobra.Command {
	caps := e.Capability()

	use := e.String()
	args := cobra.NoArgs
	if caps.Color {
		use += " <hexcolor>"
		args = cobra.ExactArgs(1)
	}

	speed := DefaultSpeed
	level := DefaultLevel
	direction := DefaultDirection

	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Apply the %s effect", e),
		Args:  args,
		RunE: func(_ *cobra.Command, cmdArgs []string) error {
			var hexcolor string
			if caps.Color {
				hexcolor = cmdArgs[0]
			}
			cfg, err := Setup()
			if err != nil {
				return err
			}
			app := NewDefaultApp(cfg)
			if err := app.ApplyEffect(e, hexcolor, speed, level, direction); err != nil {
				return err
			}
			_, _ = fmt.Printf("Applied %s effect.\n", e)
			return nil
		},
	}

	if caps.Speed {
		cmd.Flags().Float64Var(&speed, "speed", DefaultSpeed,
			"animation speed, 1 (slow) to 11 (fast), below 1 for ultra-fast")
	}
	if caps.Brightness {
		cmd.Flags().IntVar(&level, "level", DefaultLevel,
			fmt.Sprintf("brightness level, 0 to %d", effects.BrightnessMax))
	}
	if caps.Direction {
		cmd.Flags().IntVar(&direction, "direction", DefaultDirection,
			"direction: 1 right, 2 left, 3 up, 4 down, 5 clockwise, 6 counterclockwise")
	}

	return cmd
}

func newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Re-apply the last saved effect",
		Args:  cobra.NoArgs,
		RunE: withApp(func(app *App) error {
			err := app.Replay()
			if errors.Is(err, config.ErrNoSavedState) {
				return errors.New("no saved effect; run an effect command first")
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Println("Re-applied last effect.")
			return nil
		}),
	}
}

func newRandomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Apply a random effect with random parameters",
		Args:  cobra.NoArgs,
		RunE: withApp(func(app *App) error {
			rng := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec
			e, err := app.ApplyRandom(rng)
			if err != nil {
				return err
			}
			_, _ = fmt.Printf("Applied %s effect.\n", e)
			return nil
		}),
	}
}

func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Pick and configure an effect interactively",
		Args:  cobra.NoArgs,
		RunE: withApp(func(app *App) error {
			return tui.Run(app)
		}),
	}
}

func newServiceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "service",
		Short: "Manage the login replay service",
		Long:  "Install or remove the systemd user service that restores the saved effect at login.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "enable",
		Short: "Install and enable the login replay service",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			exe, err := os.Executable()
			if err != nil {
				return fmt.Errorf("failed to resolve binary path: %w", err)
			}
			if err := service.Install(exe); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), dbusTimeout)
			defer cancel()
			mgr, err := service.NewManager(ctx)
			if err != nil {
				return err
			}
			defer mgr.Close()
			if err := mgr.Reload(ctx); err != nil {
				return err
			}
			if err := mgr.Enable(ctx); err != nil {
				return err
			}
			_, _ = fmt.Println("Service enabled. The saved effect will be restored at login.")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "disable",
		Short: "Disable and remove the login replay service",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), dbusTimeout)
			defer cancel()
			mgr, err := service.NewManager(ctx)
			if err != nil {
				return err
			}
			defer mgr.Close()
			if err := mgr.Disable(ctx); err != nil {
				return err
			}
			if err := service.Uninstall(); err != nil {
				return err
			}
			if err := mgr.Reload(ctx); err != nil {
				return err
			}
			_, _ = fmt.Println("Service disabled.")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the login replay service status",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if !service.Installed() {
				_, _ = fmt.Println("Service is not installed.")
				return nil
			}

			ctx, cancel := context.WithTimeout(context.Background(), dbusTimeout)
			defer cancel()
			mgr, err := service.NewManager(ctx)
			if err != nil {
				return err
			}
			defer mgr.Close()
			state, err := mgr.Status(ctx)
			if err != nil {
				return err
			}
			_, _ = fmt.Printf("Service is installed, state: %s\n", state)
			return nil
		},
	})

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			_, _ = fmt.Printf("%s v%s (%s/%s)\n",
				config.AppName, config.AppVersion, runtime.GOOS, runtime.GOARCH)
		},
	}
}
