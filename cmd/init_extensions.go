/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Design: Extensions register during init() but aren't initialised until
// first command execution. The codec is built once from flags, environment
// and config, then shared across all extensions via the Context.

package cmd

import (
	"fmt"
	"os"
	"sync"

	"github.com/jpl-au/behold/extension"
	"github.com/jpl-au/behold/internal/config"
	"github.com/jpl-au/behold/internal/lister"
	"github.com/jpl-au/behold/internal/log"
	"github.com/jpl-au/behold/internal/tagpath"
)

// noCodecCommands lists commands that run without building the codec.
// Built from extensions implementing extension.Codecless.
var noCodecCommands map[string]bool

func buildNoCodecCommands() map[string]bool {
	cmds := map[string]bool{
		"help":       true,
		"completion": true,
	}
	for _, ext := range extension.All() {
		if c, ok := ext.(extension.Codecless); ok {
			for _, name := range c.NoCodecCommands() {
				cmds[name] = true
			}
		}
	}
	return cmds
}

var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions loads config, builds the codec and injects both into
// every Initializable extension.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}

		m, s := cfg.Marker(), cfg.Separator()
		if v := Marker(); v != "" {
			m = v
		}
		if v := Separator(); v != "" {
			s = v
		}

		codec, err := tagpath.New(m, s)
		if err != nil {
			initErr = err
			return
		}

		if wd, err := os.Getwd(); err == nil {
			log.SetProject(wd)
		}

		extContext = extension.NewContext(codec, lister.New(codec.Marker()))
		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}
		noCodecCommands = buildNoCodecCommands()
	})
}
