// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// app.go - Console assembly shared by the REPL, TUI and script modes.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/jeranaias/rigrun-console/internal/config"
	"github.com/jeranaias/rigrun-console/internal/console"
	"github.com/jeranaias/rigrun-console/internal/cvar"
	"github.com/jeranaias/rigrun-console/internal/logging"
)

// App owns one console together with the configuration it exposes.
type App struct {
	Config     *config.Config
	ConfigPath string
	Log        *logrus.Logger
	Vars       *cvar.Store
	Console    *console.Console
	Completer  *console.Completer

	bound map[string]*cvar.Var
	quit  atomic.Bool
}

// LoadConfig loads the file named by --config, or the default file.
func LoadConfig(args Args) (*config.Config, string, error) {
	if args.ConfigPath == "" {
		path, _ := config.ConfigPathTOML()
		cfg, err := config.Load()
		return cfg, path, err
	}

	if _, err := os.Stat(args.ConfigPath); errors.Is(err, os.ErrNotExist) {
		return nil, args.ConfigPath, &NotFoundError{Resource: "config file", ID: args.ConfigPath}
	}
	cfg, err := config.LoadFromPath(args.ConfigPath)
	return cfg, args.ConfigPath, err
}

// NewApp builds the logger, variable store and console for cfg. Log output,
// which includes all console output, goes to out.
func NewApp(cfg *config.Config, path string, out io.Writer, args Args) (*App, error) {
	switch {
	case args.Verbose:
		cfg.Log.Level = "debug"
	case args.Quiet:
		cfg.Log.Level = "error"
	}
	log := logging.New(cfg.Log, out)

	store := cvar.NewStore()
	bound, err := config.BindVariables(store, cfg)
	if err != nil {
		return nil, WrapError(err, "failed to bind configuration variables")
	}

	c := console.New(store, log)
	c.SetAutoCorrection(cfg.Console.AutoCorrection)
	c.SetColoredFind(cfg.Console.ColoredFind && ColorsEnabled())

	a := &App{
		Config:     cfg,
		ConfigPath: path,
		Log:        log,
		Vars:       store,
		Console:    c,
		Completer:  console.NewCompleter(c),
		bound:      bound,
	}

	a.wireVariables()
	if err := a.defineVariables(); err != nil {
		return nil, err
	}

	console.RegisterBuiltins(c)
	c.SetQuitHandler(a.RequestQuit)
	if err := a.registerCommands(); err != nil {
		return nil, err
	}
	return a, nil
}

// wireVariables keeps the console and logger in step with their variables.
func (a *App) wireVariables() {
	a.bound["console.auto_correction"].OnChange(func(v any) {
		a.Console.SetAutoCorrection(v.(bool))
	})
	a.bound["console.colored_find"].OnChange(func(v any) {
		a.Console.SetColoredFind(v.(bool) && ColorsEnabled())
	})
	a.bound["log.level"].OnChange(func(v any) {
		if err := logging.SetLevel(a.Log, v.(string)); err != nil {
			a.Log.WithError(err).Warn("Could not change log level")
		}
	})
	a.bound["log.format"].OnChange(func(v any) {
		a.Log.SetFormatter(logging.Formatter(v.(string)))
	})
}

// defineVariables adds the session variables that are not backed by the
// config file.
func (a *App) defineVariables() error {
	if _, err := cvar.Define(a.Vars, "cheats.fly", "Allows the player to fly.", false); err != nil {
		return err
	}
	if _, err := cvar.Define(a.Vars, "cheats.speed", "Movement speed multiplier.", float32(1)); err != nil {
		return err
	}
	return nil
}

// =============================================================================
// SESSION COMMANDS
// =============================================================================

func (a *App) registerCommands() error {
	r := a.Console.Registry()

	if _, err := console.RegisterMethod0(r, "vars", "Prints every variable with its value.", a, (*App).printVars); err != nil {
		return err
	}
	if _, err := console.RegisterMethod1(r, "reset", "Restores a variable to its default value.", a, (*App).resetVar); err != nil {
		return err
	}
	if _, err := console.RegisterMethod0(r, "config.save", "Writes the current configuration to the config file.", a, (*App).saveConfig); err != nil {
		return err
	}
	if _, err := console.RegisterMethod0(r, "config.reload", "Reloads the config file.", a, (*App).reloadConfig); err != nil {
		return err
	}
	if _, err := console.Register0(r, "version", "Prints the rigcon version.", func() {
		a.Log.Infof("rigcon %s (%s)", Version, GitCommit)
	}); err != nil {
		return err
	}
	return nil
}

func (a *App) printVars() {
	for _, v := range a.Vars.Variables() {
		a.Log.Infof("%s = %s", v.Name(), displayValue(v.Value()))
	}
}

func (a *App) resetVar(name string) {
	v, ok := a.Vars.Lookup(name)
	if !ok {
		a.Log.Errorf("Unknown variable '%s'", name)
		return
	}
	if err := v.Reset(); err != nil {
		a.Log.WithError(err).Errorf("Could not reset '%s'", name)
		return
	}
	a.Log.Infof("%s = %s", name, displayValue(v.Value()))
}

func (a *App) saveConfig() {
	if a.ConfigPath == "" {
		a.Log.Error("No config file path available")
		return
	}
	if err := config.SaveTOML(a.snapshot(), a.ConfigPath); err != nil {
		a.Log.WithError(err).Error("Could not save configuration")
		return
	}
	a.Log.Infof("Configuration saved to %s", a.ConfigPath)
}

// snapshot copies the configuration out of the bound variables. Each value
// is read under its variable's lock, so the watcher may apply a reload at
// the same time.
func (a *App) snapshot() *config.Config {
	cfg := config.Default()
	for _, key := range config.GetAllKeys() {
		if err := cfg.Set(key, a.bound[key].Value()); err != nil {
			a.Log.WithError(err).WithField("key", key).Debug("Config key not copied")
		}
	}
	return cfg
}

func (a *App) reloadConfig() {
	cfg, err := config.LoadFromPath(a.ConfigPath)
	if err != nil {
		a.Log.WithError(err).Error("Could not reload configuration")
		return
	}
	a.ApplyConfig(cfg)
	a.Log.Info("Configuration reloaded")
}

func displayValue(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return strings.ToLower(fmt.Sprint(v))
}

// =============================================================================
// CONFIG UPDATES
// =============================================================================

// ApplyConfig copies every key of cfg into the bound variables, so change
// listeners run as if the values had been typed at the console.
func (a *App) ApplyConfig(cfg *config.Config) {
	for _, key := range config.GetAllKeys() {
		value, err := cfg.Get(key)
		if err != nil {
			continue
		}
		v := a.bound[key]
		if v.Value() == value {
			continue
		}
		if err := v.SetValue(value); err != nil {
			a.Log.WithError(err).WithField("key", key).Warn("Ignoring config value")
		}
	}
}

// Watch reloads the config file whenever it changes until ctx is done.
func (a *App) Watch(ctx context.Context) error {
	if a.ConfigPath == "" {
		return nil
	}
	return config.Watch(ctx, a.ConfigPath, func(cfg *config.Config, err error) {
		if err != nil {
			a.Log.WithError(err).Warn("Config reload failed")
			return
		}
		a.ApplyConfig(cfg)
		a.Log.Debug("Configuration reloaded from disk")
	})
}

// Prompt returns the current prompt.
func (a *App) Prompt() string {
	if s, ok := a.bound["console.prompt"].Value().(string); ok {
		return s
	}
	return "> "
}

// HistoryPath returns the history file location.
func (a *App) HistoryPath() string {
	cfg := config.Default()
	if s, ok := a.bound["console.history_file"].Value().(string); ok {
		cfg.Console.HistoryFile = s
	}
	return cfg.HistoryPath()
}

// =============================================================================
// QUIT
// =============================================================================

// RequestQuit is the console's quit handler.
func (a *App) RequestQuit() {
	a.quit.Store(true)
}

// Quitting reports whether quit has been requested.
func (a *App) Quitting() bool {
	return a.quit.Load()
}
