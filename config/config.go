// Package config loads runtime settings from the environment and the theme
// from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"ptable/render"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Config holds the settings that can come from the environment. Command-line
// flags override them.
type Config struct {
	DataFile     string `env:"PTABLE_DATA"`
	ThemeFile    string `env:"PTABLE_THEME"`
	LogFile      string `env:"PTABLE_LOG_FILE"`
	Debug        bool   `env:"PTABLE_DEBUG"`
	QuitKeys     string `env:"PTABLE_QUIT_KEYS"     envDefault:"qQ"`
	TerminalMode string `env:"PTABLE_TERMINAL_MODE"`
}

// ErrTerminalMode reports an unsupported PTABLE_TERMINAL_MODE value.
var ErrTerminalMode = errors.New("terminal mode must be ascii or unicode")

// FromEnv parses Config from the process environment.
func FromEnv() (Config, error) {
	return parse(env.Options{})
}

// FromMap parses Config from the given variables instead of the process
// environment.
func FromMap(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values env tags cannot express.
func (c Config) Validate() error {
	switch c.TerminalMode {
	case render.ModeAuto, render.ModeASCII, render.ModeUnicode:
	default:
		return fmt.Errorf("%w: got %q", ErrTerminalMode, c.TerminalMode)
	}
	if strings.TrimSpace(c.QuitKeys) == "" {
		return errors.New("quit keys must not be empty")
	}
	return nil
}

// LoadTheme reads a theme from a TOML file. An empty path returns the
// default theme. Unknown keys are rejected so typos do not pass silently.
func LoadTheme(path string) (render.Theme, error) {
	if path == "" {
		return render.DefaultTheme(), nil
	}

	var spec render.ThemeSpec
	md, err := toml.DecodeFile(path, &spec)
	if err != nil {
		return render.Theme{}, fmt.Errorf("decode theme %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return render.Theme{}, fmt.Errorf("theme %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	theme, err := render.BuildTheme(spec)
	if err != nil {
		return render.Theme{}, fmt.Errorf("theme %s: %w", path, err)
	}
	return theme, nil
}

// WriteDefaultTheme writes the built-in theme as TOML, as a starting point
// for customization.
func WriteDefaultTheme(w io.Writer) error {
	return toml.NewEncoder(w).Encode(render.DefaultThemeSpec())
}
