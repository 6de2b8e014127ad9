// Package config loads the demo settings with the precedence
// defaults < config file < DROPDOWN_* environment < bound flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

const (
	KeyDictionary    = "dictionary"
	KeyHint          = "hint"
	KeyFilter        = "filter"
	KeySelectOnFocus = "select-on-focus"
	KeyWidth         = "width"
	KeyMaxHeight     = "max-height"
	KeyIgnoreAccents = "ignore-accents"
	KeyStyle         = "style"
	KeyClipboard     = "clipboard"
	KeyVerbose       = "verbose"

	envPrefix = "DROPDOWN"
)

// Values accepted by KeyStyle and KeyClipboard.
var (
	Styles     = []string{"default", "gta", "light"}
	Clipboards = []string{"window", "system"}
)

// Config is the resolved demo configuration.
type Config struct {
	Dictionary    string
	Hint          string
	Filter        bool
	SelectOnFocus bool
	Width         float32
	MaxHeight     float32
	IgnoreAccents bool
	Style         string
	Clipboard     string
	Verbose       bool
}

// New returns a viper instance with defaults and environment lookup set up.
// Callers bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault(KeyHint, "type to search")
	v.SetDefault(KeyFilter, true)
	v.SetDefault(KeySelectOnFocus, false)
	v.SetDefault(KeyWidth, 0)
	v.SetDefault(KeyMaxHeight, 200)
	v.SetDefault(KeyIgnoreAccents, false)
	v.SetDefault(KeyStyle, "default")
	v.SetDefault(KeyClipboard, "window")
	v.SetDefault(KeyVerbose, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load merges the config file at path, if any, and resolves the settings.
// A missing file is not an error when path is empty.
func Load(v *viper.Viper, path string) (Config, error) {
	if path = strings.TrimSpace(path); path != "" {
		if err := mergeConfigFile(v, path); err != nil {
			return Config{}, err
		}
	}

	cfg := Config{
		Dictionary:    v.GetString(KeyDictionary),
		Hint:          v.GetString(KeyHint),
		Filter:        v.GetBool(KeyFilter),
		SelectOnFocus: v.GetBool(KeySelectOnFocus),
		Width:         float32(v.GetFloat64(KeyWidth)),
		MaxHeight:     float32(v.GetFloat64(KeyMaxHeight)),
		IgnoreAccents: v.GetBool(KeyIgnoreAccents),
		Style:         strings.ToLower(v.GetString(KeyStyle)),
		Clipboard:     strings.ToLower(v.GetString(KeyClipboard)),
		Verbose:       v.GetBool(KeyVerbose),
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Width < 0 {
		return fmt.Errorf("%s must not be negative, got %v", KeyWidth, c.Width)
	}
	if c.MaxHeight < 0 {
		return fmt.Errorf("%s must not be negative, got %v", KeyMaxHeight, c.MaxHeight)
	}
	if err := oneOf(KeyStyle, c.Style, Styles); err != nil {
		return err
	}
	return oneOf(KeyClipboard, c.Clipboard, Clipboards)
}

func oneOf(key, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("unknown %s %q (want one of %s)", key, value, strings.Join(allowed, ", "))
}

func mergeConfigFile(v *viper.Viper, path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := v.MergeConfig(f); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
