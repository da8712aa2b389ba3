package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	bignum "github.com/shabbyrobe/go-bignum"
)

// config is the contents of a bigcalc TOML file. Every key is optional.
//
//	radix = 16
//	color = "off"
//	log_level = "debug"
//	log_fmt = "json"
type config struct {
	Radix    int    `toml:"radix"`
	Color    string `toml:"color"`
	LogLevel string `toml:"log_level"`
	LogFmt   string `toml:"log_fmt"`
}

func defaultConfig() config {
	return config{
		Radix:    10,
		Color:    "auto",
		LogLevel: "warn",
		LogFmt:   "text",
	}
}

// defaultConfigPath returns the per-user config file location, or "" if the
// user config directory is unknown.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "bigcalc", "config.toml")
}

// loadConfig reads the TOML file at path over the defaults. A missing file is
// only an error if required is set.
func loadConfig(path string, required bool) (config, error) {
	cfg := defaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return cfg, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

func (c config) validate() error {
	if c.Radix < bignum.MinRadix || c.Radix > bignum.MaxRadix {
		return fmt.Errorf("invalid radix %d: %w", c.Radix, bignum.ErrInvalidRadix)
	}
	switch c.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("invalid color %q: expected auto, on, or off", c.Color)
	}
	if _, err := slogLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFmt {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log-fmt %q: expected text or json", c.LogFmt)
	}
	return nil
}
