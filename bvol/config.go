// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bvol

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/bounds/logx"
	"cogentcore.org/core/base/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config contains the settings of a [Job].
type Config struct {

	// Workers is the number of workers used to compute bounds.
	// Zero or less means GOMAXPROCS; one forces sequential computation.
	Workers int `toml:"workers" yaml:"workers"`

	// Commit is how dirty state is cleared after bounds are committed.
	Commit CommitModes `toml:"commit" yaml:"commit"`

	// VeryVerbose logs frame summaries and skipped empty geometry.
	VeryVerbose bool `toml:"very_verbose" yaml:"very_verbose"`

	// Verbose logs at info level.
	Verbose bool `toml:"verbose" yaml:"verbose"`

	// Quiet only logs errors.
	Quiet bool `toml:"quiet" yaml:"quiet"`
}

// Defaults sets the default values.
func (c *Config) Defaults() {
	*c = Config{Commit: CommitClearAll}
}

// Level returns the logging level selected by the verbosity flags.
func (c *Config) Level() slog.Level {
	return logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
}

// NewLogger returns a logger writing to w at [Config.Level].
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	return logx.NewLogger(w, c.Level())
}

// OpenConfig reads a [Config] from the given TOML (.toml) or
// YAML (.yaml, .yml) file, starting from the defaults.
func OpenConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	c, err := ReadConfig(data, filepath.Ext(filename))
	if err != nil {
		return nil, fmt.Errorf("bvol.OpenConfig %q: %w", filename, err)
	}
	return c, nil
}

// ReadConfig decodes a [Config] from data in the format given by the
// file extension ext, starting from the defaults.
func ReadConfig(data []byte, ext string) (*Config, error) {
	c := &Config{}
	c.Defaults()
	var err error
	switch strings.ToLower(ext) {
	case ".toml":
		err = toml.Unmarshal(data, c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		err = fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// OpenConfigOrDefaults is like [OpenConfig], but logs any error
// and returns the defaults instead.
func OpenConfigOrDefaults(filename string) *Config {
	c, err := OpenConfig(filename)
	if errors.Log(err) != nil {
		c = &Config{}
		c.Defaults()
	}
	return c
}
