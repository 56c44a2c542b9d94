// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package config handles intcode.toml run configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lassandro/intcode/pkg/amplifier"
	"github.com/lassandro/intcode/pkg/encoding"
	"github.com/lassandro/intcode/pkg/machine"
)

// Config describes one program run. Command line flags take precedence over
// values loaded from a file.
type Config struct {
	Program   string          `toml:"program"`
	Input     []int64         `toml:"input"`
	Wait      bool            `toml:"wait"`
	ASCII     bool            `toml:"ascii"`
	Raw       bool            `toml:"raw"`
	Verbosity int             `toml:"verbosity"`
	Patches   []Patch         `toml:"patch"`
	Amplifier AmplifierConfig `toml:"amplifier"`

	// Dir is the directory containing the config file (set at load time).
	Dir string `toml:"-"`
}

// Patch overwrites one memory cell before the program starts.
type Patch struct {
	Addr  int   `toml:"addr"`
	Value int64 `toml:"value"`
}

// AmplifierConfig enables a phase search when Phases is non-empty.
type AmplifierConfig struct {
	Mode   string  `toml:"mode"`
	Phases []int64 `toml:"phases"`
}

var ErrInvalidPatch = errors.New("Invalid memory patch")

// Load parses a TOML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	cfg.Dir, err = filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}

	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	var cfg Config

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (cfg *Config) Validate() error {
	for _, patch := range cfg.Patches {
		if patch.Addr < 0 || patch.Addr > machine.MAX_ADDRESS {
			return fmt.Errorf("%w: address %d", ErrInvalidPatch, patch.Addr)
		}
	}

	if len(cfg.Amplifier.Phases) > 0 {
		if _, err := cfg.AmplifierMode(); err != nil {
			return err
		}
	}

	return nil
}

// AmplifierMode defaults to series when unset.
func (cfg *Config) AmplifierMode() (amplifier.Mode, error) {
	if cfg.Amplifier.Mode == "" {
		return amplifier.MODE_SERIES, nil
	}

	return amplifier.ParseMode(cfg.Amplifier.Mode)
}

// ProgramPath resolves Program relative to the config file's directory.
func (cfg *Config) ProgramPath() string {
	if cfg.Program == "" || filepath.IsAbs(cfg.Program) || cfg.Dir == "" {
		return cfg.Program
	}

	return filepath.Join(cfg.Dir, cfg.Program)
}

// ParsePatches decodes the -patch flag format: addr=value,addr=value
func ParsePatches(text string) ([]Patch, error) {
	text = strings.TrimSpace(text)

	if text == "" {
		return nil, nil
	}

	var patches []Patch

	for _, pair := range strings.Split(text, ",") {
		addr, value, ok := strings.Cut(pair, "=")

		if !ok {
			return nil, fmt.Errorf("%w: '%s'", ErrInvalidPatch, pair)
		}

		a, err := encoding.DecodeInt(addr)

		if err != nil || a < 0 {
			return nil, fmt.Errorf("%w: '%s'", ErrInvalidPatch, pair)
		}

		v, err := encoding.DecodeInt(value)

		if err != nil {
			return nil, fmt.Errorf("%w: '%s'", ErrInvalidPatch, pair)
		}

		patches = append(patches, Patch{Addr: int(a), Value: v})
	}

	return patches, nil
}
