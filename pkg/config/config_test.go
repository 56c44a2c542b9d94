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

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lassandro/intcode/pkg/amplifier"
	"github.com/lassandro/intcode/pkg/config"
)

const sample = `
program = "day7.txt"
input = [1, 2]
wait = true
verbosity = 2

[[patch]]
addr = 1
value = 12

[[patch]]
addr = 2
value = 2

[amplifier]
mode = "feedback"
phases = [5, 6, 7, 8, 9]
`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "intcode.toml")

	if err := os.WriteFile(path, []byte(sample), 0666); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)

	if err != nil {
		t.Fatal(err)
	}

	if !cfg.Wait || cfg.ASCII || cfg.Verbosity != 2 {
		t.Errorf("Flag mismatch: %+v", cfg)
	}

	if len(cfg.Input) != 2 || cfg.Input[1] != 2 {
		t.Errorf("Input mismatch\nwant:[1 2]\nhave:%v", cfg.Input)
	}

	if len(cfg.Patches) != 2 || cfg.Patches[0] != (config.Patch{Addr: 1, Value: 12}) {
		t.Errorf("Patch mismatch\nhave:%v", cfg.Patches)
	}

	mode, err := cfg.AmplifierMode()

	if err != nil || mode != amplifier.MODE_FEEDBACK {
		t.Errorf("Mode mismatch\nwant:feedback\nhave:%s (%v)", mode, err)
	}

	if want := filepath.Join(dir, "day7.txt"); cfg.ProgramPath() != want {
		t.Errorf("Program path mismatch\nwant:%s\nhave:%s", want, cfg.ProgramPath())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		Name string
		Text string
	}{
		{Name: "Syntax", Text: "program = "},
		{Name: "Negative Patch", Text: "[[patch]]\naddr = -1\nvalue = 3\n"},
		{Name: "Mode", Text: "[amplifier]\nmode = \"parallel\"\nphases = [1]\n"},
		{Name: "Type", Text: "input = \"one\"\n"},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			if _, err := config.Parse([]byte(test.Text)); err == nil {
				t.Error("Expected parse to fail")
			}
		})
	}

	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected missing file to fail")
	}
}

func TestParsePatches(t *testing.T) {
	patches, err := config.ParsePatches("1=12, 2=0x2,0=#2")

	if err != nil {
		t.Fatal(err)
	}

	want := []config.Patch{{1, 12}, {2, 2}, {0, 2}}

	if len(patches) != len(want) {
		t.Fatalf("Length mismatch\nwant:%d\nhave:%d", len(want), len(patches))
	}

	for i := range want {
		if patches[i] != want[i] {
			t.Errorf("Patch %d mismatch\nwant:%v\nhave:%v", i, want[i], patches[i])
		}
	}

	for _, text := range []string{"1", "a=2", "-1=2", "1=b"} {
		if _, err := config.ParsePatches(text); !errors.Is(err, config.ErrInvalidPatch) {
			t.Errorf("Expected %q to fail with ErrInvalidPatch, have %v", text, err)
		}
	}
}
