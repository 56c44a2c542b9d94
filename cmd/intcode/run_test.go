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

package main

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/lassandro/intcode/pkg/machine"
)

type testFeeder struct {
	Lines [][]int64
}

func (f *testFeeder) Next() ([]int64, error) {
	if len(f.Lines) == 0 {
		return nil, io.EOF
	}

	line := f.Lines[0]
	f.Lines = f.Lines[1:]
	return line, nil
}

func TestExecute(t *testing.T) {
	tests := []struct {
		Name    string
		Program string
		Lines   [][]int64
		ASCII   bool
		Display string
		Code    int
	}{
		{
			Name:    "Echo Twice",
			Program: "3,0,4,0,3,0,4,0,99",
			Lines:   [][]int64{{7}, {-8}},
			Display: "7\n-8\n",
		},
		{
			Name:    "ASCII",
			Program: "104,72,104,105,104,10,104,300,99",
			ASCII:   true,
			Display: "Hi\n300\n",
		},
		{
			Name:    "Input Closed",
			Program: "104,1,3,0,99",
			Display: "1\n",
		},
		{
			Name:    "Fault",
			Program: "104,5,42",
			Display: "5\n",
			Code:    1,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			mc, err := machine.New(test.Program, nil)

			if err != nil {
				t.Fatal(err)
			}

			mc.WaitOnInput()

			var display bytes.Buffer
			code := execute(mc, &testFeeder{Lines: test.Lines}, &display, test.ASCII)

			if code != test.Code {
				t.Errorf("Exit code mismatch\nwant:%d\nhave:%d", test.Code, code)
			}

			if have := display.String(); have != test.Display {
				t.Errorf("Display output mismatch\nwant:%q\nhave:%q", test.Display, have)
			}
		})
	}
}

func TestLineFeeder(t *testing.T) {
	scanner := bufio.NewScanner(strings.NewReader("ab\n1,2\n"))
	ascii := newLineFeeder(scanner, true)

	values, err := ascii.Next()

	if err != nil {
		t.Fatal(err)
	}

	if len(values) != 3 || values[0] != 'a' || values[2] != '\n' {
		t.Errorf("ASCII line mismatch\nwant:[97 98 10]\nhave:%v", values)
	}

	numeric := newLineFeeder(scanner, false)

	if values, err = numeric.Next(); err != nil || len(values) != 2 || values[1] != 2 {
		t.Errorf("Numeric line mismatch\nwant:[1 2]\nhave:%v (%v)", values, err)
	}

	if _, err := numeric.Next(); err != io.EOF {
		t.Errorf("Expected EOF, have %v", err)
	}
}

func TestKeyFeeder(t *testing.T) {
	keys := newKeyFeeder(strings.NewReader("a\x04"))

	if values, err := keys.Next(); err != nil || len(values) != 1 || values[0] != 'a' {
		t.Errorf("Key mismatch\nwant:[97]\nhave:%v (%v)", values, err)
	}

	if _, err := keys.Next(); err != io.EOF {
		t.Errorf("Expected EOF on Ctrl-D, have %v", err)
	}
}
