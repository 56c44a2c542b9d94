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

package encoding_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/lassandro/intcode/pkg/encoding"
)

func TestWords(t *testing.T) {
	for _, value := range []int64{0, 1, -1, 42, -42, math.MaxInt64, math.MinInt64} {
		word := encoding.FromInt64(value)

		if have, ok := encoding.ToInt64(&word); !ok || have != value {
			t.Errorf("Word round trip mismatch\nwant:%d\nhave:%d", value, have)
		}
	}

	t.Run("Wide", func(t *testing.T) {
		const text = "-1219070197637119520990397531694844"

		word, err := encoding.ParseWord(text)

		if err != nil {
			t.Fatal(err)
		}

		if _, ok := encoding.ToInt64(&word); ok {
			t.Error("Expected wide word to overflow int64")
		}

		if have := encoding.FormatWord(&word); have != text {
			t.Errorf("Wide word mismatch\nwant:%s\nhave:%s", text, have)
		}
	})

	t.Run("Out Of Range", func(t *testing.T) {
		// 91 nines needs 303 bits
		for _, text := range []string{strings.Repeat("9", 91), "-" + strings.Repeat("9", 91)} {
			if _, err := encoding.ParseWord(text); !errors.Is(err, encoding.ErrWordRange) {
				t.Errorf("Expected ErrWordRange, have %v", err)
			}
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, text := range []string{"", "abc", "1.5", "--1"} {
			if _, err := encoding.ParseWord(text); err == nil {
				t.Errorf("Expected %q to fail", text)
			}
		}
	})
}

func TestDecodeInt(t *testing.T) {
	tests := []struct {
		Name  string
		Input string
		Want  int64
	}{
		{Name: "Decimal", Input: "123", Want: 123},
		{Name: "Negative", Input: "-7", Want: -7},
		{Name: "Pound", Input: "#12", Want: 12},
		{Name: "Hex", Input: "0x1F", Want: 31},
		{Name: "Short Hex", Input: "x10", Want: 16},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			have, err := encoding.DecodeInt(test.Input)

			if err != nil {
				t.Fatal(err)
			}

			if have != test.Want {
				t.Errorf("Value mismatch\nwant:%d\nhave:%d", test.Want, have)
			}
		})
	}
}

func TestParseProgram(t *testing.T) {
	t.Run("Whitespace", func(t *testing.T) {
		program, err := encoding.ParseProgram(" 1, 0 ,0,0 ,99,\n")

		if err != nil {
			t.Fatal(err)
		}

		if have := encoding.FormatProgram(program); have != "1,0,0,0,99" {
			t.Errorf("Program mismatch\nwant:1,0,0,0,99\nhave:%s", have)
		}
	})

	t.Run("Negative", func(t *testing.T) {
		program, err := encoding.ParseProgram("1101,100,-1,4,0")

		if err != nil {
			t.Fatal(err)
		}

		if have, _ := encoding.ToInt64(&program[2]); have != -1 {
			t.Errorf("Word mismatch\nwant:-1\nhave:%d", have)
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := encoding.ParseProgram("1,2,x,4")

		var parseErr *encoding.ParseError

		if !errors.As(err, &parseErr) {
			t.Fatalf("Expected *ParseError, have %v", err)
		}

		if parseErr.Index != 2 {
			t.Errorf("Token index mismatch\nwant:2\nhave:%d", parseErr.Index)
		}

		if !errors.Is(err, encoding.ErrInvalidToken) {
			t.Error("Expected error to wrap ErrInvalidToken")
		}
	})

	t.Run("Empty Token", func(t *testing.T) {
		if _, err := encoding.ParseProgram("1,,2"); err == nil {
			t.Error("Expected an empty inner token to fail")
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if _, err := encoding.ParseProgram("  \n"); !errors.Is(err, encoding.ErrEmptyProgram) {
			t.Errorf("Expected ErrEmptyProgram, have %v", err)
		}
	})
}

func TestParseInts(t *testing.T) {
	values, err := encoding.ParseInts("5, 6,7 ,8,9")

	if err != nil {
		t.Fatal(err)
	}

	want := []int64{5, 6, 7, 8, 9}

	if len(values) != len(want) {
		t.Fatalf("Length mismatch\nwant:%d\nhave:%d", len(want), len(values))
	}

	for i := range want {
		if values[i] != want[i] {
			t.Errorf("Value %d mismatch\nwant:%d\nhave:%d", i, want[i], values[i])
		}
	}

	if values, err := encoding.ParseInts(""); err != nil || len(values) != 0 {
		t.Errorf("Expected no values, have %v (%v)", values, err)
	}
}
