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
	"testing"

	"github.com/lassandro/intcode/pkg/encoding"
)

func compose(digits []uint64, radix uint64) uint64 {
	var result uint64
	var place uint64 = 1

	for _, digit := range digits {
		result += digit * place
		place *= radix
	}

	return result
}

func TestDigits(t *testing.T) {
	t.Run("Recompose", func(t *testing.T) {
		values := []uint64{0, 1, 2, 9, 10, 99, 100, 1002, 21101, 65535, 1 << 40}

		for radix := uint64(2); radix <= 16; radix++ {
			for _, value := range values {
				digits := encoding.NewDigits(value, radix).Collect()

				for _, digit := range digits {
					if digit >= radix {
						t.Fatalf(
							"Digit out of range\nwant:<%d\nhave:%d (value %d)",
							radix, digit, value,
						)
					}
				}

				if have := compose(digits, radix); have != value {
					t.Errorf(
						"Recomposed value mismatch (radix %d)\nwant:%d\nhave:%d",
						radix, value, have,
					)
				}
			}
		}
	})

	t.Run("Tally", func(t *testing.T) {
		for _, value := range []uint64{0, 1, 5, 37} {
			digits := encoding.NewDigits(value, 1).Collect()

			if uint64(len(digits)) != value {
				t.Fatalf(
					"Tally length mismatch\nwant:%d\nhave:%d",
					value, len(digits),
				)
			}

			if have := compose(digits, 1); have != value {
				t.Errorf("Tally mismatch\nwant:%d\nhave:%d", value, have)
			}
		}
	})

	t.Run("Modes", func(t *testing.T) {
		digits := encoding.NewDigits[uint16](210, 10)
		want := []uint16{0, 1, 2}

		for i, expected := range want {
			have, ok := digits.Next()

			if !ok || have != expected {
				t.Fatalf("Digit %d mismatch\nwant:%d\nhave:%d", i, expected, have)
			}
		}

		if _, ok := digits.Next(); ok {
			t.Error("Expected digit sequence to be exhausted")
		}
	})

	t.Run("Radix Zero", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Expected radix 0 to panic")
			}
		}()

		encoding.NewDigits[uint8](10, 0)
	})
}
