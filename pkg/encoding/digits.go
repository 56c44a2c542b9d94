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

package encoding

// Unsigned is satisfied by every unsigned integer type a digit sequence can
// be extracted from.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Digits walks the digits of a value from least to most significant. A
// sequence cannot be rewound; construct a new one to start over.
type Digits[T Unsigned] struct {
	current T
	radix   T
}

// Radix 1 is treated as tally notation: a value n yields n digits of 1.
func NewDigits[T Unsigned](value T, radix T) *Digits[T] {
	if radix == 0 {
		panic("Attempted to use radix 0, which is undefined")
	}

	return &Digits[T]{current: value, radix: radix}
}

// Next returns the next digit, or false once the value is exhausted.
func (d *Digits[T]) Next() (T, bool) {
	if d.current == 0 {
		return 0, false
	}

	if d.radix == 1 {
		d.current--
		return 1, true
	}

	digit := d.current % d.radix
	d.current /= d.radix

	return digit, true
}

// Collect drains the remaining digits into a slice.
func (d *Digits[T]) Collect() []T {
	var result []T

	for digit, ok := d.Next(); ok; digit, ok = d.Next() {
		result = append(result, digit)
	}

	return result
}
