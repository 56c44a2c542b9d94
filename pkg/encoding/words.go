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

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
)

var ErrWordRange = errors.New("Value out of word range")

// Words are 256-bit two's complement integers. The helpers below move them
// in and out of Go's native signed types and decimal text.

func FromInt64(value int64) uint256.Int {
	var word uint256.Int

	if value < 0 {
		// uint64(-MinInt64) still yields the right magnitude
		word.SetUint64(uint64(-value))
		word.Neg(&word)
	} else {
		word.SetUint64(uint64(value))
	}

	return word
}

// ToInt64 reports false when the word does not fit in an int64.
func ToInt64(word *uint256.Int) (int64, bool) {
	if word.Sign() < 0 {
		var abs uint256.Int
		abs.Neg(word)

		if !abs.IsUint64() || abs.Uint64() > 1<<63 {
			return 0, false
		}

		return -int64(abs.Uint64()), true
	}

	if !word.IsUint64() || word.Uint64() > math.MaxInt64 {
		return 0, false
	}

	return int64(word.Uint64()), true
}

func FormatWord(word *uint256.Int) string {
	if word.Sign() < 0 {
		var abs uint256.Int
		abs.Neg(word)
		return "-" + abs.Dec()
	}

	return word.Dec()
}

// Decodes a signed base-10 string into a word
func ParseWord(s string) (uint256.Int, error) {
	if value, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromInt64(value), nil
	}

	var word uint256.Int
	var value big.Int

	if _, ok := value.SetString(s, 10); !ok {
		return word, strconv.ErrSyntax
	}

	negative := value.Sign() < 0
	value.Abs(&value)

	if value.BitLen() > 255 {
		return word, ErrWordRange
	}

	word.SetFromBig(&value)

	if negative {
		word.Neg(&word)
	}

	return word, nil
}

// Decodes an integer string in the formats: 0x1F, x1F, #123, 123, -123
func DecodeInt(s string) (int64, error) {
	s = strings.TrimSpace(s)

	if i := strings.Index(s, "#"); i == 0 {
		s = s[1:]
	}

	if i := strings.IndexAny(s, "xX"); i == 0 {
		s = "0" + s
	}

	return strconv.ParseInt(s, 0, 64)
}
