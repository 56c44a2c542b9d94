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

package machine

import (
	"github.com/lassandro/intcode/pkg/encoding"
)

// Decode reads the instruction starting at addr. Operand words past the end
// of memory grow it like any other read.
func Decode(mem *Memory, addr int) (Instruction, error) {
	word := mem.Read(addr)
	inst := Instruction{Addr: addr}

	// |mode k ... mode 1|op op| decimal digits, least significant first
	if word.Sign() < 0 || !word.IsUint64() {
		return inst, &DecodeError{Addr: addr, Word: word, Err: ErrUnknownOpcode}
	}

	raw := word.Uint64()
	inst.Op = Opcode(raw % 100)

	count, ok := operandCounts[inst.Op]

	if !ok {
		return inst, &DecodeError{Addr: addr, Word: word, Err: ErrUnknownOpcode}
	}

	modes := encoding.NewDigits(raw/100, 10)

	for k := 0; k < count; k++ {
		// Missing digits read as positional
		digit, _ := modes.Next()

		if digit > uint64(MODE_RELATIVE) {
			return inst, &DecodeError{Addr: addr, Word: word, Err: ErrInvalidMode}
		}

		inst.Params[k] = Operand{
			Mode:  Mode(digit),
			Value: mem.Read(addr + 1 + k),
		}
	}

	inst.Count = count

	return inst, nil
}
