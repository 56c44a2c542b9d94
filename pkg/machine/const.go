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

type Opcode uint8

const (
	OP_ADD  Opcode = 1
	OP_MUL  Opcode = 2
	OP_IN   Opcode = 3
	OP_OUT  Opcode = 4
	OP_JT   Opcode = 5
	OP_JF   Opcode = 6
	OP_LT   Opcode = 7
	OP_EQ   Opcode = 8
	OP_ARB  Opcode = 9
	OP_HALT Opcode = 99
)

type Mode uint8

const (
	MODE_POSITIONAL Mode = 0
	MODE_IMMEDIATE  Mode = 1
	MODE_RELATIVE   Mode = 2
)

type Status uint8

const (
	STATUS_RUNNING Status = iota
	STATUS_WAITING
	STATUS_HALTED
)

// Largest address a program may compute. Memory grows on demand up to here.
const MAX_ADDRESS = 1<<31 - 1

var mnemonics = map[Opcode]string{
	OP_ADD:  "ADD",
	OP_MUL:  "MUL",
	OP_IN:   "IN",
	OP_OUT:  "OUT",
	OP_JT:   "JT",
	OP_JF:   "JF",
	OP_LT:   "LT",
	OP_EQ:   "EQ",
	OP_ARB:  "ARB",
	OP_HALT: "HALT",
}

// Number of operands following each opcode word
var operandCounts = map[Opcode]int{
	OP_ADD:  3,
	OP_MUL:  3,
	OP_IN:   1,
	OP_OUT:  1,
	OP_JT:   2,
	OP_JF:   2,
	OP_LT:   3,
	OP_EQ:   3,
	OP_ARB:  1,
	OP_HALT: 0,
}

// OperandCount reports how many operands follow op, and whether op exists.
func OperandCount(op Opcode) (int, bool) {
	count, ok := operandCounts[op]
	return count, ok
}
