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
	"fmt"
	"strings"

	"github.com/holiman/uint256"

	"github.com/lassandro/intcode/pkg/encoding"
)

type Operand struct {
	Mode  Mode
	Value uint256.Int
}

// Instructions carry up to three operands; Count says how many are in use.
type Instruction struct {
	Op     Opcode
	Addr   int
	Count  int
	Params [3]Operand
}

type MachineState struct {
	Memory   Memory
	Program  int
	Relative uint256.Int
	Input    []uint256.Int
	Output   []uint256.Int
	Halted   bool
}

type MachineDebugger interface {
	Step(mc *Machine)
	Read(addr int, mc *Machine)
	Write(addr int, mc *Machine)
}

type Machine struct {
	State    MachineState
	Debugger MachineDebugger

	image    []uint256.Int
	initial  []uint256.Int
	wait     bool
	fault    error
	accesses []access
}

// A memory access made by the current instruction, reported to the debugger
// once the instruction completes.
type access struct {
	addr  int
	write bool
}

func (s Status) String() string {
	switch s {
	case STATUS_RUNNING:
		return "running"
	case STATUS_WAITING:
		return "waiting"
	case STATUS_HALTED:
		return "halted"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

func (op Opcode) String() string {
	if name, ok := mnemonics[op]; ok {
		return name
	}

	return fmt.Sprintf("OP(%d)", uint8(op))
}

func (o *Operand) String() string {
	value := encoding.FormatWord(&o.Value)

	switch o.Mode {
	case MODE_IMMEDIATE:
		return "#" + value
	case MODE_RELATIVE:
		return "@" + value
	default:
		return "[" + value + "]"
	}
}

// Size is the number of words the instruction occupies. Halt reports 0 since
// the pointer never moves past it.
func (in *Instruction) Size() int {
	if in.Op == OP_HALT {
		return 0
	}

	return 1 + in.Count
}

// Word encodes the opcode and operand modes back into an instruction word.
func (in *Instruction) Word() uint64 {
	word := uint64(in.Op)
	place := uint64(100)

	for i := 0; i < in.Count; i++ {
		word += uint64(in.Params[i].Mode) * place
		place *= 10
	}

	return word
}

// Operands returns the slice of Params in use.
func (in *Instruction) Operands() []Operand {
	return in.Params[:in.Count]
}

func (in *Instruction) String() string {
	var builder strings.Builder

	builder.WriteString(in.Op.String())

	for i := 0; i < in.Count; i++ {
		builder.WriteByte(' ')
		builder.WriteString(in.Params[i].String())
	}

	return builder.String()
}
