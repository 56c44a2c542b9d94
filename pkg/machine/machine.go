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

	"github.com/holiman/uint256"
	"github.com/tliron/commonlog"

	"github.com/lassandro/intcode/pkg/encoding"
)

var log = commonlog.GetLogger("intcode.machine")

// New parses a comma separated program and queues the initial input.
func New(text string, input []int64) (*Machine, error) {
	program, err := encoding.ParseProgram(text)

	if err != nil {
		return nil, err
	}

	words := make([]uint256.Int, len(input))
	for i, value := range input {
		words[i] = encoding.FromInt64(value)
	}

	return NewFromWords(program, words), nil
}

func NewFromWords(program []uint256.Int, input []uint256.Int) *Machine {
	mc := &Machine{
		image:   make([]uint256.Int, len(program)),
		initial: make([]uint256.Int, len(input)),
	}

	copy(mc.image, program)
	copy(mc.initial, input)
	mc.Reset()

	return mc
}

// Reset restores the loaded program image and initial input. The input mode
// and debugger are kept.
func (mc *Machine) Reset() {
	mc.State = MachineState{
		Memory: NewMemory(mc.image),
		Input:  append([]uint256.Int(nil), mc.initial...),
	}
	mc.fault = nil
}

// Clone returns an independent copy of the machine. The debugger, if any, is
// shared with the copy.
func (mc *Machine) Clone() *Machine {
	clone := *mc
	clone.State.Memory = mc.State.Memory.Clone()
	clone.State.Input = append([]uint256.Int(nil), mc.State.Input...)
	clone.State.Output = append([]uint256.Int(nil), mc.State.Output...)
	clone.accesses = nil
	return &clone
}

// WaitOnInput makes Run return STATUS_WAITING on an empty input queue
// instead of failing with ErrInputUnderflow.
func (mc *Machine) WaitOnInput() {
	mc.wait = true
}

func (mc *Machine) WaitsOnInput() bool {
	return mc.wait
}

func (mc *Machine) Halted() bool {
	return mc.State.Halted
}

// Fault returns the error that stopped the machine, if any.
func (mc *Machine) Fault() error {
	return mc.fault
}

func (mc *Machine) AddInput(values ...int64) {
	for _, value := range values {
		mc.State.Input = append(mc.State.Input, encoding.FromInt64(value))
	}
}

func (mc *Machine) AddInputWord(value uint256.Int) {
	mc.State.Input = append(mc.State.Input, value)
}

// Peek returns the low 64 bits of a memory cell as a signed value. Cells
// past the end of memory read as zero and do not grow it.
func (mc *Machine) Peek(addr int) int64 {
	word := mc.State.Memory.Peek(addr)
	return int64(word.Uint64())
}

func (mc *Machine) PeekWord(addr int) uint256.Int {
	return mc.State.Memory.Peek(addr)
}

func (mc *Machine) Poke(addr int, value int64) {
	word := encoding.FromInt64(value)
	mc.State.Memory.Write(addr, &word)
}

func (mc *Machine) PokeWord(addr int, value uint256.Int) {
	mc.State.Memory.Write(addr, &value)
}

// Output returns the low 64 bits of every output value, oldest first.
func (mc *Machine) Output() []int64 {
	result := make([]int64, len(mc.State.Output))

	for i := range mc.State.Output {
		result[i] = int64(mc.State.Output[i].Uint64())
	}

	return result
}

func (mc *Machine) OutputWords() []uint256.Int {
	return append([]uint256.Int(nil), mc.State.Output...)
}

func (mc *Machine) LastOutput() (int64, bool) {
	if len(mc.State.Output) == 0 {
		return 0, false
	}

	return int64(mc.State.Output[len(mc.State.Output)-1].Uint64()), true
}

// TakeOutput returns the output log and empties it.
func (mc *Machine) TakeOutput() []int64 {
	result := mc.Output()
	mc.State.Output = nil
	return result
}

func (mc *Machine) TakeOutputWords() []uint256.Int {
	result := mc.State.Output
	mc.State.Output = nil
	return result
}

// Run executes until the program halts or, in wait mode, blocks on input.
func (mc *Machine) Run() (Status, error) {
	for {
		status, err := mc.Step()

		if err != nil || status != STATUS_RUNNING {
			return status, err
		}
	}
}

// Step executes a single instruction. An error leaves the machine faulted;
// every later call returns it again without executing anything.
func (mc *Machine) Step() (Status, error) {
	if mc.fault != nil {
		return STATUS_HALTED, fmt.Errorf("%w: %w", ErrFaulted, mc.fault)
	}

	if mc.State.Halted {
		return STATUS_HALTED, nil
	}

	inst, err := Decode(&mc.State.Memory, mc.State.Program)

	if err != nil {
		return mc.failed(err)
	}

	mc.accesses = mc.accesses[:0]
	status, err := mc.execute(&inst)

	if err != nil {
		return mc.failed(&ExecError{Instruction: inst, Err: err})
	}

	if mc.Debugger != nil {
		mc.notify()
	}

	switch status {
	case STATUS_WAITING:
		log.Debugf("waiting for input at %d", mc.State.Program)
	case STATUS_HALTED:
		log.Debugf("halted at %d", mc.State.Program)
	}

	if mc.Debugger != nil && status == STATUS_RUNNING {
		mc.Debugger.Step(mc)
	}

	return status, nil
}

// notify hands the finished instruction's memory accesses to the debugger. The
// pointer has already advanced, so a hook may move it or reset the machine.
func (mc *Machine) notify() {
	accesses := mc.accesses
	mc.accesses = nil

	for _, a := range accesses {
		if a.write {
			mc.Debugger.Write(a.addr, mc)
		} else {
			mc.Debugger.Read(a.addr, mc)
		}
	}
}

func (mc *Machine) failed(err error) (Status, error) {
	log.Debugf("fault: %v", err)
	mc.fault = err
	return STATUS_HALTED, err
}

func (mc *Machine) execute(inst *Instruction) (Status, error) {
	state := &mc.State
	next := state.Program + inst.Size()

	switch inst.Op {
	// ADD  |op|a|b|dest|  dest = a + b
	// MUL  |op|a|b|dest|  dest = a * b
	// LT   |op|a|b|dest|  dest = a < b
	// EQ   |op|a|b|dest|  dest = a == b
	case OP_ADD, OP_MUL, OP_LT, OP_EQ:
		a, err := mc.load(&inst.Params[0])

		if err != nil {
			return STATUS_HALTED, err
		}

		b, err := mc.load(&inst.Params[1])

		if err != nil {
			return STATUS_HALTED, err
		}

		var result uint256.Int

		switch inst.Op {
		case OP_ADD:
			result.Add(&a, &b)
		case OP_MUL:
			result.Mul(&a, &b)
		case OP_LT:
			if a.Slt(&b) {
				result.SetOne()
			}
		case OP_EQ:
			if a.Eq(&b) {
				result.SetOne()
			}
		}

		if err := mc.store(&inst.Params[2], &result); err != nil {
			return STATUS_HALTED, err
		}

	// IN   |op|dest|  dest = next input
	case OP_IN:
		if len(state.Input) == 0 {
			if mc.wait {
				return STATUS_WAITING, nil
			}

			return STATUS_HALTED, ErrInputUnderflow
		}

		value := state.Input[0]

		if err := mc.store(&inst.Params[0], &value); err != nil {
			return STATUS_HALTED, err
		}

		state.Input = state.Input[1:]

	// OUT  |op|a|  output a
	case OP_OUT:
		value, err := mc.load(&inst.Params[0])

		if err != nil {
			return STATUS_HALTED, err
		}

		state.Output = append(state.Output, value)

	// JT   |op|cond|target|  jump when cond != 0
	// JF   |op|cond|target|  jump when cond == 0
	case OP_JT, OP_JF:
		cond, err := mc.load(&inst.Params[0])

		if err != nil {
			return STATUS_HALTED, err
		}

		if cond.IsZero() == (inst.Op == OP_JF) {
			target, err := mc.load(&inst.Params[1])

			if err != nil {
				return STATUS_HALTED, err
			}

			if next, err = toAddress(&target); err != nil {
				return STATUS_HALTED, err
			}
		}

	// ARB  |op|a|  relative base += a
	case OP_ARB:
		value, err := mc.load(&inst.Params[0])

		if err != nil {
			return STATUS_HALTED, err
		}

		state.Relative.Add(&state.Relative, &value)

	case OP_HALT:
		state.Halted = true
		return STATUS_HALTED, nil
	}

	state.Program = next

	return STATUS_RUNNING, nil
}

// address resolves the memory cell a positional or relative operand names.
func (mc *Machine) address(operand *Operand) (int, error) {
	switch operand.Mode {
	case MODE_POSITIONAL:
		return toAddress(&operand.Value)
	case MODE_RELATIVE:
		var addr uint256.Int
		addr.Add(&mc.State.Relative, &operand.Value)
		return toAddress(&addr)
	case MODE_IMMEDIATE:
		return 0, ErrImmediateDestination
	default:
		return 0, ErrInvalidMode
	}
}

func (mc *Machine) load(operand *Operand) (uint256.Int, error) {
	if operand.Mode == MODE_IMMEDIATE {
		return operand.Value, nil
	}

	addr, err := mc.address(operand)

	if err != nil {
		return uint256.Int{}, err
	}

	value := mc.State.Memory.Read(addr)

	if mc.Debugger != nil {
		mc.accesses = append(mc.accesses, access{addr, false})
	}

	return value, nil
}

func (mc *Machine) store(operand *Operand, value *uint256.Int) error {
	addr, err := mc.address(operand)

	if err != nil {
		return err
	}

	mc.State.Memory.Write(addr, value)

	if mc.Debugger != nil {
		mc.accesses = append(mc.accesses, access{addr, true})
	}

	return nil
}

func toAddress(word *uint256.Int) (int, error) {
	if word.Sign() < 0 || !word.IsUint64() || word.Uint64() > MAX_ADDRESS {
		return 0, ErrInvalidAddress
	}

	return int(word.Uint64()), nil
}
