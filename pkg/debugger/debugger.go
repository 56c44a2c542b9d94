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

package debugger

import (
	"fmt"
	"io"
	"os"

	"github.com/lassandro/intcode/pkg/encoding"
	"github.com/lassandro/intcode/pkg/machine"
)

// Interrupt stops the machine before its next instruction. Unlike setting
// Break, it is safe to call from another goroutine, such as a signal handler.
func (dbg *Debugger) Interrupt() {
	dbg.interrupted.Store(true)
}

func (dbg *Debugger) Step(mc *machine.Machine) {
	if dbg.interrupted.Swap(false) || dbg.Break {
		dbg.HandleBreak(dbg, mc)
		return
	}

	for _, breakpoint := range dbg.Breakpoints {
		if mc.State.Program == breakpoint.Addr {
			dbg.HandleBreak(dbg, mc)
			break
		}
	}
}

func (dbg *Debugger) Read(addr int, mc *machine.Machine) {
	for _, watchpoint := range dbg.Watchpoints {
		if watchpoint.Type == WriteWatch {
			continue
		}

		if addr == watchpoint.Addr {
			dbg.HandleRead(addr, dbg, mc)
			break
		}
	}
}

func (dbg *Debugger) Write(addr int, mc *machine.Machine) {
	for _, watchpoint := range dbg.Watchpoints {
		if watchpoint.Type == ReadWatch {
			continue
		}

		if addr == watchpoint.Addr {
			dbg.HandleWrite(addr, dbg, mc)
			break
		}
	}
}

// AddBreakpoint reports false when one already exists at addr.
func (dbg *Debugger) AddBreakpoint(addr int) bool {
	for _, breakpoint := range dbg.Breakpoints {
		if breakpoint.Addr == addr {
			return false
		}
	}

	dbg.Breakpoints = append(dbg.Breakpoints, Breakpoint{addr})
	return true
}

// AddWatchpoint reports false when an identical one already exists.
func (dbg *Debugger) AddWatchpoint(addr int, wtype WatchpointType) bool {
	for _, watchpoint := range dbg.Watchpoints {
		if watchpoint.Addr == addr && watchpoint.Type == wtype {
			return false
		}
	}

	dbg.Watchpoints = append(dbg.Watchpoints, Watchpoint{addr, wtype})
	return true
}

func (dbg *Debugger) out() io.Writer {
	if dbg.Out == nil {
		return os.Stdout
	}

	return dbg.Out
}

// decodeAt decodes the instruction at addr only when it lies wholly inside
// memory and its word encodes back unchanged.
func decodeAt(mem *machine.Memory, addr int) (machine.Instruction, bool) {
	word := mem.Peek(addr)

	if !word.IsUint64() {
		return machine.Instruction{}, false
	}

	count, ok := machine.OperandCount(machine.Opcode(word.Uint64() % 100))

	if !ok || addr+1+count > mem.Len() {
		return machine.Instruction{}, false
	}

	inst, err := machine.Decode(mem, addr)

	if err != nil || inst.Word() != word.Uint64() {
		return machine.Instruction{}, false
	}

	return inst, true
}

// Disassemble decodes up to count instructions starting at addr, stopping at
// the end of memory. Words that do not decode are listed as DATA.
func Disassemble(mem *machine.Memory, addr int, count int) []Line {
	var lines []Line

	for i := 0; i < count && addr >= 0 && addr < mem.Len(); i++ {
		inst, ok := decodeAt(mem, addr)

		if !ok {
			word := mem.Peek(addr)

			lines = append(lines, Line{
				Addr: addr,
				Size: 1,
				Text: "DATA " + encoding.FormatWord(&word),
			})
			addr++
			continue
		}

		size := inst.Size()
		if size == 0 {
			size = 1
		}

		lines = append(lines, Line{Addr: addr, Size: size, Text: inst.String()})
		addr += size
	}

	return lines
}

// PrintSource prints count disassembled instructions from addr, marking the
// instruction pointer.
func (dbg *Debugger) PrintSource(mc *machine.Machine, addr int, count int) {
	out := dbg.out()

	for _, line := range Disassemble(&mc.State.Memory, addr, count) {
		if line.Addr == mc.State.Program {
			fmt.Fprintf(out, "\033[1m[%06d]\033[0m > %s\n", line.Addr, line.Text)
		} else {
			fmt.Fprintf(out, "\033[1m[%06d]\033[0m   %s\n", line.Addr, line.Text)
		}
	}
}

func (dbg *Debugger) PrintMem(mc *machine.Machine, addr, count int) {
	out := dbg.out()

	for i := addr; i < addr+count; i++ {
		if i == addr {
			fmt.Fprintf(out, "\033[1m[%06d]\033[0m ", i)
		} else if (i-addr)%4 == 0 {
			fmt.Fprintln(out)
			fmt.Fprintf(out, "\033[1m[%06d]\033[0m ", i)
		}

		word := mc.State.Memory.Peek(i)
		result := encoding.FormatWord(&word)

		if word.IsZero() {
			fmt.Fprintf(out, "\033[1;30m%s\033[0m ", result)
		} else {
			fmt.Fprintf(out, "%s ", result)
		}
	}

	fmt.Fprintln(out)
}
