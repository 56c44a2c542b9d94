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
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/lassandro/intcode/pkg/debugger"
	"github.com/lassandro/intcode/pkg/encoding"
	"github.com/lassandro/intcode/pkg/machine"
)

var lastcmd []string

func decodeAddr(s string) (int, error) {
	value, err := encoding.DecodeInt(s)

	if err != nil {
		return 0, err
	}

	if value < 0 || value > machine.MAX_ADDRESS {
		return 0, machine.ErrInvalidAddress
	}

	return int(value), nil
}

func debugBreak(dbg *debugger.Debugger, args []string) {
	const usage = "break [add|list|remove|clear]"

	if len(args) == 0 {
		args = append(args, "l")
	}

	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "a", "add":
		const usage = "break add [addr]"

		if len(args) != 1 {
			log.Println(usage)
			return
		}

		addr, err := decodeAddr(args[0])

		if err != nil {
			log.Println(err)
			return
		}

		if dbg.AddBreakpoint(addr) {
			fmt.Printf("Breakpoint added [%d]\n", addr)
		}

	case "l", "ls", "list":
		var fmtstring string
		{
			digits := math.Floor(math.Log10(float64(len(dbg.Breakpoints) + 1)))
			fmtstring = fmt.Sprintf("#%%0%dd: %%d\n", int64(digits)+1)
		}

		for i, breakpoint := range dbg.Breakpoints {
			fmt.Printf(fmtstring, i, breakpoint.Addr)
		}

	case "r", "rm", "remove":
		const usage = "break remove [#]"

		if len(args) != 1 {
			log.Println(usage)
			return
		}

		i, err := strconv.ParseInt(args[0], 10, 64)

		if err != nil {
			log.Println(err)
			return
		}

		if i < 0 || i >= int64(len(dbg.Breakpoints)) {
			log.Println("Invalid breakpoint number")
			return
		}

		dbg.Breakpoints[i] = dbg.Breakpoints[len(dbg.Breakpoints)-1]
		dbg.Breakpoints = dbg.Breakpoints[:len(dbg.Breakpoints)-1]
		fmt.Printf("Breakpoint removed [%d]\n", i)

	case "clear":
		dbg.Breakpoints = make([]debugger.Breakpoint, 0)
		fmt.Println("Breakpoints reset")

	default:
		log.Printf("break: '%s' is not a valid command\n", cmd)
		log.Println(usage)
	}
}

func debugWatch(dbg *debugger.Debugger, args []string) {
	const usage = "watch [add|list|rm|clear]"

	if len(args) == 0 {
		log.Println(usage)
		return
	}

	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "a", "add":
		const usage = "watch add [addr] [read|write|readwrite]"

		if len(args) != 2 {
			log.Println(usage)
			return
		}

		addr, err := decodeAddr(args[0])

		if err != nil {
			log.Println(err)
			return
		}

		var wtype debugger.WatchpointType

		switch args[1] {
		case "r", "read":
			wtype = debugger.ReadWatch
		case "w", "write":
			wtype = debugger.WriteWatch
		case "rw", "rwrite", "readwrite":
			wtype = debugger.ReadWriteWatch
		default:
			log.Println(usage)
			return
		}

		if dbg.AddWatchpoint(addr, wtype) {
			fmt.Printf("Watchpoint added [%d] (%s)\n", addr, wtype)
		}

	case "l", "ls", "list":
		var fmtstring string
		{
			digits := math.Floor(math.Log10(float64(len(dbg.Watchpoints) + 1)))
			fmtstring = fmt.Sprintf("#%%0%dd: %%d %%s\n", int64(digits)+1)
		}

		for i, watchpoint := range dbg.Watchpoints {
			fmt.Printf(fmtstring, i, watchpoint.Addr, watchpoint.Type)
		}

	case "r", "rm", "remove":
		const usage = "watch rm [#]"

		if len(args) != 1 {
			log.Println(usage)
			return
		}

		i, err := strconv.ParseInt(args[0], 10, 64)

		if err != nil {
			log.Println(err)
			return
		}

		if i < 0 || i >= int64(len(dbg.Watchpoints)) {
			log.Println("Invalid watchpoint number")
			return
		}

		dbg.Watchpoints[i] = dbg.Watchpoints[len(dbg.Watchpoints)-1]
		dbg.Watchpoints = dbg.Watchpoints[:len(dbg.Watchpoints)-1]
		fmt.Printf("Watchpoint removed [%d]\n", i)

	case "clear":
		dbg.Watchpoints = make([]debugger.Watchpoint, 0)
		fmt.Println("Watchpoints reset")

	default:
		log.Printf("watch: '%s' is not a valid command\n", cmd)
	}
}

func debugReg(mc *machine.Machine, args []string) {
	const usage = "register [ip|rb] [#]"

	if len(args) > 0 {
		if len(args) != 2 {
			log.Println(usage)
			return
		}

		value, err := encoding.DecodeInt(args[1])

		if err != nil {
			log.Println(err)
			return
		}

		args[0] = strings.ToUpper(args[0])

		switch args[0] {
		case "IP":
			addr, err := decodeAddr(args[1])

			if err != nil {
				log.Println(err)
				return
			}

			mc.State.Program = addr
		case "RB":
			mc.State.Relative = encoding.FromInt64(value)
		default:
			log.Println("Invalid register")
			return
		}

		fmt.Printf("\033[1m%s:\033[0m %d\n", args[0], value)
	} else {
		fmt.Printf(
			"\033[1mIP:\033[0m %d\t\033[1mRB:\033[0m %s\n",
			mc.State.Program,
			encoding.FormatWord(&mc.State.Relative),
		)
		fmt.Printf(
			"\033[1mIN:\033[0m %d queued\t\033[1mOUT:\033[0m %d pending\t"+
				"\033[1mMEM:\033[0m %d words\n",
			len(mc.State.Input),
			len(mc.State.Output),
			mc.State.Memory.Len(),
		)
	}
}

// Parses the optional [addr] [#] pair shared by source and memory. A lone
// decimal argument is a count from the instruction pointer.
func debugRange(mc *machine.Machine, args []string, size int) (int, int, bool) {
	addr := mc.State.Program

	if len(args) > 0 {
		value, err := decodeAddr(args[0])

		if err != nil {
			log.Println(err)
			return 0, 0, false
		}

		if len(args) == 1 && !strings.ContainsAny(args[0], "xX#") {
			size = value
		} else {
			addr = value
		}
	}

	if len(args) > 1 {
		value, err := strconv.ParseInt(args[1], 10, 32)

		if err != nil {
			log.Println(err)
			return 0, 0, false
		}

		size = int(value)
	}

	return addr, size, true
}

func debugSource(dbg *debugger.Debugger, mc *machine.Machine, args []string) {
	const usage = "source [0x####|#addr] [#]"

	if len(args) > 2 {
		log.Println(usage)
		return
	}

	if addr, size, ok := debugRange(mc, args, 3); ok {
		dbg.PrintSource(mc, addr, size)
	}
}

func debugJump(mc *machine.Machine, args []string) {
	const usage = "jump [addr]"

	if len(args) != 1 {
		fmt.Println(usage)
		return
	}

	addr, err := decodeAddr(args[0])

	if err != nil {
		log.Println(err)
		return
	}

	mc.State.Program = addr
	fmt.Printf("\033[1mIP:\033[0m %d\n", addr)
}

func debugMemory(dbg *debugger.Debugger, mc *machine.Machine, args []string) {
	const usage = "memory [0x####|#addr] [#]"

	if len(args) > 2 {
		log.Println(usage)
		return
	}

	if addr, size, ok := debugRange(mc, args, 1); ok {
		dbg.PrintMem(mc, addr, size)
	}
}

func debugSet(dbg *debugger.Debugger, mc *machine.Machine, args []string) {
	const usage = "set [addr] [value]"

	if len(args) != 2 {
		log.Println(usage)
		return
	}

	addr, err := decodeAddr(args[0])

	if err != nil {
		log.Println(err)
		return
	}

	value, err := encoding.ParseWord(args[1])

	if err != nil {
		log.Println(err)
		return
	}

	mc.PokeWord(addr, value)
	dbg.PrintMem(mc, addr, 1)
}

func debugInput(mc *machine.Machine, args []string) {
	const usage = "input [value,value...]"

	if len(args) == 0 {
		log.Println(usage)
		return
	}

	values, err := encoding.ParseInts(strings.Join(args, ","))

	if err != nil {
		log.Println(err)
		return
	}

	mc.AddInput(values...)
	fmt.Printf("\033[1mIN:\033[0m %d queued\n", len(mc.State.Input))
}

func debugOutput(mc *machine.Machine) {
	for _, value := range mc.State.Output {
		fmt.Println(encoding.FormatWord(&value))
	}
}

func debugREPL(dbg *debugger.Debugger, mc *machine.Machine) {
	if termActive {
		exitRawTerm()
		defer enterRawTerm()
	}

	for {
		fmt.Print("\033[1;30m(dbg)\033[0m ")

		if !stdin.Scan() {
			fmt.Println()
			shouldexit = true
			return
		}

		args := strings.Fields(stdin.Text())

		if len(args) == 0 {
			if len(lastcmd) == 0 {
				continue
			}
			args = lastcmd
		} else {
			lastcmd = make([]string, len(args))
			copy(lastcmd, args)
		}

		cmd := args[0]
		args = args[1:]

		switch cmd {
		case "b", "bp", "break", "breakpoint":
			debugBreak(dbg, args)

		case "w", "wp", "watch", "watchpoint":
			debugWatch(dbg, args)

		case "r", "reg", "register", "registers":
			debugReg(mc, args)

		case "s", "src", "source":
			debugSource(dbg, mc, args)

		case "j", "jmp", "jump":
			debugJump(mc, args)

		case "m", "mem", "memory":
			debugMemory(dbg, mc, args)

		case "set":
			debugSet(dbg, mc, args)

		case "i", "in", "input":
			debugInput(mc, args)

		case "o", "out", "output":
			debugOutput(mc)

		case "c", "continue":
			dbg.Break = false
			return

		case "n", "next":
			dbg.Break = true
			return

		case "q", "quit", "exit":
			shouldexit = true
			return

		case "clear":
			fmt.Print("\033[H\033[2J")

		case "reset":
			mc.Reset()
			fmt.Println("Machine reset")

		default:
			fmt.Printf("error: '%s' is not a valid command\n", cmd)
		}
	}
}

func handleBreak(dbg *debugger.Debugger, mc *machine.Machine) {
	if !dbg.Break {
		fmt.Println()
		fmt.Println("Program stopped")
	}
	dbg.PrintSource(mc, mc.State.Program, 8)
	debugREPL(dbg, mc)
}

func handleRead(addr int, dbg *debugger.Debugger, mc *machine.Machine) {
	fmt.Println()
	fmt.Println("Program stopped")
	dbg.PrintMem(mc, addr, 1)
	debugREPL(dbg, mc)
}

func handleWrite(addr int, dbg *debugger.Debugger, mc *machine.Machine) {
	fmt.Println()
	fmt.Println("Program stopped")
	dbg.PrintMem(mc, addr, 1)
	debugREPL(dbg, mc)
}
