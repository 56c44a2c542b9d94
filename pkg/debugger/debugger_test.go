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

package debugger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lassandro/intcode/pkg/debugger"
	"github.com/lassandro/intcode/pkg/machine"
)

func newMachine(t *testing.T, program string) *machine.Machine {
	mc, err := machine.New(program, nil)

	if err != nil {
		t.Fatal(err)
	}

	return mc
}

func TestBreakpoint(t *testing.T) {
	mc := newMachine(t, "1,0,0,0,1,0,0,0,99")

	var stops []int
	var dbg debugger.Debugger
	dbg.HandleBreak = func(dbg *debugger.Debugger, mc *machine.Machine) {
		stops = append(stops, mc.State.Program)
	}

	if !dbg.AddBreakpoint(4) || dbg.AddBreakpoint(4) {
		t.Fatal("Expected exactly one breakpoint to be added")
	}

	mc.Debugger = &dbg

	if _, err := mc.Run(); err != nil {
		t.Fatal(err)
	}

	if len(stops) != 1 || stops[0] != 4 {
		t.Errorf("Breakpoint stops mismatch\nwant:[4]\nhave:%v", stops)
	}

	if have := mc.Peek(0); have != 4 {
		t.Errorf("Memory value mismatch\nwant:4\nhave:%d", have)
	}
}

func TestSingleStep(t *testing.T) {
	mc := newMachine(t, "1,0,0,0,1,0,0,0,99")

	steps := 0
	dbg := debugger.Debugger{Break: true}
	dbg.HandleBreak = func(dbg *debugger.Debugger, mc *machine.Machine) {
		steps++
	}

	mc.Debugger = &dbg
	mc.Run()

	if steps != 2 {
		t.Errorf("Step count mismatch\nwant:2\nhave:%d", steps)
	}
}

func TestInterrupt(t *testing.T) {
	mc := newMachine(t, "1,0,0,0,1,0,0,0,99")

	var stops []int
	var dbg debugger.Debugger
	dbg.HandleBreak = func(dbg *debugger.Debugger, mc *machine.Machine) {
		stops = append(stops, mc.State.Program)
	}

	mc.Debugger = &dbg

	done := make(chan struct{})
	go func() {
		dbg.Interrupt()
		close(done)
	}()
	<-done

	if _, err := mc.Run(); err != nil {
		t.Fatal(err)
	}

	// The interrupt is consumed by the first stop
	if len(stops) != 1 || stops[0] != 4 {
		t.Errorf("Interrupt stops mismatch\nwant:[4]\nhave:%v", stops)
	}
}

func TestWatchpoint(t *testing.T) {
	tests := []struct {
		Name   string
		Type   debugger.WatchpointType
		Reads  int
		Writes int
	}{
		{Name: "Read", Type: debugger.ReadWatch, Reads: 4},
		{Name: "Write", Type: debugger.WriteWatch, Writes: 2},
		{Name: "ReadWrite", Type: debugger.ReadWriteWatch, Reads: 4, Writes: 2},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			mc := newMachine(t, "1,0,0,0,1,0,0,0,99")

			reads, writes := 0, 0

			var dbg debugger.Debugger
			dbg.HandleRead = func(addr int, dbg *debugger.Debugger, mc *machine.Machine) {
				reads++
			}
			dbg.HandleWrite = func(addr int, dbg *debugger.Debugger, mc *machine.Machine) {
				writes++
			}

			dbg.AddWatchpoint(0, test.Type)
			dbg.AddWatchpoint(7, debugger.ReadWriteWatch)
			mc.Debugger = &dbg

			if _, err := mc.Run(); err != nil {
				t.Fatal(err)
			}

			if reads != test.Reads {
				t.Errorf("Read count mismatch\nwant:%d\nhave:%d", test.Reads, reads)
			}

			if writes != test.Writes {
				t.Errorf("Write count mismatch\nwant:%d\nhave:%d", test.Writes, writes)
			}
		})
	}
}

func TestDisassemble(t *testing.T) {
	mc := newMachine(t, "1002,4,3,4,33,109,-1,204,1,99,42")

	lines := debugger.Disassemble(&mc.State.Memory, 0, 6)
	want := []string{
		"MUL [4] #3 [4]",
		"DATA 33",
		"ARB #-1",
		"OUT @1",
		"HALT",
		"DATA 42",
	}

	if len(lines) != len(want) {
		t.Fatalf("Line count mismatch\nwant:%d\nhave:%d", len(want), len(lines))
	}

	for i := range want {
		if lines[i].Text != want[i] {
			t.Errorf("Line %d mismatch\nwant:%s\nhave:%s", i, want[i], lines[i].Text)
		}
	}

	if lines[3].Addr != 7 {
		t.Errorf("Address mismatch\nwant:7\nhave:%d", lines[3].Addr)
	}

	if mc.State.Memory.Len() != 11 {
		t.Errorf("Disassembly grew memory to %d", mc.State.Memory.Len())
	}
}

func TestDisassembleBounds(t *testing.T) {
	tests := []struct {
		Name    string
		Program string
		Addr    int
		Want    []string
	}{
		{
			Name:    "Past End",
			Program: "1,0,0,0,99",
			Addr:    2000000000,
		},
		{
			Name:    "Truncated Operands",
			Program: "99,1105,1",
			Want:    []string{"HALT", "DATA 1105", "DATA 1"},
		},
		{
			Name:    "Unused Mode Digits",
			Program: "11199,1000001,0,0,0",
			Want:    []string{"DATA 11199", "DATA 1000001", "DATA 0", "DATA 0", "DATA 0"},
		},
		{
			Name:    "Negative Start",
			Program: "99",
			Addr:    -1,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			mc := newMachine(t, test.Program)
			size := mc.State.Memory.Len()

			lines := debugger.Disassemble(&mc.State.Memory, test.Addr, 8)

			if len(lines) != len(test.Want) {
				t.Fatalf("Line count mismatch\nwant:%d\nhave:%d", len(test.Want), len(lines))
			}

			for i := range test.Want {
				if lines[i].Text != test.Want[i] {
					t.Errorf("Line %d mismatch\nwant:%s\nhave:%s", i, test.Want[i], lines[i].Text)
				}
			}

			if have := mc.State.Memory.Len(); have != size {
				t.Errorf("Disassembly grew memory\nwant:%d\nhave:%d", size, have)
			}
		})
	}
}

func TestPrint(t *testing.T) {
	mc := newMachine(t, "1,0,0,0,99")

	var out bytes.Buffer
	dbg := debugger.Debugger{Out: &out}

	dbg.PrintSource(mc, 0, 2)

	if have := out.String(); !strings.Contains(have, "> ADD [0] [0] [0]") ||
		!strings.Contains(have, "HALT") {
		t.Errorf("Unexpected source listing\n%s", have)
	}

	out.Reset()
	dbg.PrintMem(mc, 3, 3)

	if have := out.String(); !strings.Contains(have, "99") {
		t.Errorf("Unexpected memory listing\n%s", have)
	}
}
