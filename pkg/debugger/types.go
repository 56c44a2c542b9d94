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
	"io"
	"sync/atomic"

	"github.com/lassandro/intcode/pkg/machine"
)

type WatchpointType uint

const (
	ReadWatch WatchpointType = iota
	WriteWatch
	ReadWriteWatch
)

type Watchpoint struct {
	Addr int
	Type WatchpointType
}

type Breakpoint struct {
	Addr int
}

// Line is one disassembled instruction, or a DATA word when the memory at
// Addr does not decode.
type Line struct {
	Addr int
	Size int
	Text string
}

type Debugger struct {
	Break bool

	Breakpoints []Breakpoint
	Watchpoints []Watchpoint

	// Destination for PrintSource and PrintMem, stdout when nil
	Out io.Writer

	HandleBreak func(*Debugger, *machine.Machine)
	HandleRead  func(int, *Debugger, *machine.Machine)
	HandleWrite func(int, *Debugger, *machine.Machine)

	// Set from other goroutines by Interrupt
	interrupted atomic.Bool
}

func (t WatchpointType) String() string {
	switch t {
	case ReadWatch:
		return "read"
	case WriteWatch:
		return "write"
	case ReadWriteWatch:
		return "readwrite"
	default:
		return "unknown"
	}
}
