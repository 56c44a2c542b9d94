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
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/holiman/uint256"

	"github.com/lassandro/intcode/pkg/encoding"
	"github.com/lassandro/intcode/pkg/machine"
)

// A feeder supplies input whenever the machine blocks on an empty queue.
type feeder interface {
	Next() ([]int64, error)
}

type lineFeeder struct {
	scanner *bufio.Scanner
	ascii   bool
}

func newLineFeeder(scanner *bufio.Scanner, ascii bool) *lineFeeder {
	return &lineFeeder{scanner: scanner, ascii: ascii}
}

// Next reads one line: comma separated integers, or in ASCII mode the
// line's characters followed by a newline.
func (f *lineFeeder) Next() ([]int64, error) {
	if !f.scanner.Scan() {
		if err := f.scanner.Err(); err != nil {
			return nil, err
		}

		return nil, io.EOF
	}

	line := f.scanner.Text()

	if !f.ascii {
		return encoding.ParseInts(line)
	}

	values := make([]int64, 0, len(line)+1)

	for _, r := range line {
		values = append(values, int64(r))
	}

	return append(values, '\n'), nil
}

type keyFeeder struct {
	reader *bufio.Reader
}

func newKeyFeeder(r io.Reader) *keyFeeder {
	return &keyFeeder{reader: bufio.NewReader(r)}
}

func (f *keyFeeder) Next() ([]int64, error) {
	key, err := f.reader.ReadByte()

	if err != nil {
		return nil, err
	}

	// Ctrl-D
	if key == 0x04 {
		return nil, io.EOF
	}

	return []int64{int64(key)}, nil
}

func writeOutput(w io.Writer, words []uint256.Int, ascii bool) {
	for i := range words {
		if ascii && words[i].IsUint64() && words[i].Uint64() < 0x80 {
			fmt.Fprintf(w, "%c", rune(words[i].Uint64()))
		} else {
			fmt.Fprintln(w, encoding.FormatWord(&words[i]))
		}
	}
}

// execute steps the machine until it halts, printing output as it appears
// and asking in for more input whenever the machine waits.
func execute(mc *machine.Machine, in feeder, out io.Writer, ascii bool) int {
	for !shouldexit {
		status, err := mc.Step()

		if len(mc.State.Output) > 0 {
			writeOutput(out, mc.TakeOutputWords(), ascii)
		}

		if err != nil {
			log.Println(err)
			return 1
		}

		switch status {
		case machine.STATUS_HALTED:
			return 0

		case machine.STATUS_WAITING:
			values, err := in.Next()

			if errors.Is(err, io.EOF) {
				log.Println("Input closed while the program was waiting")
				return 0
			} else if err != nil {
				log.Println(err)
				return 1
			}

			mc.AddInput(values...)
		}
	}

	return 0
}
