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
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lassandro/intcode/pkg/debugger"
	"github.com/lassandro/intcode/pkg/encoding"
	"github.com/lassandro/intcode/pkg/machine"
)

var helpvar bool
var outvar string

const usage = "intcode-dis [-out outfile] filename"

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.StringVar(
		&outvar, "out", "",
		"Writes the listing to a file instead of stdout",
	)
}

// disassemble lists every word of the program image, one instruction or
// DATA word per line.
func disassemble(w io.Writer, text string) error {
	program, err := encoding.ParseProgram(text)

	if err != nil {
		return err
	}

	mem := machine.NewMemory(program)

	for _, line := range debugger.Disassemble(&mem, 0, mem.Len()) {
		if _, err := fmt.Fprintf(w, "%6d: %s\n", line.Addr, line.Text); err != nil {
			return err
		}
	}

	return nil
}

func intcode_dis() int {
	flag.Parse()

	if helpvar {
		fmt.Println(usage)
		flag.PrintDefaults()
		return 0
	}

	args := flag.Args()

	if len(args) != 1 {
		log.Println(usage)
		return 1
	}

	text, err := os.ReadFile(args[0])

	if err != nil {
		log.Println(err)
		return 1
	}

	log.SetPrefix(fmt.Sprintf("\033[1m%s:\033[0m ", args[0]))

	output := os.Stdout

	if outvar != "" {
		file, err := os.Create(outvar)

		if err != nil {
			log.Println("Error creating output file")
			log.Println(err)
			return 1
		}

		defer file.Close()
		output = file
	}

	writer := bufio.NewWriter(output)

	if err := disassemble(writer, string(text)); err != nil {
		log.Println(err)
		return 1
	}

	if err := writer.Flush(); err != nil {
		log.Println("Error writing output file")
		log.Println(err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(intcode_dis())
}
