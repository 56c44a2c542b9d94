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
	"path/filepath"
	"strings"

	"github.com/lassandro/intcode/pkg/assembler"
	"github.com/lassandro/intcode/pkg/encoding"
)

var helpvar bool
var outvar string

const usage = "intcode-asm [-out outfile] filename"

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.StringVar(
		&outvar, "out", "",
		"Specifies a precise name for the output file, "+
			"overriding the default means of determining it",
	)
}

// report prints each error, underlining the offending token when the source
// lines are available.
func report(errs []error, lines []string) {
	for _, err := range errs {
		tokenErr, ok := err.(assembler.TokenError)

		if !ok || lines == nil {
			log.Println(err)
			continue
		}

		cursor := tokenErr.GetPosition()

		if cursor.Line < 1 || cursor.Line > len(lines) {
			log.Println(err)
			continue
		}

		underlinefmt := fmt.Sprintf(
			"%% %ds%s",
			cursor.Column,
			strings.Repeat("~", max(cursor.Size-1, 0)),
		)

		log.Printf(
			"%s\n%s\n\033[31m%s\033[0m",
			err,
			lines[cursor.Line-1],
			fmt.Sprintf(underlinefmt, "^"),
		)
	}
}

func intcode_asm() int {
	flag.Parse()

	if helpvar {
		fmt.Println(usage)
		flag.PrintDefaults()
		return 0
	}

	args := flag.Args()

	var input io.Reader

	if stat, _ := os.Stdin.Stat(); stat.Mode()&os.ModeCharDevice == 0 && len(args) == 0 {
		input = os.Stdin
		log.SetPrefix("\033[1m<stdin>:\033[0m")

		if outvar == "" {
			outvar = "out.txt"
		}
	} else {
		if len(args) != 1 {
			log.Println(usage)
			return 1
		}

		file, err := os.Open(args[0])

		if err != nil {
			log.Println(err)
			return 1
		}

		defer file.Close()

		filename := filepath.Base(file.Name())

		if stat, err := file.Stat(); err != nil {
			log.Println(err)
			return 1
		} else if stat.IsDir() {
			log.Printf("%s is not a valid IntCode assembly file", filename)
			return 1
		}

		input = file
		log.SetPrefix(fmt.Sprintf("\033[1m%s:\033[0m", filename))

		if outvar == "" {
			outvar = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".txt"
		}
	}

	source, err := io.ReadAll(input)

	if err != nil {
		log.Println(err)
		return 1
	}

	result, errs := assembler.Assemble(strings.NewReader(string(source)))

	if len(errs) > 0 {
		report(errs, strings.Split(string(source), "\n"))
		return 1
	}

	file, err := os.Create(outvar)

	if err != nil {
		log.Println("Error creating output file")
		log.Println(err)
		return 1
	}

	defer file.Close()

	writer := bufio.NewWriter(file)
	writer.WriteString(encoding.FormatProgram(result))
	writer.WriteByte('\n')

	if err := writer.Flush(); err != nil {
		log.Println("Error writing output file")
		log.Println(err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(intcode_asm())
}
