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

package assembler

import (
	"bufio"
	"io"
	"strings"

	"github.com/holiman/uint256"

	"github.com/lassandro/intcode/pkg/encoding"
	"github.com/lassandro/intcode/pkg/machine"
)

type token struct {
	Position Cursor
	Value    string
}

var instructions = map[string]machine.Opcode{
	"ADD":  machine.OP_ADD,
	"MUL":  machine.OP_MUL,
	"IN":   machine.OP_IN,
	"OUT":  machine.OP_OUT,
	"JT":   machine.OP_JT,
	"JF":   machine.OP_JF,
	"LT":   machine.OP_LT,
	"EQ":   machine.OP_EQ,
	"ARB":  machine.OP_ARB,
	"HALT": machine.OP_HALT,
}

// Operand index written by each opcode that stores a result
var destinations = map[machine.Opcode]int{
	machine.OP_ADD: 2,
	machine.OP_MUL: 2,
	machine.OP_IN:  0,
	machine.OP_LT:  2,
	machine.OP_EQ:  2,
}

// Splits a line into tokens on whitespace and commas, dropping ';' comments.
func tokenize(line string, lineno int) []token {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}

	var tokens []token
	start := -1

	for i := 0; i <= len(line); i++ {
		separator := i == len(line) ||
			line[i] == ' ' || line[i] == '\t' || line[i] == ',' || line[i] == '\r'

		if separator && start >= 0 {
			tokens = append(tokens, token{
				Position: Cursor{Line: lineno, Column: start + 1, Size: i - start},
				Value:    line[start:i],
			})
			start = -1
		} else if !separator && start < 0 {
			start = i
		}
	}

	return tokens
}

func parseOperand(tok *token) (machine.Mode, uint256.Int, error) {
	var mode machine.Mode
	value := tok.Value

	switch {
	case strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]"):
		mode = machine.MODE_POSITIONAL
		value = value[1 : len(value)-1]
	case strings.HasPrefix(value, "#"):
		mode = machine.MODE_IMMEDIATE
		value = value[1:]
	case strings.HasPrefix(value, "@"):
		mode = machine.MODE_RELATIVE
		value = value[1:]
	default:
		return 0, uint256.Int{}, &InvalidOperandError{tok.Position, tok.Value}
	}

	word, err := encoding.ParseWord(value)

	if err != nil {
		return 0, uint256.Int{}, &InvalidOperandError{tok.Position, tok.Value}
	}

	return mode, word, nil
}

// AssembleLine encodes one line of source. Blank and comment-only lines
// yield no words. A leading "addr:" column, as printed by the disassembler,
// is ignored.
func AssembleLine(line string, lineno int) ([]uint256.Int, error) {
	tokens := tokenize(line, lineno)

	if len(tokens) > 0 && strings.HasSuffix(tokens[0].Value, ":") {
		tokens = tokens[1:]
	}

	if len(tokens) == 0 {
		return nil, nil
	}

	name := strings.ToUpper(tokens[0].Value)
	args := tokens[1:]

	if name == "DATA" {
		if len(args) == 0 {
			return nil, &InvalidNumArgumentsError{tokens[0].Position, 1, 0}
		}

		words := make([]uint256.Int, len(args))

		for i := range args {
			word, err := encoding.ParseWord(args[i].Value)

			if err != nil {
				return nil, &InvalidOperandError{args[i].Position, args[i].Value}
			}

			words[i] = word
		}

		return words, nil
	}

	op, ok := instructions[name]

	if !ok {
		return nil, &UnknownInstructionError{tokens[0].Position, tokens[0].Value}
	}

	return encode(op, tokens[0], args)
}

func encode(op machine.Opcode, name token, args []token) ([]uint256.Int, error) {
	required, _ := machine.OperandCount(op)

	if len(args) != required {
		return nil, &InvalidNumArgumentsError{name.Position, required, len(args)}
	}

	words := make([]uint256.Int, 1+len(args))
	inst := machine.Instruction{Op: op, Count: required}

	for i := range args {
		mode, word, err := parseOperand(&args[i])

		if err != nil {
			return nil, err
		}

		if dest, ok := destinations[op]; ok && dest == i && mode == machine.MODE_IMMEDIATE {
			return nil, &ImmediateDestinationError{args[i].Position}
		}

		inst.Params[i] = machine.Operand{Mode: mode, Value: word}
		words[1+i] = word
	}

	words[0].SetUint64(inst.Word())

	return words, nil
}

// Assemble encodes a whole source file, collecting every line's error.
func Assemble(input io.Reader) (result []uint256.Int, errs []error) {
	scanner := bufio.NewScanner(input)
	lineno := 0

	for scanner.Scan() {
		lineno++

		words, err := AssembleLine(scanner.Text(), lineno)

		if err != nil {
			errs = append(errs, err)
			continue
		}

		result = append(result, words...)
	}

	if err := scanner.Err(); err != nil {
		errs = append(errs, err)
	}

	return result, errs
}
