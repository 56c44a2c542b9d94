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

package encoding

import (
	"errors"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

var (
	ErrEmptyProgram = errors.New("Program contains no instructions")
	ErrInvalidToken = errors.New("Invalid program token")
)

type ParseError struct {
	Index int
	Token string
	Err   error
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("token %d (%q): %v", err.Index, err.Token, err.Err)
}

func (err *ParseError) Unwrap() []error {
	return []error{ErrInvalidToken, err.Err}
}

// ParseProgram decodes comma separated signed integers. Whitespace around
// each token is ignored, as is a single empty token after a trailing comma.
func ParseProgram(text string) ([]uint256.Int, error) {
	tokens := strings.Split(strings.TrimSpace(text), ",")

	if last := len(tokens) - 1; last > 0 && strings.TrimSpace(tokens[last]) == "" {
		tokens = tokens[:last]
	}

	if len(tokens) == 1 && strings.TrimSpace(tokens[0]) == "" {
		return nil, ErrEmptyProgram
	}

	program := make([]uint256.Int, len(tokens))

	for i, token := range tokens {
		word, err := ParseWord(strings.TrimSpace(token))

		if err != nil {
			return nil, &ParseError{Index: i, Token: token, Err: err}
		}

		program[i] = word
	}

	return program, nil
}

// ParseInts decodes a comma separated list of int64 values, as used for
// input queues and amplifier phase settings. Empty text yields no values.
func ParseInts(text string) ([]int64, error) {
	text = strings.TrimSpace(text)

	if text == "" {
		return nil, nil
	}

	tokens := strings.Split(text, ",")
	values := make([]int64, len(tokens))

	for i, token := range tokens {
		value, err := DecodeInt(token)

		if err != nil {
			return nil, &ParseError{Index: i, Token: token, Err: err}
		}

		values[i] = value
	}

	return values, nil
}

func FormatProgram(program []uint256.Int) string {
	var builder strings.Builder

	for i := range program {
		if i > 0 {
			builder.WriteByte(',')
		}

		builder.WriteString(FormatWord(&program[i]))
	}

	return builder.String()
}
