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
	"errors"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/lassandro/intcode/pkg/encoding"
)

var (
	ErrUnknownOpcode        = errors.New("Unknown opcode")
	ErrInvalidMode          = errors.New("Invalid addressing mode")
	ErrImmediateDestination = errors.New("Immediate mode used as a destination")
	ErrInputUnderflow       = errors.New("Input queue is empty")
	ErrInvalidAddress       = errors.New("Address out of range")
	ErrFaulted              = errors.New("Machine faulted")
)

// DecodeError reports an opcode word that does not describe an instruction.
type DecodeError struct {
	Addr int
	Word uint256.Int
	Err  error
}

func (err *DecodeError) Error() string {
	return fmt.Sprintf(
		"%v %s at %d", err.Err, encoding.FormatWord(&err.Word), err.Addr,
	)
}

func (err *DecodeError) Unwrap() error {
	return err.Err
}

// ExecError reports a decoded instruction that could not be carried out.
type ExecError struct {
	Instruction Instruction
	Err         error
}

func (err *ExecError) Error() string {
	return fmt.Sprintf(
		"%v executing %s at %d",
		err.Err, err.Instruction.String(), err.Instruction.Addr,
	)
}

func (err *ExecError) Unwrap() error {
	return err.Err
}
