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
	"fmt"
)

type Cursor struct {
	Line   int
	Column int
	Size   int
}

type TokenError interface {
	GetPosition() Cursor
}

type UnknownInstructionError struct {
	Position Cursor
	Name     string
}

func (err *UnknownInstructionError) GetPosition() Cursor {
	return err.Position
}

func (err *UnknownInstructionError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unknown instruction '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Name,
	)
}

type InvalidOperandError struct {
	Position Cursor
	Value    string
}

func (err *InvalidOperandError) GetPosition() Cursor {
	return err.Position
}

func (err *InvalidOperandError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid operand '%s'\n\twant:[#], ## or @#",
		err.Position.Line,
		err.Position.Column,
		err.Value,
	)
}

type InvalidNumArgumentsError struct {
	Position Cursor
	Required int
	Received int
}

func (err *InvalidNumArgumentsError) GetPosition() Cursor {
	return err.Position
}

func (err *InvalidNumArgumentsError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid number of arguments\n\twant:%d\n\thave:%v",
		err.Position.Line,
		err.Position.Column,
		err.Required,
		err.Received,
	)
}

type ImmediateDestinationError struct {
	Position Cursor
}

func (err *ImmediateDestinationError) GetPosition() Cursor {
	return err.Position
}

func (err *ImmediateDestinationError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Immediate operand used as a destination",
		err.Position.Line,
		err.Position.Column,
	)
}
