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
	"github.com/holiman/uint256"
)

// Memory is a word store addressable past its current length. Any access
// beyond the end grows it, zero filled, to the larger of twice its length or
// the address plus one, so growth is amortised O(1) per access.
type Memory struct {
	cells []uint256.Int
}

func NewMemory(image []uint256.Int) Memory {
	cells := make([]uint256.Int, len(image))
	copy(cells, image)
	return Memory{cells: cells}
}

func (m *Memory) Len() int {
	return len(m.cells)
}

func (m *Memory) grow(addr int) {
	if addr < len(m.cells) {
		return
	}

	size := 2 * len(m.cells)

	if size < addr+1 {
		size = addr + 1
	}

	cells := make([]uint256.Int, size)
	copy(cells, m.cells)
	m.cells = cells
}

func (m *Memory) Read(addr int) uint256.Int {
	if addr < 0 {
		panic("Negative memory address")
	}

	m.grow(addr)
	return m.cells[addr]
}

func (m *Memory) Write(addr int, value *uint256.Int) {
	if addr < 0 {
		panic("Negative memory address")
	}

	m.grow(addr)
	m.cells[addr] = *value
}

// Peek reads without growing; cells past the end read as zero.
func (m *Memory) Peek(addr int) uint256.Int {
	if addr < 0 || addr >= len(m.cells) {
		return uint256.Int{}
	}

	return m.cells[addr]
}

func (m *Memory) Clone() Memory {
	return NewMemory(m.cells)
}

// Words returns a copy of the backing store.
func (m *Memory) Words() []uint256.Int {
	words := make([]uint256.Int, len(m.cells))
	copy(words, m.cells)
	return words
}
