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

package amplifier

// Permutations walks every ordering of a set using Heap's algorithm. The
// first call to Next yields the set in its original order.
type Permutations[T any] struct {
	current []T
	stack   []int
	pointer int
	started bool
	done    bool
}

func NewPermutations[T any](set []T) *Permutations[T] {
	return &Permutations[T]{
		current: append([]T(nil), set...),
		stack:   make([]int, len(set)),
	}
}

// Next advances to the next ordering, reporting false when none remain.
func (p *Permutations[T]) Next() bool {
	if p.done {
		return false
	}

	if !p.started {
		p.started = true
		return true
	}

	for p.pointer < len(p.stack) {
		if p.stack[p.pointer] < p.pointer {
			if p.pointer%2 == 0 {
				p.swap(0, p.pointer)
			} else {
				p.swap(p.stack[p.pointer], p.pointer)
			}

			p.stack[p.pointer]++
			p.pointer = 0
			return true
		}

		p.stack[p.pointer] = 0
		p.pointer++
	}

	p.done = true
	return false
}

// Value returns the current ordering. The slice is reused by Next.
func (p *Permutations[T]) Value() []T {
	return p.current
}

func (p *Permutations[T]) swap(i, j int) {
	p.current[i], p.current[j] = p.current[j], p.current[i]
}
