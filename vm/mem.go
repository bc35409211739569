// This file is part of intcode - https://github.com/piyushrungta25/intcode
//
// Copyright 2019 The intcode Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

// Memory is a word addressable store that grows on demand. Reading or writing
// at an address past the end first extends it with zero cells.
//
// Accessing a negative address panics. Instance methods recover that panic
// and report it as ErrNegativeAddress.
//
// The zero value is an empty memory ready to use.
type Memory struct {
	cells []Cell
}

// grow makes sure that addr is a valid index into m.cells and returns it.
func (m *Memory) grow(addr Cell) int {
	if addr < 0 {
		raise(ErrNegativeAddress, "address %d", addr)
	}
	a := int(addr)
	if a >= len(m.cells) {
		m.cells = append(m.cells, make([]Cell, a+1-len(m.cells))...)
	}
	return a
}

// Read returns the value at address addr.
func (m *Memory) Read(addr Cell) Cell {
	return m.cells[m.grow(addr)]
}

// Write stores v at address addr.
func (m *Memory) Write(addr, v Cell) {
	m.cells[m.grow(addr)] = v
}

// Len returns the current size of the memory in cells.
func (m *Memory) Len() int {
	return len(m.cells)
}

// Cells returns the memory contents. The returned slice shares storage with
// m until the next access that grows it.
func (m *Memory) Cells() []Cell {
	return m.cells
}

func (m *Memory) fetch(addr int) Cell {
	return m.Read(Cell(addr))
}
