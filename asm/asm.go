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

package asm

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/piyushrungta25/intcode/internal/ioerr"
	"github.com/piyushrungta25/intcode/vm"
)

// mnemonics and their aliases. The first one is used by the disassembler.
var opcodes = map[vm.Opcode][]string{
	vm.OpAdd:         {"add"},
	vm.OpMul:         {"mul"},
	vm.OpIn:          {"in"},
	vm.OpOut:         {"out"},
	vm.OpJumpIfTrue:  {"jnz", "jt"},
	vm.OpJumpIfFalse: {"jz", "jf"},
	vm.OpLessThan:    {"lt"},
	vm.OpEquals:      {"eq"},
	vm.OpAdjustBase:  {"arb", "rb"},
	vm.OpHalt:        {"hlt", "halt"},
}

var opcodeIndex = make(map[string]vm.Opcode)

func init() {
	for op, names := range opcodes {
		for _, n := range names {
			opcodeIndex[n] = op
		}
	}
}

// maxErrors is the maximum number of errors reported by Assemble.
const maxErrors = 10

// Error is an assembler error at a given position in the source.
type Error struct {
	Pos scanner.Position
	Msg string
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ErrAsm is the error type returned by Assemble. It holds up to 10 errors.
type ErrAsm []Error

func (e ErrAsm) Error() string {
	var b strings.Builder
	for k := range e {
		if k > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e[k].Error())
	}
	return b.String()
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting image and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
func Assemble(name string, r io.Reader) (vm.Image, error) {
	p := newParser()
	img, err := p.Parse(name, r)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Disassemble writes a disassembly of the instruction at position pc in the
// given slice to the specified io.Writer and returns the position of the next
// instruction and any write error.
//
// Words that do not decode to a valid instruction, or instructions that would
// extend past the end of the slice, are written as a .dat directive and
// skipped one at a time.
func Disassemble(img []vm.Cell, pc int, w io.Writer) (next int, err error) {
	ew := ioerr.New(w)
	ins, next, err := vm.Decode(img, pc)
	if err != nil || next > len(img) {
		var v vm.Cell
		if pc >= 0 && pc < len(img) {
			v = img[pc]
		}
		ew.Print(".dat " + strconv.FormatInt(int64(v), 10))
		return pc + 1, ew.Err
	}
	ew.Print(vm.Format(ins))
	return next, ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given slice to
// the specified io.Writer. The base argument specifies the real address of the
// first cell (img[0]). It will return any write error.
func DisassembleAll(img []vm.Cell, base int, w io.Writer) error {
	ew := ioerr.New(w)
	for pc := 0; pc < len(img); {
		fmt.Fprintf(ew, "% 8d\t", base+pc)
		pc, _ = Disassemble(img, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
