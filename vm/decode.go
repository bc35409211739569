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

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Param is a decoded instruction parameter: the raw word that followed the
// opcode and the addressing mode used to interpret it.
type Param struct {
	Mode  Mode
	Value Cell
}

// String returns the assembler form of p: "N" for positional, "#N" for
// immediate and "@N" for relative parameters.
func (p Param) String() string {
	v := strconv.FormatInt(int64(p.Value), 10)
	switch p.Mode {
	case Immediate:
		return "#" + v
	case Relative:
		return "@" + v
	}
	return v
}

// Instruction is a decoded instruction. The set of implementations is closed:
// Add, Mul, In, Out, JumpIfTrue, JumpIfFalse, LessThan, Equals, AdjustBase
// and Halt.
type Instruction interface {
	Opcode() Opcode
	Params() []Param
	isInstruction()
}

// Add stores A + B at Dst.
type Add struct{ A, B, Dst Param }

// Mul stores A * B at Dst.
type Mul struct{ A, B, Dst Param }

// In pops a value from the input queue and stores it at Dst.
type In struct{ Dst Param }

// Out sets the output slot to Src.
type Out struct{ Src Param }

// JumpIfTrue jumps to Target if Cond is not zero.
type JumpIfTrue struct{ Cond, Target Param }

// JumpIfFalse jumps to Target if Cond is zero.
type JumpIfFalse struct{ Cond, Target Param }

// LessThan stores 1 at Dst if A < B, 0 otherwise.
type LessThan struct{ A, B, Dst Param }

// Equals stores 1 at Dst if A == B, 0 otherwise.
type Equals struct{ A, B, Dst Param }

// AdjustBase adds Delta to the relative base.
type AdjustBase struct{ Delta Param }

// Halt stops the program.
type Halt struct{}

func (Add) Opcode() Opcode         { return OpAdd }
func (Mul) Opcode() Opcode         { return OpMul }
func (In) Opcode() Opcode          { return OpIn }
func (Out) Opcode() Opcode         { return OpOut }
func (JumpIfTrue) Opcode() Opcode  { return OpJumpIfTrue }
func (JumpIfFalse) Opcode() Opcode { return OpJumpIfFalse }
func (LessThan) Opcode() Opcode    { return OpLessThan }
func (Equals) Opcode() Opcode      { return OpEquals }
func (AdjustBase) Opcode() Opcode  { return OpAdjustBase }
func (Halt) Opcode() Opcode        { return OpHalt }

func (i Add) Params() []Param         { return []Param{i.A, i.B, i.Dst} }
func (i Mul) Params() []Param         { return []Param{i.A, i.B, i.Dst} }
func (i In) Params() []Param          { return []Param{i.Dst} }
func (i Out) Params() []Param         { return []Param{i.Src} }
func (i JumpIfTrue) Params() []Param  { return []Param{i.Cond, i.Target} }
func (i JumpIfFalse) Params() []Param { return []Param{i.Cond, i.Target} }
func (i LessThan) Params() []Param    { return []Param{i.A, i.B, i.Dst} }
func (i Equals) Params() []Param      { return []Param{i.A, i.B, i.Dst} }
func (i AdjustBase) Params() []Param  { return []Param{i.Delta} }
func (Halt) Params() []Param          { return nil }

func (Add) isInstruction()         {}
func (Mul) isInstruction()         {}
func (In) isInstruction()          {}
func (Out) isInstruction()         {}
func (JumpIfTrue) isInstruction()  {}
func (JumpIfFalse) isInstruction() {}
func (LessThan) isInstruction()    {}
func (Equals) isInstruction()      {}
func (AdjustBase) isInstruction()  {}
func (Halt) isInstruction()        {}

// Format returns the assembler form of ins, e.g. "add #1 @2 7".
func Format(ins Instruction) string {
	var b strings.Builder
	b.WriteString(ins.Opcode().String())
	for _, p := range ins.Params() {
		b.WriteByte(' ')
		b.WriteString(p.String())
	}
	return b.String()
}

// Size returns the number of words used by ins, opcode included.
func Size(ins Instruction) int {
	return 1 + ins.Opcode().Arity()
}

// Decode decodes the instruction starting at words[pc] and returns it along
// with the address of the next instruction. Words past the end of the slice
// read as 0, the same way a growing memory would. words is never modified.
func Decode(words []Cell, pc int) (ins Instruction, next int, err error) {
	if pc < 0 {
		return nil, pc, errors.Wrapf(ErrNegativeAddress, "address %d", pc)
	}
	return decode(func(addr int) Cell {
		if addr < len(words) {
			return words[addr]
		}
		return 0
	}, pc)
}

// decode reads one instruction at pc through fetch.
func decode(fetch func(addr int) Cell, pc int) (Instruction, int, error) {
	w := fetch(pc)
	op := Opcode(w % 100)
	arity := op.Arity()
	if w < 0 || arity < 0 {
		return nil, pc, errors.Wrapf(ErrMalformedOpcode, "%d", w)
	}
	var ps [maxArity]Param
	modes := w / 100
	for k := 0; k < arity; k++ {
		m := Mode(modes % 10)
		if m > Relative {
			return nil, pc, errors.Wrapf(ErrMalformedMode, "mode %d for parameter %d of %d", m, k+1, w)
		}
		ps[k] = Param{m, fetch(pc + 1 + k)}
		modes /= 10
	}
	next := pc + 1 + arity
	switch op {
	case OpAdd:
		return Add{ps[0], ps[1], ps[2]}, next, nil
	case OpMul:
		return Mul{ps[0], ps[1], ps[2]}, next, nil
	case OpIn:
		return In{ps[0]}, next, nil
	case OpOut:
		return Out{ps[0]}, next, nil
	case OpJumpIfTrue:
		return JumpIfTrue{ps[0], ps[1]}, next, nil
	case OpJumpIfFalse:
		return JumpIfFalse{ps[0], ps[1]}, next, nil
	case OpLessThan:
		return LessThan{ps[0], ps[1], ps[2]}, next, nil
	case OpEquals:
		return Equals{ps[0], ps[1], ps[2]}, next, nil
	case OpAdjustBase:
		return AdjustBase{ps[0]}, next, nil
	case OpHalt:
		return Halt{}, next, nil
	}
	// a valid opcode without a decoder is a bug in this package
	panic("vm: no decoder for " + op.String())
}
