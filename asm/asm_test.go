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

package asm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/piyushrungta25/intcode/asm"
	"github.com/piyushrungta25/intcode/vm"
)

type C = vm.Image

func TestAssemble(t *testing.T) {
	var tests = [...]struct {
		name string
		code string
		img  C
	}{
		{"add", "add 0 0 0 hlt", C{1, 0, 0, 0, 99}},
		{"modes", "add #1 @-2 5", C{2101, 1, -2, 5}},
		{"all modes", "mul @1 #2 @3", C{21202, 1, 2, 3}},
		{"in out", "in 5 out 5 hlt", C{3, 5, 4, 5, 99}},
		{"aliases", "jt #1 #0 jf #0 #0 rb #3 halt", C{1105, 1, 0, 1106, 0, 0, 109, 3, 99}},
		{"labels", "jnz #1 #end :end hlt", C{1105, 1, 3, 99}},
		{"forward label in dat", "out lbl hlt :lbl .dat 42", C{4, 3, 99, 42}},
		{"dat", ".dat 1 -2 0x10 'a'", C{1, -2, 16, 'a'}},
		{"org", "hlt .org 4 .dat 7", C{99, 0, 0, 0, 7}},
		{"equ", ".equ N 9 out #N hlt", C{104, 9, 99}},
		{"comments", "( read ) in 0 ( and ) out 0 ( write ) hlt", C{3, 0, 4, 0, 99}},
		{"cmp", "lt #1 #2 0 eq 0 #1 0", C{1107, 1, 2, 0, 1008, 0, 1, 0}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			img, err := asm.Assemble(test.name, strings.NewReader(test.code))
			require.NoError(t, err)
			require.Equal(t, test.img, img)
		})
	}
}

// check some errors. We're not checking the messages, rather that they point at
// the correct place.
func TestAssemble_errors(t *testing.T) {
	code := `
	foo
	add #1
	.org :x
	hlt .zoo
	'\x'
	.dat #3
	jnz #1 #nowhere
	`
	_, err := asm.Assemble("test_errors", strings.NewReader(code))
	require.Error(t, err)
	errs, ok := err.(asm.ErrAsm)
	require.True(t, ok)
	require.NotEmpty(t, errs)

	// locate and match errors in source code
	for _, e := range errs {
		o := e.Pos.Offset
		require.True(t, o >= 0 && o < len(code), "bad offset in %v", e)
		end := o + 3
		if end > len(code) {
			end = len(code)
		}
		tok := strings.TrimLeft(code[o:end], "#.:")
		require.NotEmpty(t, tok)
		require.Contains(t, e.Msg, strings.TrimSpace(tok), "error %q points to %q", e.Msg, code[o:end])
	}
}

func TestAssemble_missingOperands(t *testing.T) {
	_, err := asm.Assemble("t", strings.NewReader("add 1 2"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Missing operand")
}

func TestAssemble_maxErrors(t *testing.T) {
	code := strings.Repeat("bogus ", 20)
	_, err := asm.Assemble("t", strings.NewReader(code))
	require.Error(t, err)
	require.Len(t, err.(asm.ErrAsm), 10)
}

func TestDisassemble(t *testing.T) {
	img := C{1002, 4, 3, 4, 33, 99, -7, 204, -1}
	var b bytes.Buffer
	next, err := asm.Disassemble(img, 0, &b)
	require.NoError(t, err)
	require.Equal(t, 4, next)
	require.Equal(t, "mul 4 #3 4", b.String())

	b.Reset()
	next, err = asm.Disassemble(img, 4, &b)
	require.NoError(t, err)
	require.Equal(t, 5, next)
	require.Equal(t, ".dat 33", b.String())

	b.Reset()
	next, err = asm.Disassemble(img, 6, &b)
	require.NoError(t, err)
	require.Equal(t, 7, next)
	require.Equal(t, ".dat -7", b.String())

	// truncated instruction
	b.Reset()
	next, err = asm.Disassemble(C{1, 0, 0}, 0, &b)
	require.NoError(t, err)
	require.Equal(t, 1, next)
	require.Equal(t, ".dat 1", b.String())
}

func TestDisassemble_roundTrip(t *testing.T) {
	src := `
	:start
		in 100
		arb #3
		add @97 #-1 101
		jz 101 #done
		mul 100 100 102
		out 102
		jnz #1 #start
	:done
		hlt
	`
	img, err := asm.Assemble("round", strings.NewReader(src))
	require.NoError(t, err)

	var b bytes.Buffer
	for pc := 0; pc < len(img); {
		pc, err = asm.Disassemble(img, pc, &b)
		require.NoError(t, err)
		b.WriteByte('\n')
	}
	img2, err := asm.Assemble("round2", &b)
	require.NoError(t, err)
	require.Equal(t, img, img2)
}

func TestDisassembleAll(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, asm.DisassembleAll(C{109, 19, 204, -34, 99}, 10, &b))
	require.Equal(t, "      10\tarb #19\n      12\tout @-34\n      14\thlt\n", b.String())
}
