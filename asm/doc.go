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

// Package asm provides utility functions to assemble and disassemble Intcode
// programs.
//
// Supported assembler mnemonics:
//
//	opcode	asm	alias	operands	description
//	------	---	-----	--------	-------------------------------------------------
//	1	add		a b dst		dst = a + b
//	2	mul		a b dst		dst = a * b
//	3	in		dst		pop the next input value and store it in dst
//	4	out		a		output a
//	5	jnz	jt	a target	jump to target if a != 0
//	6	jz	jf	a target	jump to target if a == 0
//	7	lt		a b dst		dst = 1 if a < b, 0 otherwise
//	8	eq		a b dst		dst = 1 if a == b, 0 otherwise
//	9	arb	rb	a		add a to the relative base
//	99	hlt	halt			stop
//
// Operands:
//
// Operands are separated by white space. Their addressing mode is given by a
// prefix:
//
//	42	positional: the value at address 42
//	#42	immediate: the value 42
//	@42	relative: the value at address 42 + relative base
//
// The value itself can be an integer (in any base accepted by
// strconv.ParseInt with base 0), a character literal like 'a', a constant
// defined with .equ or a label. The assembler takes care of setting the mode
// digits of the instruction word.
//
// Comments:
//
// Comments are placed between parentheses, just like Forth comments. The
// opening and closing parentheses must be surrounded by white space:
//
//	( this is a comment )
//
// Labels:
//
// Labels are defined by prefixing them with a colon (:) and can be used as
// operand values, with any addressing mode. Forward references are allowed.
//
//	:loop
//		add @0 #1 @0
//		jnz #1 #loop
//
// Directives:
//
// .org ADDRESS: the next instruction or value will be written at address
// ADDRESS. ADDRESS must be an integer or a constant.
//
// .dat: the following values, up to the next mnemonic or directive, are
// written verbatim. They cannot have an addressing mode prefix.
//
//	:buffer .dat 0 0 0 0
//
// .equ NAME VALUE: defines a constant.
//
//	.equ SIZE 100
//	add #SIZE 0 0
//
// Any error will abort compilation, but the assembler will try to report up to
// 10 errors before doing so.
//
// The disassembler writes instructions in the same syntax, so that its output
// can be assembled again, minus the addresses written by DisassembleAll.
package asm
