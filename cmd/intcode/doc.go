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


// The intcode command line tool runs, assembles and disassembles Intcode
// programs, and drives amplifier pipelines. It is a showcase for the packages
// github.com/piyushrungta25/intcode/vm, asm and pipeline.
//
// Usage:
//
//	intcode <command> [flags] file
//
// Commands:
//
//	run       run a program, exchanging values with stdin and stdout
//	disasm    disassemble a program
//	asm       assemble a source file into a program
//	pipeline  run a program as a chain of amplifiers
//	version   print the version and exit
//
// All commands accept the -debug flag, which enables development logging,
// execution traces, and prints a full stacktrace should the VM crash.
//
// Flags for run:
//
//	-ascii
//		  exchange ASCII text with the program instead of integers
//	-cache size
//		  decode cache size in instructions (0 to disable)
//	-dump
//		  dump registers and memory upon exit
//	-input values
//		  comma separated values fed to the program before reading stdin
//	-max-steps n
//		  stop after n instructions (0 for no limit)
//	-noraw
//		  disable raw terminal IO in ASCII mode
//	-noun value
//		  if >= 0, store value at address 1 before running (default -1)
//	-verb value
//		  if >= 0, store value at address 2 before running (default -1)
//
// In integer mode, stdin is read as integers separated by white space or
// commas, and outputs are written one per line. In ASCII mode, stdin is read
// line by line and outputs below 128 are written as characters. Upon startup
// in ASCII mode, intcode switches the terminal to raw mode and does the line
// editing itself, so that CTRL-D cleanly ends the input. -noraw disables
// this behavior.
//
// When -noun is set, the value at address 0 is printed after the program
// halts.
//
// Flags for pipeline:
//
//	-cache size
//		  decode cache size for each stage
//	-feedback
//		  route the last stage outputs to the first stage
//	-input value
//		  value fed to the first stage
//	-phases values
//		  comma separated phase values, one per stage (can be specified multiple times)
//
// Each -phases flag describes one pipeline. All of them are run concurrently
// and their results printed one per line, in the order of the flags.
//
// Flags for disasm:
//
//	-base int
//		  address of the first cell
//
// Flags for asm:
//
//	-o filename
//		  write the program to filename instead of stdout
package main
