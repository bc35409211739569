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

// Package vm implements the Intcode virtual machine.
//
// An Intcode program is a sequence of signed integers, loaded verbatim into a
// memory that grows on demand: reading or writing past the end extends it with
// zeros. Each instruction word encodes an opcode in its two low decimal digits
// and one addressing mode digit per parameter in the remaining digits, read
// right to left (0: positional, 1: immediate, 2: relative to the relative
// base).
//
// The VM never blocks on I/O. Instead, execution is driven from the outside:
//
//	i, err := vm.New(img, vm.Input(5))
//	...
//	for {
//		sig, err := i.RunToNextSignal()
//		if err != nil {
//			return err
//		}
//		switch sig {
//		case vm.NeedsInput:
//			i.Feed(next())
//		case vm.ProducedOutput:
//			v, _ := i.TakeOutput()
//			use(v)
//		case vm.Halted:
//			return nil
//		}
//	}
//
// When the input queue is empty, the input instruction yields NeedsInput and
// the instruction pointer is left on that instruction, so that it is decoded
// and executed again once the driver has fed a value. Output instructions yield
// ProducedOutput right after storing the value in a single output slot, which
// the driver should drain with TakeOutput before resuming.
//
// For simple batch use, Run drives the VM with the bound input and output
// handlers (see ReadInts, WriteInts, ReadASCII and WriteASCII).
//
// Any program contract violation (unknown opcode or addressing mode, write
// through an immediate parameter, negative address) is fatal: the error is
// returned by the faulting Tick and by every subsequent one.
package vm
