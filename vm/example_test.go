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

package vm_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/piyushrungta25/intcode/vm"
)

// Shows how to drive an instance by hand: feed input when asked for, collect
// output as it comes.
func ExampleInstance_RunToNextSignal() {
	// outputs 999, 1000 or 1001 if the input is below, equal to or above 8.
	img, err := vm.ParseString("3,21,1008,21,8,20,1005,20,22,107,8,21,20,1006,20,31," +
		"1106,0,36,98,0,0,1002,21,125,20,4,20,1105,1,46,104," +
		"999,1105,1,46,1101,1000,1,20,4,20,1105,1,46,98,99")
	if err != nil {
		panic(err)
	}
	for _, in := range []vm.Cell{7, 8, 9} {
		i, err := vm.New(img)
		if err != nil {
			panic(err)
		}
	loop:
		for {
			sig, err := i.RunToNextSignal()
			if err != nil {
				panic(err)
			}
			switch sig {
			case vm.NeedsInput:
				i.Feed(in)
			case vm.ProducedOutput:
				v, _ := i.TakeOutput()
				fmt.Println(in, v)
			case vm.Halted:
				break loop
			}
		}
	}

	// Output:
	// 7 999
	// 8 1000
	// 9 1001
}

// Shows how to bind I/O handlers and let Run do the work.
func ExampleInstance_Run() {
	img, err := vm.ParseString("109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99")
	if err != nil {
		panic(err)
	}
	i, err := vm.New(img, vm.BindOutputHandler(vm.WriteInts(os.Stdout)), vm.MaxSteps(1000))
	if err == nil {
		err = i.Run()
	}
	if err != nil {
		panic(err)
	}
	fmt.Println(i.Halted())

	// Output:
	// 109
	// 1
	// 204
	// -1
	// 1001
	// 100
	// 1
	// 100
	// 1008
	// 100
	// 16
	// 101
	// 1006
	// 101
	// 0
	// 99
	// true
}

// ASCII capable programs read and write text. This one converts a line to
// upper case.
func ExampleReadASCII() {
	img, err := vm.ParseString("3,100,1008,100,10,101,1005,101,18,1001,100,-32,100,4,100,1105,1,0,99")
	if err != nil {
		panic(err)
	}
	i, err := vm.New(img, vm.BindInputHandler(vm.ReadASCII(strings.NewReader("hello\n"))),
		vm.BindOutputHandler(vm.WriteASCII(os.Stdout)))
	if err == nil {
		err = i.Run()
	}
	if err != nil {
		panic(err)
	}
	fmt.Println()

	// Output:
	// HELLO
}

func ExampleDecode() {
	code := []vm.Cell{1002, 4, 3, 4, 21107, -1, 8, 3, 99}
	for pc := 0; pc < len(code); {
		ins, next, err := vm.Decode(code, pc)
		if err != nil {
			panic(err)
		}
		fmt.Println(pc, vm.Format(ins))
		pc = next
	}

	// Output:
	// 0 mul 4 #3 4
	// 4 lt #-1 #8 @3
	// 8 hlt
}
