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
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/piyushrungta25/intcode/vm"
)

func TestTick_inputRewindsPC(t *testing.T) {
	i := setup(t, C{3, 5, 4, 5, 99, 0})
	for k := 0; k < 3; k++ {
		sig, err := i.Tick()
		require.NoError(t, err)
		require.Equal(t, vm.NeedsInput, sig)
		require.Equal(t, 0, i.PC)
		require.Zero(t, i.Steps())
	}
	i.Feed(7)
	sig, err := i.Tick()
	require.NoError(t, err)
	require.Equal(t, vm.Continue, sig)
	require.Equal(t, 2, i.PC)
	require.Zero(t, i.Pending())

	sig, err = i.RunUntil(vm.ProducedOutput)
	require.NoError(t, err)
	require.Equal(t, vm.ProducedOutput, sig)
	v, ok := i.TakeOutput()
	require.True(t, ok)
	require.Equal(t, vm.Cell(7), v)
	_, ok = i.TakeOutput()
	require.False(t, ok)
}

func TestTick_afterHalt(t *testing.T) {
	i := setup(t, C{99})
	for k := 0; k < 2; k++ {
		sig, err := i.Tick()
		require.NoError(t, err)
		require.Equal(t, vm.Halted, sig)
		require.True(t, i.Halted())
		require.Equal(t, 0, i.PC)
	}
	require.Equal(t, int64(1), i.Steps())
}

func TestEcho(t *testing.T) {
	i := setup(t, C{3, 0, 4, 0, 99})
	i.Feed(7)
	sig, err := i.RunUntil(vm.ProducedOutput)
	require.NoError(t, err)
	require.Equal(t, vm.ProducedOutput, sig)
	v, ok := i.TakeOutput()
	require.True(t, ok)
	require.Equal(t, vm.Cell(7), v)

	sig, err = i.RunUntil(vm.ProducedOutput)
	require.NoError(t, err)
	require.Equal(t, vm.Halted, sig)
}

func TestRunUntil(t *testing.T) {
	// two outputs, then wait for input.
	img := C{104, 1, 104, 2, 3, 9, 4, 9, 99, 0}

	i := setup(t, img)
	sig, err := i.RunUntil(vm.Continue)
	require.NoError(t, err)
	require.Equal(t, vm.ProducedOutput, sig)
	require.Equal(t, 2, i.PC)

	// outputs are not wanted: the last one stays in the slot
	i = setup(t, img)
	sig, err = i.RunUntil(vm.Halted)
	require.NoError(t, err)
	require.Equal(t, vm.NeedsInput, sig)
	require.Equal(t, 4, i.PC)
	v, ok := i.TakeOutput()
	require.True(t, ok)
	require.Equal(t, vm.Cell(2), v)

	i.Feed(5)
	sig, err = i.RunUntil(vm.NeedsInput)
	require.NoError(t, err)
	require.Equal(t, vm.Halted, sig)
	v, _ = i.TakeOutput()
	require.Equal(t, vm.Cell(5), v)
}

func TestPrograms(t *testing.T) {
	quine := C{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99}
	// outputs 999, 1000 or 1001 depending on whether the input is below,
	// equal to or above 8.
	cmp8 := C{3, 21, 1008, 21, 8, 20, 1005, 20, 22, 107, 8, 21, 20, 1006, 20, 31,
		1106, 0, 36, 98, 0, 0, 1002, 21, 125, 20, 4, 20, 1105, 1, 46, 104,
		999, 1105, 1, 46, 1101, 1000, 1, 20, 4, 20, 1105, 1, 46, 98, 99}

	var tests = [...]struct {
		name string
		img  C
		in   []vm.Cell
		out  []vm.Cell
	}{
		{"quine", quine, nil, quine},
		{"large output", C{104, 1125899906842624, 99}, nil, C{1125899906842624}},
		{"16 digits", C{1102, 34915192, 34915192, 7, 4, 7, 99, 0}, nil, C{1219070632396864}},
		{"eq 8 positional", C{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8}, C{8}, C{1}},
		{"eq 8 positional false", C{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8}, C{7}, C{0}},
		{"lt 8 positional", C{3, 9, 7, 9, 10, 9, 4, 9, 99, -1, 8}, C{5}, C{1}},
		{"lt 8 positional false", C{3, 9, 7, 9, 10, 9, 4, 9, 99, -1, 8}, C{8}, C{0}},
		{"eq 8 immediate", C{3, 3, 1108, -1, 8, 3, 4, 3, 99}, C{8}, C{1}},
		{"lt 8 immediate", C{3, 3, 1107, -1, 8, 3, 4, 3, 99}, C{9}, C{0}},
		{"jump positional zero", C{3, 12, 6, 12, 15, 1, 13, 14, 13, 4, 13, 99, -1, 0, 1, 9}, C{0}, C{0}},
		{"jump positional nonzero", C{3, 12, 6, 12, 15, 1, 13, 14, 13, 4, 13, 99, -1, 0, 1, 9}, C{3}, C{1}},
		{"jump immediate zero", C{3, 3, 1105, -1, 9, 1101, 0, 0, 12, 4, 12, 99, 1}, C{0}, C{0}},
		{"jump immediate nonzero", C{3, 3, 1105, -1, 9, 1101, 0, 0, 12, 4, 12, 99, 1}, C{-2}, C{1}},
		{"below 8", cmp8, C{7}, C{999}},
		{"equal 8", cmp8, C{8}, C{1000}},
		{"above 8", cmp8, C{9}, C{1001}},
		{"immediate write operand", C{1002, 4, 3, 4, 33}, nil, nil},
		{"negative operand", C{1101, 100, -1, 4, 0}, nil, nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, []vm.Cell(test.out), run(t, test.img, test.in...))
			// and once more through the decode cache
			i := setup(t, test.img, vm.Input(test.in...), vm.DecodeCache(8))
			require.NoError(t, i.Run())
			require.Equal(t, []vm.Cell(test.out), i.Outputs())
		})
	}
}

func TestRun_noInput(t *testing.T) {
	i := setup(t, C{3, 0, 99})
	err := i.Run()
	require.ErrorIs(t, err, vm.ErrNoInput)
	// not fatal: feed and resume
	require.NoError(t, i.Err())
	i.Feed(1)
	require.NoError(t, i.Run())
	require.True(t, i.Halted())

	// a handler that feeds nothing
	i = setup(t, C{3, 0, 99}, vm.BindInputHandler(func(*vm.Instance) error { return nil }))
	require.ErrorIs(t, i.Run(), vm.ErrNoInput)
}

func TestRun_handlers(t *testing.T) {
	in := []vm.Cell{3, 4, 0}
	var out []vm.Cell
	i := setup(t, assemble(t, ":loop in 100 jz 100 #end mul 100 100 100 out 100 jnz #1 #loop :end hlt"),
		vm.BindInputHandler(func(i *vm.Instance) error {
			i.Feed(in[0])
			in = in[1:]
			return nil
		}),
		vm.BindOutputHandler(func(_ *vm.Instance, v vm.Cell) error {
			out = append(out, v)
			return nil
		}))
	require.NoError(t, i.Run())
	require.Equal(t, []vm.Cell{9, 16}, out)
	require.Empty(t, in)
	require.Nil(t, i.Outputs())

	// handler errors are returned as is
	i = setup(t, C{3, 0, 99}, vm.BindInputHandler(func(*vm.Instance) error { return io.EOF }))
	require.Equal(t, io.EOF, i.Run())
	errOut := errors.New("full")
	i = setup(t, C{104, 1, 99}, vm.BindOutputHandler(func(*vm.Instance, vm.Cell) error { return errOut }))
	require.Equal(t, errOut, i.Run())
}

func TestRun_maxSteps(t *testing.T) {
	loop := assemble(t, ":l jnz #1 #l")
	i := setup(t, loop, vm.MaxSteps(100))
	err := i.Run()
	require.ErrorIs(t, err, vm.ErrStepLimit)
	require.Equal(t, int64(100), i.Steps())
	require.NoError(t, i.Err())

	i = setup(t, C{1101, 1, 1, 0, 99}, vm.MaxSteps(2))
	require.NoError(t, i.Run())
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	i := setup(t, C{1101, 2, 3, 5, 99, 0}, vm.Logger(zap.New(core)))
	require.NoError(t, i.Run())
	entries := logs.FilterMessage("exec").All()
	require.Len(t, entries, 2)
	require.Equal(t, "add #2 #3 5", entries[0].ContextMap()["ins"])
	require.Equal(t, int64(4), entries[1].ContextMap()["pc"])

	// no tracing above debug level
	core, logs = observer.New(zap.InfoLevel)
	i = setup(t, C{1101, 2, 3, 5, 99, 0}, vm.Logger(zap.New(core)))
	require.NoError(t, i.Run())
	require.Zero(t, logs.Len())
}
