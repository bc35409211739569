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
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/piyushrungta25/intcode/internal/ioerr"
)

// Cell is the raw type stored in a memory location.
type Cell int64

// Instance represents an Intcode VM instance.
//
// An Instance is not safe for concurrent use. Distinct instances share no
// state and may run on different goroutines.
type Instance struct {
	PC   int  // Program Counter (aka. Instruction Pointer)
	Base Cell // Relative base

	mem       Memory
	input     []Cell
	output    Cell
	hasOutput bool
	outputs   []Cell
	halted    bool
	err       error
	steps     int64
	maxSteps  int64
	inH       InputHandler
	outH      OutputHandler
	log       *zap.Logger
	cache     *decodeCache
}

// Option interface
type Option func(*Instance) error

// Input appends the given values to the input queue.
func Input(values ...Cell) Option {
	return func(i *Instance) error { i.Feed(values...); return nil }
}

// Logger sets the logger used to trace execution. Instructions are traced at
// debug level; nothing is logged if the logger does not enable it.
func Logger(l *zap.Logger) Option {
	return func(i *Instance) error {
		if l != nil && l.Core().Enabled(zap.DebugLevel) {
			i.log = l
		} else {
			i.log = nil
		}
		return nil
	}
}

// MaxSteps sets the maximum number of instructions that Run will execute
// before giving up with ErrStepLimit. A value <= 0 means no limit, which is
// the default. It has no effect on Tick, RunUntil and RunToNextSignal.
func MaxSteps(n int64) Option {
	return func(i *Instance) error { i.maxSteps = n; return nil }
}

// DecodeCache enables caching of up to size decoded instructions. Writes to
// memory invalidate the affected entries, so the cache is transparent to
// self-modifying programs. A size <= 0 disables the cache.
func DecodeCache(size int) Option {
	return func(i *Instance) error {
		if size <= 0 {
			i.cache = nil
			return nil
		}
		c, err := newDecodeCache(size)
		if err != nil {
			return errors.Wrap(err, "decode cache")
		}
		i.cache = c
		return nil
	}
}

// InputHandler is the function prototype for input handlers. It is called by
// Run when the program needs input and must feed at least one value to the
// instance with Feed, or return an error.
type InputHandler func(i *Instance) error

// OutputHandler is the function prototype for output handlers, called by Run
// for each value produced by the program.
type OutputHandler func(i *Instance, v Cell) error

// BindInputHandler sets the handler called by Run when the input queue is
// empty. Without an input handler, Run fails with ErrNoInput in that case.
func BindInputHandler(h InputHandler) Option {
	return func(i *Instance) error { i.inH = h; return nil }
}

// BindOutputHandler sets the handler called by Run for each output. Without
// an output handler, outputs are accumulated and can be retrieved with
// Outputs.
func BindOutputHandler(h OutputHandler) Option {
	return func(i *Instance) error { i.outH = h; return nil }
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode VM instance.
//
// The image is copied into the instance memory, so the same image can be used
// to start any number of instances. Options are set by calling SetOptions.
func New(img Image, opts ...Option) (*Instance, error) {
	i := &Instance{
		mem: Memory{cells: img.Clone()},
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Feed appends values to the input queue. It can be called at any time, even
// before the program asks for input.
func (i *Instance) Feed(values ...Cell) {
	i.input = append(i.input, values...)
}

// Pending returns the number of values waiting in the input queue.
func (i *Instance) Pending() int {
	return len(i.input)
}

// TakeOutput returns the value in the output slot and empties it. The boolean
// result is false if the slot was empty.
func (i *Instance) TakeOutput() (Cell, bool) {
	v, ok := i.output, i.hasOutput
	i.output, i.hasOutput = 0, false
	return v, ok
}

// Outputs returns the values collected by Run when no output handler is
// bound.
func (i *Instance) Outputs() []Cell {
	return i.outputs
}

// Halted reports whether the program has executed a halt instruction.
func (i *Instance) Halted() bool {
	return i.halted
}

// Err returns the fatal error that stopped the instance, if any.
func (i *Instance) Err() error {
	return i.err
}

// Steps returns the number of instructions executed so far.
func (i *Instance) Steps() int64 {
	return i.steps
}

// Memory returns the memory contents. See Memory.Cells.
func (i *Instance) Memory() []Cell {
	return i.mem.Cells()
}

// Peek returns the value at address addr, growing memory as needed.
func (i *Instance) Peek(addr Cell) (v Cell, err error) {
	defer recoverFault(&err)
	return i.mem.Read(addr), nil
}

// Poke stores v at address addr, growing memory as needed.
func (i *Instance) Poke(addr, v Cell) (err error) {
	defer recoverFault(&err)
	i.write(addr, v)
	return nil
}

func recoverFault(err *error) {
	if e := recover(); e != nil {
		f, ok := e.(fault)
		if !ok {
			panic(e)
		}
		*err = f.error
	}
}

// write stores v at addr and drops any cached instruction overlapping addr.
func (i *Instance) write(addr, v Cell) {
	i.mem.Write(addr, v)
	if i.cache != nil {
		i.cache.invalidate(int(addr))
	}
}

// Dump writes the instance registers, pending input and memory to w.
func (i *Instance) Dump(w io.Writer) error {
	ew := ioerr.New(w)
	ew.Print("pc ")
	ioerr.WriteInts(ew, []int64{int64(i.PC)}, "")
	ew.Print("\nbase ")
	ioerr.WriteInts(ew, []Cell{i.Base}, "")
	ew.Print("\ninput ")
	ioerr.WriteInts(ew, i.input, ",")
	ew.Print("\noutput ")
	if i.hasOutput {
		ioerr.WriteInts(ew, []Cell{i.output}, "")
	}
	ew.Print("\nmem ")
	ioerr.WriteInts(ew, i.mem.Cells(), ",")
	return ew.Print("\n")
}
