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
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Signal is the execution status returned to the driver after a step.
type Signal int

// Signals
const (
	Continue       Signal = iota // the instruction completed, keep going
	NeedsInput                   // the input queue is empty, Feed and resume
	ProducedOutput               // a value is waiting in the output slot
	Halted                       // the program has stopped
)

func (s Signal) String() string {
	switch s {
	case Continue:
		return "continue"
	case NeedsInput:
		return "needs input"
	case ProducedOutput:
		return "produced output"
	case Halted:
		return "halted"
	}
	return fmt.Sprintf("signal(%d)", int(s))
}

// load returns the value designated by p.
func (i *Instance) load(p Param) Cell {
	switch p.Mode {
	case Immediate:
		return p.Value
	case Relative:
		return i.mem.Read(i.Base + p.Value)
	}
	return i.mem.Read(p.Value)
}

// store writes v to the address designated by p.
func (i *Instance) store(p Param, v Cell) {
	switch p.Mode {
	case Immediate:
		raise(ErrIllegalWrite, "store %d to #%d", v, p.Value)
	case Relative:
		i.write(i.Base+p.Value, v)
	default:
		i.write(p.Value, v)
	}
}

func (i *Instance) jump(target Param) {
	pc := i.load(target)
	if pc < 0 {
		raise(ErrNegativeAddress, "jump to %d", pc)
	}
	i.PC = int(pc)
}

func b2c(b bool) Cell {
	if b {
		return 1
	}
	return 0
}

// decode decodes the instruction at PC and moves PC past it.
func (i *Instance) decode() (Instruction, error) {
	if i.cache != nil {
		if d, ok := i.cache.get(i.PC); ok {
			i.PC = d.next
			return d.ins, nil
		}
	}
	ins, next, err := decode(i.mem.fetch, i.PC)
	if err != nil {
		return nil, err
	}
	if i.cache != nil {
		i.cache.put(i.PC, decoded{ins, next})
	}
	i.PC = next
	return ins, nil
}

// Tick decodes and executes a single instruction.
//
// It returns Continue after arithmetic, comparison, jump and base adjustment
// instructions. NeedsInput is returned without executing anything when an
// input instruction finds the queue empty; PC is then left on that
// instruction. ProducedOutput is returned after an output instruction and
// Halted after a halt instruction, or for any call after that.
//
// If the instruction violates the program contract, the instance is stopped
// and the error is returned by this and all subsequent calls, with PC on the
// faulting instruction.
func (i *Instance) Tick() (sig Signal, err error) {
	if i.err != nil {
		return Continue, i.err
	}
	if i.halted {
		return Halted, nil
	}
	start := i.PC
	defer func() {
		if e := recover(); e != nil {
			f, ok := e.(fault)
			if !ok {
				panic(e)
			}
			sig, err = Continue, i.fail(start, f.error)
		}
	}()
	ins, err := i.decode()
	if err != nil {
		return Continue, i.fail(start, err)
	}
	if i.log != nil {
		i.log.Debug("exec",
			zap.Int("pc", start),
			zap.String("ins", Format(ins)),
			zap.Int64("base", int64(i.Base)))
	}
	return i.exec(ins, start), nil
}

func (i *Instance) fail(pc int, err error) error {
	i.PC = pc
	i.err = errors.Wrapf(err, "pc %d", pc)
	return i.err
}

// exec applies ins. start is the address ins was decoded from.
func (i *Instance) exec(ins Instruction, start int) Signal {
	switch ins := ins.(type) {
	case Add:
		i.store(ins.Dst, i.load(ins.A)+i.load(ins.B))
	case Mul:
		i.store(ins.Dst, i.load(ins.A)*i.load(ins.B))
	case In:
		if len(i.input) == 0 {
			i.PC = start
			return NeedsInput
		}
		i.store(ins.Dst, i.input[0])
		i.input = i.input[1:]
	case Out:
		i.output, i.hasOutput = i.load(ins.Src), true
		i.steps++
		return ProducedOutput
	case JumpIfTrue:
		if i.load(ins.Cond) != 0 {
			i.jump(ins.Target)
		}
	case JumpIfFalse:
		if i.load(ins.Cond) == 0 {
			i.jump(ins.Target)
		}
	case LessThan:
		i.store(ins.Dst, b2c(i.load(ins.A) < i.load(ins.B)))
	case Equals:
		i.store(ins.Dst, b2c(i.load(ins.A) == i.load(ins.B)))
	case AdjustBase:
		i.Base += i.load(ins.Delta)
	case Halt:
		i.PC = start
		i.halted = true
		i.steps++
		return Halted
	default:
		panic(fmt.Sprintf("vm: unhandled instruction %T", ins))
	}
	i.steps++
	return Continue
}
