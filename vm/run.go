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

import "github.com/pkg/errors"

// RunToNextSignal executes instructions until one of them returns a signal
// other than Continue, and returns that signal.
//
// There is no limit on the number of instructions executed: a program that
// never does I/O nor halts will keep it running forever.
func (i *Instance) RunToNextSignal() (Signal, error) {
	for {
		sig, err := i.Tick()
		if err != nil || sig != Continue {
			return sig, err
		}
	}
}

// RunUntil executes instructions until the program yields the signal want.
// Outputs produced in the meantime are left in the output slot, each one
// replacing the previous.
//
// Halted is always an acceptable stop and is returned with a nil error. So is
// NeedsInput, since the program cannot make progress until the driver feeds
// it. Callers should check the returned signal.
func (i *Instance) RunUntil(want Signal) (Signal, error) {
	if want == Continue {
		return i.Tick()
	}
	for {
		sig, err := i.RunToNextSignal()
		if err != nil {
			return sig, err
		}
		switch {
		case sig == want, sig == Halted, sig == NeedsInput:
			return sig, nil
		}
	}
}

// Run runs the program until it halts.
//
// When the program needs input, the bound InputHandler is called; it must
// feed at least one value. Outputs are passed to the bound OutputHandler, or
// collected (see Outputs) if there is none. Any error returned by a handler
// stops execution and is returned as is. For instance, an input handler
// returning io.EOF can be used to signal the end of interactive input.
//
// If a step limit has been set with the MaxSteps option, Run returns
// ErrStepLimit once it is reached.
func (i *Instance) Run() error {
	for {
		if i.maxSteps > 0 && i.steps >= i.maxSteps {
			return errors.Wrapf(ErrStepLimit, "pc %d after %d steps", i.PC, i.steps)
		}
		sig, err := i.Tick()
		if err != nil {
			return err
		}
		switch sig {
		case NeedsInput:
			if i.inH == nil {
				return errors.Wrapf(ErrNoInput, "pc %d", i.PC)
			}
			n := len(i.input)
			if err = i.inH(i); err != nil {
				return err
			}
			if len(i.input) <= n {
				return errors.Wrapf(ErrNoInput, "pc %d: input handler fed nothing", i.PC)
			}
		case ProducedOutput:
			v, _ := i.TakeOutput()
			if i.outH == nil {
				i.outputs = append(i.outputs, v)
			} else if err = i.outH(i, v); err != nil {
				return err
			}
		case Halted:
			return nil
		}
	}
}
