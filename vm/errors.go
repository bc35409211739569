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

// Program contract violations. They are fatal to the instance that raised
// them. Use errors.Is or errors.Cause to test for them.
var (
	ErrMalformedOpcode = errors.New("malformed opcode")
	ErrMalformedMode   = errors.New("malformed addressing mode")
	ErrIllegalWrite    = errors.New("write to immediate parameter")
	ErrNegativeAddress = errors.New("negative address")
)

// Errors returned by the Run driver.
var (
	ErrNoInput   = errors.New("no input available")
	ErrStepLimit = errors.New("step limit exceeded")
)

// fault carries a contract violation from the memory and executor helpers up
// to Tick, which recovers it.
type fault struct {
	error
}

func raise(err error, format string, args ...interface{}) {
	panic(fault{errors.Wrapf(err, format, args...)})
}
