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

// Package pipeline chains Intcode instances running the same program.
//
// Each stage is an independent vm.Instance seeded with its own phase value.
// The outputs of a stage are fed to the next one, and in feedback mode the
// outputs of the last stage are fed back to the first. Stages are driven
// round-robin from a single goroutine: they never share memory and never
// block on each other.
//
// Evaluate runs several pipelines with different phase settings in parallel.
package pipeline

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/piyushrungta25/intcode/vm"
)

// Errors returned by Run.
var (
	ErrNoStages = errors.New("no stages")
	ErrDeadlock = errors.New("deadlock: every running stage is waiting for input")
	ErrNoOutput = errors.New("last stage halted without output")
	ErrStarted  = errors.New("pipeline already started")
)

// Pipeline is a chain of instances.
type Pipeline struct {
	stages   []*vm.Instance
	feedback bool
	vmOpts   []vm.Option
	started  bool
}

// Option configures a Pipeline.
type Option func(p *Pipeline) error

// Feedback enables or disables feedback mode: the outputs of the last stage
// are routed to the first one.
func Feedback(enable bool) Option {
	return func(p *Pipeline) error { p.feedback = enable; return nil }
}

// VMOptions sets additional options applied to every stage, after its phase
// has been queued.
func VMOptions(opts ...vm.Option) Option {
	return func(p *Pipeline) error {
		p.vmOpts = append(p.vmOpts, opts...)
		return nil
	}
}

// New creates a pipeline with one stage per phase. Each stage runs its own
// copy of prog and gets its phase as first input.
func New(prog vm.Image, phases []vm.Cell, opts ...Option) (*Pipeline, error) {
	if len(phases) == 0 {
		return nil, ErrNoStages
	}
	p := new(Pipeline)
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	p.stages = make([]*vm.Instance, len(phases))
	for k, ph := range phases {
		i, err := vm.New(prog, append([]vm.Option{vm.Input(ph)}, p.vmOpts...)...)
		if err != nil {
			return nil, errors.Wrapf(err, "stage %d", k)
		}
		p.stages[k] = i
	}
	return p, nil
}

// Stages returns the pipeline stages.
func (p *Pipeline) Stages() []*vm.Instance {
	return p.stages
}

// Run feeds input to the first stage and runs the pipeline until the last
// stage halts. It returns the last value output by the last stage.
//
// Stages are given turns in order. On its turn, a stage that has not halted
// runs until it outputs a value, needs input or halts. If no stage outputs
// anything in a whole round, no stage can make progress and Run fails with
// ErrDeadlock. The context is checked between rounds.
//
// Run can only be called once.
func (p *Pipeline) Run(ctx context.Context, input vm.Cell) (vm.Cell, error) {
	if p.started {
		return 0, ErrStarted
	}
	p.started = true
	p.stages[0].Feed(input)

	last := len(p.stages) - 1
	var (
		result vm.Cell
		got    bool
	)
	for round := 1; ; round++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		outputs := 0
		for k, s := range p.stages {
			if s.Halted() {
				continue
			}
			sig, err := s.RunToNextSignal()
			if err != nil {
				return 0, errors.Wrapf(err, "stage %d", k)
			}
			if sig != vm.ProducedOutput {
				continue
			}
			v, _ := s.TakeOutput()
			outputs++
			switch {
			case k < last:
				p.stages[k+1].Feed(v)
			default:
				result, got = v, true
				if p.feedback {
					p.stages[0].Feed(v)
				}
			}
		}
		if p.stages[last].Halted() {
			logctx.Debug(ctx, "pipeline halted", zap.Int("rounds", round), zap.Bool("output", got))
			if !got {
				return 0, ErrNoOutput
			}
			return result, nil
		}
		if outputs == 0 {
			logctx.Warnf(ctx, "pipeline deadlocked in round %d", round)
			return 0, errors.Wrapf(ErrDeadlock, "round %d", round)
		}
	}
}

// Evaluate runs one pipeline of prog per entry in settings, all with the
// same input and options, and returns their results in the same order.
// Pipelines run concurrently, up to GOMAXPROCS at a time. The first error
// cancels the remaining runs and is returned.
func Evaluate(ctx context.Context, prog vm.Image, settings [][]vm.Cell, input vm.Cell, opts ...Option) ([]vm.Cell, error) {
	res := make([]vm.Cell, len(settings))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for k, phases := range settings {
		k, phases := k, phases
		eg.Go(func() error {
			p, err := New(prog, phases, opts...)
			if err != nil {
				return err
			}
			v, err := p.Run(ctx, input)
			if err != nil {
				return errors.Wrapf(err, "phases %v", phases)
			}
			res[k] = v
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	logctx.Debug(ctx, "evaluated", zap.Int("pipelines", len(settings)))
	return res, nil
}
