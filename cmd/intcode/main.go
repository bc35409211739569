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

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"github.com/piyushrungta25/intcode/asm"
	"github.com/piyushrungta25/intcode/pipeline"
	"github.com/piyushrungta25/intcode/vm"
)

const version = "0.3.0"

// cellList is a flag.Value holding comma separated integers.
type cellList []vm.Cell

func (l *cellList) String() string { return vm.Image(*l).String() }
func (l *cellList) Set(s string) error {
	img, err := vm.ParseString(s)
	if err != nil {
		return err
	}
	*l = cellList(img)
	return nil
}
func (l *cellList) Get() interface{} { return *l }

// phaseList is a repeatable flag.Value, one cellList per occurrence.
type phaseList [][]vm.Cell

func (p *phaseList) String() string {
	s := make([]string, len(*p))
	for k, ph := range *p {
		s[k] = vm.Image(ph).String()
	}
	return strings.Join(s, " ")
}
func (p *phaseList) Set(s string) error {
	var l cellList
	if err := l.Set(s); err != nil {
		return err
	}
	*p = append(*p, l)
	return nil
}
func (p *phaseList) Get() interface{} { return *p }

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, fs *flag.FlagSet, args []string) error
}

var commands = []command{
	{"run", "run [flags] program", runCmd},
	{"disasm", "disasm [flags] program", disasmCmd},
	{"asm", "asm [flags] source", asmCmd},
	{"pipeline", "pipeline [flags] program", pipelineCmd},
	{"version", "version", versionCmd},
}

var debug bool

func usage() {
	fmt.Fprintf(os.Stderr, "usage: intcode <command> [flags] [file]\n\ncommands:\n")
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "\t%s\n", c.usage)
	}
	fmt.Fprintf(os.Stderr, "\nrun 'intcode <command> -h' for the command flags.\n")
}

func newLogger() (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func atExit(err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var cmd *command
	for k := range commands {
		if commands[k].name == os.Args[1] {
			cmd = &commands[k]
		}
	}
	if cmd == nil {
		usage()
		os.Exit(2)
	}

	fs := flag.NewFlagSet(cmd.name, flag.ExitOnError)
	fs.BoolVar(&debug, "debug", false, "enable debug diagnostics and execution traces")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: intcode %s\n", cmd.usage)
		fs.PrintDefaults()
	}

	atExit(cmd.run(context.Background(), fs, os.Args[2:]))
}

// withLogger parses args, then sets up the logger.
func withLogger(ctx context.Context, fs *flag.FlagSet, args []string) (context.Context, *zap.Logger, func(), error) {
	if err := fs.Parse(args); err != nil {
		return nil, nil, nil, err
	}
	l, err := newLogger()
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "logger setup failed")
	}
	return logctx.NewContext(ctx, l), l, func() { l.Sync() }, nil
}

func loadArg(fs *flag.FlagSet) (vm.Image, error) {
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, errors.New("expected exactly one program file")
	}
	return vm.Load(fs.Arg(0))
}

func runCmd(ctx context.Context, fs *flag.FlagSet, args []string) (err error) {
	var (
		input    cellList
		ascii    = fs.Bool("ascii", false, "exchange ASCII text with the program instead of integers")
		noun     = fs.Int64("noun", -1, "if >= 0, store `value` at address 1 before running")
		verb     = fs.Int64("verb", -1, "if >= 0, store `value` at address 2 before running")
		dump     = fs.Bool("dump", false, "dump registers and memory upon exit")
		maxSteps = fs.Int64("max-steps", 0, "stop after `n` instructions (0 for no limit)")
		cache    = fs.Int("cache", 0, "decode cache `size` in instructions (0 to disable)")
		noRawIO  = fs.Bool("noraw", false, "disable raw terminal IO in ASCII mode")
	)
	fs.Var(&input, "input", "comma separated `values` fed to the program before reading stdin")

	ctx, l, sync, err := withLogger(ctx, fs, args)
	if err != nil {
		return err
	}
	defer sync()
	img, err := loadArg(fs)
	if err != nil {
		return err
	}

	stdout := bufio.NewWriter(os.Stdout)
	var (
		in  vm.InputHandler
		out vm.OutputHandler
	)
	if *ascii {
		var r io.Reader = os.Stdin
		// try to switch the terminal to raw mode.
		if !*noRawIO {
			if tearDown, err := setRawIO(); err == nil {
				defer tearDown()
				r = newRawLineReader(os.Stdin, stdout)
			} else {
				logctx.Debug(ctx, "raw IO unavailable", zap.Error(err))
			}
		}
		in, out = vm.ReadASCII(r), vm.WriteASCII(stdout)
	} else {
		in, out = vm.ReadInts(os.Stdin), vm.WriteInts(stdout)
	}

	i, err := vm.New(img,
		vm.Input(input...),
		vm.BindInputHandler(in),
		vm.BindOutputHandler(out),
		vm.MaxSteps(*maxSteps),
		vm.DecodeCache(*cache),
		vm.Logger(l.Named("vm")))
	if err != nil {
		return err
	}
	defer func() {
		stdout.Flush()
		if *dump {
			if derr := i.Dump(os.Stdout); err == nil {
				err = derr
			}
		}
		if debug {
			hits, misses := i.CacheStats()
			logctx.Info(ctx, "run complete",
				zap.String("program", img.Fingerprint()),
				zap.Int64("steps", i.Steps()),
				zap.Int64("cache_hits", hits),
				zap.Int64("cache_misses", misses),
				zap.Error(err))
		}
	}()

	if *noun >= 0 {
		if err = i.Poke(1, vm.Cell(*noun)); err != nil {
			return err
		}
	}
	if *verb >= 0 {
		if err = i.Poke(2, vm.Cell(*verb)); err != nil {
			return err
		}
	}

	// end of input while the program waits for more is a normal exit
	// condition in interactive use.
	if err = i.Run(); err == io.EOF {
		logctx.Warnf(ctx, "end of input at pc %d", i.PC)
		return nil
	}
	if err == nil && *noun >= 0 && !*dump {
		// report address 0, as used by noun/verb programs
		v, _ := i.Peek(0)
		fmt.Fprintln(stdout, v)
	}
	return err
}

func disasmCmd(ctx context.Context, fs *flag.FlagSet, args []string) error {
	base := fs.Int("base", 0, "address of the first cell")
	_, _, sync, err := withLogger(ctx, fs, args)
	if err != nil {
		return err
	}
	defer sync()
	img, err := loadArg(fs)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(os.Stdout)
	if err = asm.DisassembleAll(img, *base, w); err != nil {
		return err
	}
	return w.Flush()
}

func asmCmd(ctx context.Context, fs *flag.FlagSet, args []string) error {
	outFileName := fs.String("o", "", "write the program to `filename` instead of stdout")
	ctx, _, sync, err := withLogger(ctx, fs, args)
	if err != nil {
		return err
	}
	defer sync()
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("expected exactly one source file")
	}
	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return errors.Wrap(err, "open failed")
	}
	defer f.Close()
	img, err := asm.Assemble(fs.Arg(0), bufio.NewReader(f))
	if err != nil {
		return err
	}
	logctx.Debug(ctx, "assembled", zap.Int("cells", len(img)), zap.String("blake3", img.Fingerprint()))
	if *outFileName != "" {
		return img.Save(*outFileName)
	}
	return img.Encode(os.Stdout)
}

func pipelineCmd(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var phases phaseList
	fs.Var(&phases, "phases", "comma separated phase `values`, one per stage (can be specified multiple times)")
	feedback := fs.Bool("feedback", false, "route the last stage outputs to the first stage")
	input := fs.Int64("input", 0, "`value` fed to the first stage")
	cache := fs.Int("cache", 0, "decode cache `size` for each stage")
	ctx, _, sync, err := withLogger(ctx, fs, args)
	if err != nil {
		return err
	}
	defer sync()
	img, err := loadArg(fs)
	if err != nil {
		return err
	}
	if len(phases) == 0 {
		return errors.Wrap(pipeline.ErrNoStages, "missing -phases")
	}
	res, err := pipeline.Evaluate(ctx, img, phases, vm.Cell(*input),
		pipeline.Feedback(*feedback),
		pipeline.VMOptions(vm.DecodeCache(*cache)))
	if err != nil {
		return err
	}
	w := bufio.NewWriter(os.Stdout)
	for _, v := range res {
		fmt.Fprintln(w, v)
	}
	return w.Flush()
}

func versionCmd(ctx context.Context, fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	fmt.Println("intcode", version)
	return nil
}
