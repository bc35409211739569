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

package asm

import (
	"io"
	"sort"
	"strconv"
	"text/scanner"
	"unicode"

	"github.com/piyushrungta25/intcode/vm"
)

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

// parser states
const (
	stateAny     = iota // expect a mnemonic, label or directive
	stateOperand        // expect an instruction operand
	stateDat            // after .dat: raw values until the next mnemonic or directive
	stateOrg            // expect the .org address
	stateEqu            // expect the .equ value
)

type parser struct {
	i       []vm.Cell
	pc      int
	size    int
	s       scanner.Scanner
	labels  map[string]*label
	consts  map[string]labelSite
	state   int
	opPC    int // address of the instruction being assembled
	operand int // index of its next operand
	arity   int
	cstName string
	cstPos  scanner.Position
	errs    ErrAsm
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	p.consts = make(map[string]labelSite)
	return p
}

func (p *parser) write(v vm.Cell) {
	for p.pc >= len(p.i) {
		p.i = append(p.i, make([]vm.Cell, 1024)...)
	}
	p.i[p.pc] = v
	p.pc++
	if p.pc > p.size {
		p.size = p.pc
	}
}

func (p *parser) useLabel(name string) {
	lbl := p.labels[name]
	if lbl == nil {
		lbl = &label{
			// use current position as valid temp position
			labelSite{p.s.Position, -1},
			nil,
		}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{p.s.Position, p.pc})
}

func (p *parser) errorAt(pos scanner.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, Error{pos, msg})
	}
}

func (p *parser) error(msg string) {
	pos := p.s.Position
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	p.errorAt(pos, msg)
}

// value parses an operand token. It returns the addressing mode given by its
// prefix, the value if it is a literal or constant, and the label name
// otherwise.
func (p *parser) value(s string) (mode vm.Mode, v vm.Cell, lbl string, ok bool) {
	switch s[0] {
	case '#':
		mode, s = vm.Immediate, s[1:]
	case '@':
		mode, s = vm.Relative, s[1:]
	}
	if len(s) == 0 {
		p.error("Missing operand value")
		return mode, 0, "", false
	}
	// check int
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return mode, vm.Cell(n), "", true
	}
	// check char
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, _, tail, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
		if err != nil || tail != "" {
			p.error("Invalid character literal " + s)
			return mode, 0, "", false
		}
		return mode, vm.Cell(r), "", true
	}
	// constant ?
	if c, ok := p.consts[s]; ok {
		return mode, vm.Cell(c.address), "", true
	}
	return mode, 0, s, true
}

func (p *parser) defineLabel(n string) {
	if len(n) == 0 {
		p.error("Empty label name")
		return
	}
	if cst, ok := p.consts[n]; ok {
		p.error("Label redefinition: " + n + ", previously defined as a constant here: " + cst.pos.String())
		return
	}
	if l, ok := p.labels[n]; ok {
		if l.address != -1 {
			p.error("Label redefinition: " + n + ", previous definition here: " + l.pos.String())
			return
		}
		l.address = p.pc
		l.pos = p.s.Position
		return
	}
	p.labels[n] = &label{labelSite{p.s.Position, p.pc}, nil}
}

func (p *parser) directive(s string) {
	switch s {
	case ".org":
		p.state = stateOrg
	case ".dat":
		p.state = stateDat
	case ".equ":
		if t := p.s.Scan(); t != scanner.Ident {
			p.error(".equ: expected identifier, got " + p.s.TokenText())
			return
		}
		p.cstName = p.s.TokenText()
		if l, ok := p.labels[p.cstName]; ok {
			p.error(".equ: redefinition of " + p.cstName + ", previously defined/used as a label here: " + l.pos.String())
			return
		}
		p.cstPos = p.s.Position
		p.state = stateEqu
	default:
		p.error("Unknown directive: " + s)
	}
}

func (p *parser) mnemonic(op vm.Opcode) {
	p.opPC = p.pc
	p.operand = 0
	p.arity = op.Arity()
	p.write(vm.Cell(op))
	if p.arity > 0 {
		p.state = stateOperand
	} else {
		p.state = stateAny
	}
}

// operand assembles the next operand of the current instruction and sets its
// mode digit in the opcode word.
func (p *parser) operandValue(mode vm.Mode, v vm.Cell, lbl string) {
	var digit vm.Cell = 100
	for k := 0; k < p.operand; k++ {
		digit *= 10
	}
	p.i[p.opPC] += vm.Cell(mode) * digit
	if lbl != "" {
		p.useLabel(lbl)
	}
	p.write(v)
	p.operand++
	if p.operand == p.arity {
		p.state = stateAny
	}
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) (vm.Image, error) {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.error(msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.s.Scan(); tok != scanner.EOF && len(p.errs) < maxErrors; tok = p.s.Scan() {
		s := p.s.TokenText()
		if tok != scanner.Ident {
			p.error("Unexpected character " + strconv.QuoteRune(tok))
			continue
		}

		// comments
		if s == "(" {
			for ; tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")"); tok = p.s.Scan() {
			}
			continue
		}

		switch {
		case s[0] == ':':
			if p.state != stateAny && p.state != stateDat {
				p.error("Unexpected label definition: " + s)
				continue
			}
			p.defineLabel(s[1:])
			continue
		case s[0] == '.':
			if p.state == stateOperand {
				p.error("Missing operand before directive " + s)
			}
			p.directive(s)
			continue
		}

		if op, ok := opcodeIndex[s]; ok {
			if p.state == stateOperand || p.state == stateOrg || p.state == stateEqu {
				p.error("Unexpected mnemonic: " + s)
			}
			p.mnemonic(op)
			continue
		}

		mode, v, lbl, ok := p.value(s)
		if !ok {
			continue
		}
		switch p.state {
		case stateOperand:
			p.operandValue(mode, v, lbl)
		case stateDat:
			if mode != vm.Positional {
				p.error("Unexpected addressing mode in .dat: " + s)
				continue
			}
			if lbl != "" {
				p.useLabel(lbl)
			}
			p.write(v)
		case stateOrg, stateEqu:
			if mode != vm.Positional || lbl != "" {
				p.error("Expected integer or constant, got " + s)
			} else if p.state == stateOrg {
				if v < 0 {
					p.error("Negative .org address: " + s)
				} else {
					p.pc = int(v)
				}
			} else {
				p.consts[p.cstName] = labelSite{p.cstPos, int(v)}
			}
			p.state = stateAny
		default:
			p.error("Unexpected operand: " + s)
		}
	}

	if p.state == stateOperand {
		p.error("Missing operand at end of input")
	}

	// write labels, sorted for stable error reporting
	names := make([]string, 0, len(p.labels))
	for n := range p.labels {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		l := p.labels[n]
		if l.address == -1 {
			p.errorAt(l.uses[0].pos, "Undefined label "+n)
			continue
		}
		for _, u := range l.uses {
			p.i[u.address] = vm.Cell(l.address)
		}
	}

	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return vm.Image(p.i[:p.size]), nil
}
