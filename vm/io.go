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
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

type flusher interface {
	Flush() error
}

// ReadInts returns an InputHandler that feeds the next integer read from r.
// Integers may be separated by any combination of white space and commas.
// At the end of r, the handler returns io.EOF.
func ReadInts(r io.Reader) InputHandler {
	s := bufio.NewScanner(r)
	s.Split(scanInts)
	return func(i *Instance) error {
		if !s.Scan() {
			if err := s.Err(); err != nil {
				return errors.Wrap(err, "read input")
			}
			return io.EOF
		}
		v, err := strconv.ParseInt(s.Text(), 10, 64)
		if err != nil {
			return errors.Wrap(err, "read input")
		}
		i.Feed(Cell(v))
		return nil
	}
}

// WriteInts returns an OutputHandler that writes each value to w in decimal,
// one per line. If w has a Flush method, it is called after each value.
func WriteInts(w io.Writer) OutputHandler {
	var buf []byte
	return func(i *Instance, v Cell) error {
		buf = strconv.AppendInt(buf[:0], int64(v), 10)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return errors.Wrap(err, "write output")
		}
		if f, ok := w.(flusher); ok {
			return f.Flush()
		}
		return nil
	}
}

// ReadASCII returns an InputHandler that feeds a whole line read from r, one
// character code per value, including the terminating '\n'. A last line
// without a newline is fed as if it had one. At the end of r, the handler
// returns io.EOF.
func ReadASCII(r io.Reader) InputHandler {
	br := newLineReader(r)
	return func(i *Instance) error {
		line, err := br.ReadString('\n')
		if len(line) == 0 {
			if err == nil || err == io.EOF {
				return io.EOF
			}
			return errors.Wrap(err, "read input")
		}
		if line[len(line)-1] != '\n' {
			line += "\n"
		}
		i.Feed(ASCII(line)...)
		return nil
	}
}

// WriteASCII returns an OutputHandler that writes values in the ASCII range
// as characters. Other values are written in decimal on a line of their own.
// If w has a Flush method, it is called after each newline.
func WriteASCII(w io.Writer) OutputHandler {
	bw := newByteWriter(w)
	return func(i *Instance, v Cell) error {
		var err error
		if v >= 0 && v < 128 {
			err = bw.WriteByte(byte(v))
		} else {
			_, err = bw.Write(strconv.AppendInt(nil, int64(v), 10))
			if err == nil {
				err = bw.WriteByte('\n')
			}
			v = '\n'
		}
		if err != nil {
			return errors.Wrap(err, "write output")
		}
		if v == '\n' {
			if f, ok := w.(flusher); ok {
				return f.Flush()
			}
		}
		return nil
	}
}

// ASCII returns the character codes of s, for feeding text to ASCII capable
// programs.
func ASCII(s string) []Cell {
	cs := make([]Cell, len(s))
	for k := 0; k < len(s); k++ {
		cs[k] = Cell(s[k])
	}
	return cs
}
