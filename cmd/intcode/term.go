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
	"io"
)

const (
	ctrlD     = 4
	backspace = 8
	del       = 127
)

// rawLineReader does the line editing of a terminal in raw mode: it echoes
// what is typed, handles backspace and returns io.EOF on CTRL-D at the start
// of a line.
type rawLineReader struct {
	r       *bufio.Reader
	echo    *bufio.Writer
	pending string
}

func newRawLineReader(r io.Reader, echo *bufio.Writer) *rawLineReader {
	return &rawLineReader{r: bufio.NewReader(r), echo: echo}
}

func (l *rawLineReader) Read(p []byte) (int, error) {
	if len(l.pending) == 0 {
		s, err := l.ReadString('\n')
		if len(s) == 0 {
			return 0, err
		}
		l.pending = s
	}
	n := copy(p, l.pending)
	l.pending = l.pending[n:]
	return n, nil
}

func (l *rawLineReader) ReadString(delim byte) (string, error) {
	// pending program output must be visible before the user types.
	if err := l.echo.Flush(); err != nil {
		return "", err
	}
	var line []byte
	for {
		c, err := l.r.ReadByte()
		if err != nil {
			return string(line), err
		}
		switch c {
		case ctrlD:
			if len(line) == 0 {
				return "", io.EOF
			}
			continue
		case backspace, del:
			if len(line) > 0 {
				line = line[:len(line)-1]
				l.echo.Write([]byte{backspace, ' ', backspace})
				l.echo.Flush()
			}
			continue
		case '\r':
			c = '\n'
		}
		line = append(line, c)
		l.echo.WriteByte(c)
		l.echo.Flush()
		if c == delim {
			return string(line), nil
		}
	}
}
