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

// Package ioerr holds small io helpers shared by the intcode packages.
package ioerr

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// ErrWriter wraps an io.Writer and remembers the first write error. Once an
// error occurred, Write keeps returning it without writing anything.
type ErrWriter struct {
	w   io.Writer
	Err error
}

func (w *ErrWriter) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// Print writes s and returns the sticky error.
func (w *ErrWriter) Print(s string) error {
	io.WriteString(w, s)
	return w.Err
}

// WriteInts writes the decimal representation of each value in a to w,
// separated by sep.
func WriteInts[T ~int64](w *ErrWriter, a []T, sep string) error {
	var buf []byte
	for k, v := range a {
		if k > 0 {
			buf = append(buf, sep...)
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
		// keep the buffer small for large images
		if len(buf) > 4096 {
			w.Write(buf)
			buf = buf[:0]
		}
	}
	w.Write(buf)
	return w.Err
}

// New returns a new ErrWriter. If w already is an *ErrWriter, it is returned
// as is.
func New(w io.Writer) *ErrWriter {
	if ew, ok := w.(*ErrWriter); ok {
		return ew
	}
	return &ErrWriter{w: w}
}
