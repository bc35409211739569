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
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/piyushrungta25/intcode/vm"
)

func TestRawLineReader(t *testing.T) {
	var echo bytes.Buffer
	r := newRawLineReader(strings.NewReader("norx\x7fth\rab\x08c\n\x04"), bufio.NewWriter(&echo))
	s, err := r.ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, "north\n", s)
	s, err = r.ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, "ac\n", s)
	_, err = r.ReadString('\n')
	require.Equal(t, io.EOF, err)
	require.Equal(t, "norx\b \bth\nab\b \bc\n", echo.String())
}

func TestRawLineReader_ascii(t *testing.T) {
	var out bytes.Buffer
	w := bufio.NewWriter(&out)
	r := newRawLineReader(strings.NewReader("hi\r\x04"), w)
	i, err := vm.New(vm.Image{3, 100, 4, 100, 1105, 1, 0},
		vm.BindInputHandler(vm.ReadASCII(r)),
		vm.BindOutputHandler(vm.WriteASCII(w)))
	require.NoError(t, err)
	require.Equal(t, io.EOF, i.Run())
	require.NoError(t, w.Flush())
	// echo, then program output
	require.Equal(t, "hi\nhi\n", out.String())
}

func TestCellList(t *testing.T) {
	var l cellList
	require.NoError(t, l.Set("1, -2,3"))
	require.Equal(t, cellList{1, -2, 3}, l)
	require.Equal(t, "1,-2,3", l.String())
	require.Error(t, l.Set("1,x"))

	var p phaseList
	require.NoError(t, p.Set("0,1"))
	require.NoError(t, p.Set("1,0"))
	require.Equal(t, phaseList{{0, 1}, {1, 0}}, p)
	require.Equal(t, "0,1 1,0", p.String())
}
