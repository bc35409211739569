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
	"bytes"
	"encoding/hex"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"lukechampine.com/blake3"

	"github.com/piyushrungta25/intcode/internal/ioerr"
)

// Image is an Intcode program: the initial contents of memory.
type Image []Cell

// Parse reads a program in its text form: signed decimal integers separated
// by commas. White space around the integers, including a trailing newline,
// is ignored.
func Parse(r io.Reader) (Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, errors.New("empty program")
	}
	fields := strings.Split(text, ",")
	img := make(Image, len(fields))
	for k, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "cell %d", k)
		}
		img[k] = Cell(v)
	}
	return img, nil
}

// ParseString parses a program from a string. See Parse.
func ParseString(s string) (Image, error) {
	return Parse(strings.NewReader(s))
}

// Load loads a program from file fileName.
func Load(fileName string) (Image, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	img, err := Parse(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", fileName)
	}
	return img, nil
}

// Encode writes img to w in text form, followed by a newline.
func (img Image) Encode(w io.Writer) error {
	ew := ioerr.New(w)
	ioerr.WriteInts(ew, img, ",")
	return ew.Print("\n")
}

// Save saves img to file fileName in text form. The file is removed if
// writing fails.
func (img Image) Save(fileName string) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	w := bufio.NewWriter(f)
	defer func() {
		if ferr := w.Flush(); err == nil && ferr != nil {
			err = errors.Wrap(ferr, "save failed")
		}
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "save failed")
		}
		// delete file on error
		if err != nil {
			os.Remove(fileName)
		}
	}()
	return errors.Wrap(img.Encode(w), "save failed")
}

// Clone returns a copy of img.
func (img Image) Clone() Image {
	if img == nil {
		return nil
	}
	c := make(Image, len(img))
	copy(c, img)
	return c
}

// Fingerprint returns the hex encoded BLAKE3-256 hash of the text form of
// img. Two images have the same fingerprint if and only if they hold the same
// program.
func (img Image) Fingerprint() string {
	var b bytes.Buffer
	img.Encode(&b)
	sum := blake3.Sum256(b.Bytes())
	return hex.EncodeToString(sum[:])
}

func (img Image) String() string {
	var b strings.Builder
	ioerr.WriteInts(ioerr.New(&b), img, ",")
	return b.String()
}
