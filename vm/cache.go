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
	"github.com/hashicorp/golang-lru/v2/simplelru"
)

type decoded struct {
	ins  Instruction
	next int
}

// decodeCache maps instruction addresses to decoded instructions.
type decodeCache struct {
	lru          *simplelru.LRU[int, decoded]
	hits, misses int64
}

func newDecodeCache(size int) (*decodeCache, error) {
	lru, err := simplelru.NewLRU[int, decoded](size, nil)
	if err != nil {
		return nil, err
	}
	return &decodeCache{lru: lru}, nil
}

func (c *decodeCache) get(pc int) (decoded, bool) {
	d, ok := c.lru.Get(pc)
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return d, ok
}

func (c *decodeCache) put(pc int, d decoded) {
	c.lru.Add(pc, d)
}

// invalidate drops every instruction that may contain addr: an instruction
// starting at a spans at most a..a+maxArity.
func (c *decodeCache) invalidate(addr int) {
	for a := addr - maxArity; a <= addr; a++ {
		c.lru.Remove(a)
	}
}

// CacheStats returns the decode cache hit and miss counts. Both are 0 if the
// cache is disabled.
func (i *Instance) CacheStats() (hits, misses int64) {
	if i.cache == nil {
		return 0, 0
	}
	return i.cache.hits, i.cache.misses
}
