// Copyright 2026 The gomemio Authors.
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

//go:build linux

package memio

import (
	"runtime"
	"sync"
	"syscall"
)

// ThreadPageCache wraps a Reader in a per-OS-thread page cache. Go has no
// pthread-style TLS destructor; per the layer's design note, where a
// language has no TLS primitive with a destructor, a weak-scoped thread
// identifier plus a global map purged at explicit lifecycle events stands
// in for it. This uses the calling goroutine's current OS thread id
// (syscall.Gettid()) as that identifier, keyed into this cache's own
// sync.Map. Read locks the goroutine to its OS thread for the whole call,
// so no other goroutine can use the same thread's map meanwhile. Clear
// only ever touches the calling thread's own entry, matching the
// original's "delete only the calling thread's cache" contract.
type ThreadPageCache struct {
	underlying Reader
	caches     sync.Map // tid (int) -> pageSlots
	enabled    bool
}

var _ Reader = (*ThreadPageCache)(nil)

// NewThreadPageCache wraps underlying in a per-thread page cache.
func NewThreadPageCache(underlying Reader) *ThreadPageCache {
	return &ThreadPageCache{underlying: underlying, enabled: true}
}

// Read implements Reader.
func (c *ThreadPageCache) Read(addr uint64, dst []byte, size int) int {
	if !c.enabled {
		return c.underlying.Read(addr, dst, size)
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	tid := syscall.Gettid()
	cache, _ := c.caches.LoadOrStore(tid, pageSlots{})
	return internalCachedRead(c.underlying, addr, dst, size, cache.(pageSlots))
}

// Clear deletes only the calling thread's cache.
func (c *ThreadPageCache) Clear() {
	if !c.enabled {
		return
	}
	c.caches.Delete(syscall.Gettid())
}
