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

package memio

import "sync"

// SharedPageCache wraps a Reader in a single process-wide page cache
// guarded by one mutex held for the whole call. This is coarse and
// deliberate: the design target is a single reader making occasional
// concurrent calls, not a cache tuned for high-concurrency throughput. It
// is safe, not fast, to call Read/Clear from multiple goroutines.
type SharedPageCache struct {
	underlying Reader

	mu    sync.Mutex
	cache pageSlots
}

var _ Reader = (*SharedPageCache)(nil)

// NewSharedPageCache wraps underlying in a mutex-guarded shared page
// cache.
func NewSharedPageCache(underlying Reader) *SharedPageCache {
	return &SharedPageCache{underlying: underlying, cache: pageSlots{}}
}

// Read implements Reader.
func (c *SharedPageCache) Read(addr uint64, dst []byte, size int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return internalCachedRead(c.underlying, addr, dst, size, c.cache)
}

// Clear empties the cache, forcing every page to be refilled on next
// access.
func (c *SharedPageCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = pageSlots{}
}
