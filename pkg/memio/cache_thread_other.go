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

//go:build !linux

package memio

import "github.com/google/gomemio/internal/memlog"

// ThreadPageCache has no portable OS-thread identifier to key on outside
// Linux, equivalent to TLS key registration being refused; per spec it
// degrades permanently to uncached delegation.
type ThreadPageCache struct {
	underlying Reader
}

var _ Reader = (*ThreadPageCache)(nil)

// NewThreadPageCache wraps underlying. On this platform it never caches.
func NewThreadPageCache(underlying Reader) *ThreadPageCache {
	memlog.Warningf("memio: per-thread page cache unsupported on this platform, degrading to uncached reads")
	return &ThreadPageCache{underlying: underlying}
}

// Read implements Reader.
func (c *ThreadPageCache) Read(addr uint64, dst []byte, size int) int {
	return c.underlying.Read(addr, dst, size)
}

// Clear is a no-op on this platform.
func (c *ThreadPageCache) Clear() {}
