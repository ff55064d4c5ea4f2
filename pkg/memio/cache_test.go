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

import (
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ramp(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

// Property 9 / S6, using CachePage=1024: for an underlying buffer of 4096
// known bytes, reading (addr=1020, size=8) returns bytes 1020..1027, and
// the cache contains pages 0 and 1 afterwards.
func TestSharedPageCachePageCrossing(t *testing.T) {
	underlying := &countingReader{Reader: NewBufferReader(ramp(4096))}
	c := NewSharedPageCache(underlying)

	dst := make([]byte, 8)
	if n := c.Read(1020, dst, 8); n != 8 {
		t.Fatalf("Read = %d, want 8", n)
	}
	want := ramp(4096)[1020:1028]
	if diff := cmp.Diff(want, dst); diff != "" {
		t.Errorf("unexpected bytes (-want +got):\n%s", diff)
	}
	if _, ok := c.cache[0]; !ok {
		t.Errorf("expected page 0 to be cached")
	}
	if _, ok := c.cache[1]; !ok {
		t.Errorf("expected page 1 to be cached")
	}
	if underlying.calls != 2 {
		t.Errorf("underlying.calls = %d, want 2 (one fill per page)", underlying.calls)
	}

	// A subsequent read entirely within an already-cached page must not
	// touch the underlying reader again.
	if n := c.Read(5, dst, 4); n != 4 {
		t.Fatalf("Read = %d, want 4", n)
	}
	if underlying.calls != 2 {
		t.Errorf("underlying.calls after cached read = %d, want still 2", underlying.calls)
	}
}

// S8: reads through SharedPageCache, issued one after another, produce the
// same bytes as the uncached reader for every (addr, size) in range.
func TestSharedPageCacheMatchesUncached(t *testing.T) {
	data := ramp(4096)
	uncached := NewBufferReader(data)
	cached := NewSharedPageCache(NewBufferReader(data))

	cases := []struct {
		addr uint64
		size int
	}{
		{0, 10}, {1000, 100}, {1020, 8}, {4090, 10}, {4095, 1}, {4096, 1},
	}
	for _, c := range cases {
		want := make([]byte, c.size)
		wn := uncached.Read(c.addr, want, c.size)

		got := make([]byte, c.size)
		gn := cached.Read(c.addr, got, c.size)

		if wn != gn {
			t.Fatalf("addr=%d size=%d: n mismatch got=%d want=%d", c.addr, c.size, gn, wn)
		}
		if diff := cmp.Diff(want[:wn], got[:gn]); diff != "" {
			t.Errorf("addr=%d size=%d: bytes mismatch (-want +got):\n%s", c.addr, c.size, diff)
		}
	}
}

func TestSharedPageCacheClear(t *testing.T) {
	underlying := &countingReader{Reader: NewBufferReader(ramp(4096))}
	c := NewSharedPageCache(underlying)

	dst := make([]byte, 4)
	c.Read(0, dst, 4)
	if underlying.calls != 1 {
		t.Fatalf("calls = %d, want 1", underlying.calls)
	}
	c.Read(0, dst, 4)
	if underlying.calls != 1 {
		t.Fatalf("calls after cached hit = %d, want 1", underlying.calls)
	}
	c.Clear()
	c.Read(0, dst, 4)
	if underlying.calls != 2 {
		t.Fatalf("calls after Clear = %d, want 2", underlying.calls)
	}
}

func TestSharedPageCacheFillFailureFallsThroughUncached(t *testing.T) {
	// The underlying reader only has 10 bytes, so a fill of a full
	// CachePage at page 0 will come up short (ReadFully fails) and the
	// cache must fall through to an uncached, un-clamped-by-page Read.
	underlying := &countingReader{Reader: NewBufferReader([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})}
	c := NewSharedPageCache(underlying)

	dst := make([]byte, 4)
	if n := c.Read(2, dst, 4); n != 4 {
		t.Fatalf("Read = %d, want 4", n)
	}
	if diff := cmp.Diff([]byte{3, 4, 5, 6}, dst); diff != "" {
		t.Errorf("unexpected bytes (-want +got):\n%s", diff)
	}
	if _, ok := c.cache[0]; ok {
		t.Errorf("page 0 should not remain cached after a failed fill")
	}
}

func TestThreadPageCacheHitAndClear(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("ThreadPageCache only caches on linux; other platforms degrade to uncached")
	}
	// The cache is keyed by OS thread; pin this goroutine to one.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	underlying := &countingReader{Reader: NewBufferReader(ramp(4096))}
	c := NewThreadPageCache(underlying)

	dst := make([]byte, 4)
	if n := c.Read(0, dst, 4); n != 4 {
		t.Fatalf("Read = %d, want 4", n)
	}
	if underlying.calls != 1 {
		t.Fatalf("calls = %d, want 1", underlying.calls)
	}
	// Repeated read from the same OS thread hits the cache.
	c.Read(0, dst, 4)
	if underlying.calls != 1 {
		t.Fatalf("calls after cached hit = %d, want 1", underlying.calls)
	}
	c.Clear()
	c.Read(0, dst, 4)
	if underlying.calls != 2 {
		t.Fatalf("calls after Clear = %d, want 2", underlying.calls)
	}
}
