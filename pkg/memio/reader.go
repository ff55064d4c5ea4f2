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

// Package memio is the memory-access abstraction layer: a polymorphic,
// address-indexed byte reader with implementations over local process
// memory, traced remote process memory, mmap'd files, in-RAM buffers,
// offline snapshots, and windowed/composed views over any of the above.
//
// Every implementation satisfies a single primitive, Read, which returns
// the number of bytes actually transferred (0..size). A return of 0 means
// "no bytes available here" — end of range, an unreadable page, or a
// closed backing store — never an error channel. Callers that need a
// short read to become a hard failure use ReadFully; callers reading a
// NUL-terminated string use ReadString.
package memio

// Reader is the polymorphic byte source. Implementations must never write
// past size bytes into dst, and a return of n < size is not itself an
// error: the caller decides whether to retry at addr+n.
type Reader interface {
	// Read transfers up to size bytes from the source's logical address
	// space starting at addr into dst, returning the number of bytes
	// actually transferred. len(dst) must be >= size.
	Read(addr uint64, dst []byte, size int) int
}

// ReadFully calls Read once and reports whether the full size was
// transferred. It does not retry partial reads; implementations whose
// underlying OS calls can legitimately return partial transfers (the
// remote and local process readers) accumulate internally instead.
func ReadFully(r Reader, addr uint64, dst []byte, size int) bool {
	return r.Read(addr, dst, size) == size
}

// scratchSize is the size of the bounded scratch buffer ReadString uses
// for its first pass over the string. 256 bytes is large enough for the
// overwhelming majority of symbol names without allocating.
const scratchSize = 256

// ReadString reads a NUL-terminated byte string starting at addr, never
// examining more than maxRead bytes, and reports whether a terminator was
// found within that bound.
//
// The first pass walks scratchSize-sized blocks looking for a zero byte so
// that, once found, the exact output length is known. If the terminator
// falls in the very first block, the scratch buffer already holds the
// whole string and is returned directly. Otherwise the exact-length
// destination is allocated and the whole string is re-read with ReadFully
// — simpler than stitching together the blocks already read, and it keeps
// the common short-string case allocation-free.
func ReadString(r Reader, addr uint64, maxRead int) (string, bool) {
	var scratch [scratchSize]byte
	for offset := 0; offset < maxRead; {
		block := scratchSize
		if remaining := maxRead - offset; remaining < block {
			block = remaining
		}
		n := r.Read(addr+uint64(offset), scratch[:], block)
		if n == 0 {
			return "", false
		}
		if k := indexZero(scratch[:n]); k >= 0 {
			if offset == 0 {
				return string(scratch[:k]), true
			}
			full := make([]byte, offset+k)
			if !ReadFully(r, addr, full, len(full)) {
				return "", false
			}
			return string(full), true
		}
		offset += n
	}
	return "", false
}

// indexZero returns the index of the first zero byte in b, or -1.
func indexZero(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return -1
}
