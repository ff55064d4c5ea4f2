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

import "sort"

// RangeReader exposes a window [offset, offset+length) over an inner
// Reader, rebased so that logical address offset+k reads from begin+k in
// the inner reader's address space. Multiple RangeReaders may share one
// inner Reader (e.g. several windows over the same mmap'd file); Go
// interface values already carry the reference semantics the original
// shared_ptr<Memory> existed for, so no explicit refcounting is needed
// here.
type RangeReader struct {
	inner  Reader
	begin  uint64
	length uint64
	offset uint64
}

var _ Reader = (*RangeReader)(nil)

// NewRangeReader returns a RangeReader over inner, exposing
// [offset, offset+length) and reading inner starting at begin.
func NewRangeReader(inner Reader, begin, length, offset uint64) *RangeReader {
	return &RangeReader{inner: inner, begin: begin, length: length, offset: offset}
}

// Offset returns the window's base logical address.
func (r *RangeReader) Offset() uint64 { return r.offset }

// Length returns the window's length.
func (r *RangeReader) Length() uint64 { return r.length }

// Read implements Reader.
func (r *RangeReader) Read(addr uint64, dst []byte, size int) int {
	if addr < r.offset {
		return 0
	}
	readOffset := addr - r.offset
	if readOffset >= r.length {
		return 0
	}
	readLength := uint64(size)
	if remaining := r.length - readOffset; readLength > remaining {
		readLength = remaining
	}
	readAddr := r.begin + readOffset
	if readAddr < r.begin {
		// Overflow in begin + readOffset.
		return 0
	}
	return r.inner.Read(readAddr, dst, int(readLength))
}

// RangesReader dispatches a read to exactly one of many RangeReaders,
// selected by address interval. Ranges are keyed by their exclusive upper
// bound (offset+length, clamped to math.MaxUint64 on overflow); a lookup
// selects the range with the smallest upper bound strictly greater than
// the requested address, matching C++ std::map::upper_bound semantics.
// Two ranges inserted with the same upper bound: the later Insert wins,
// the earlier entry is overwritten.
type RangesReader struct {
	// keys is kept sorted ascending; ranges[i] corresponds to keys[i].
	keys   []uint64
	ranges []*RangeReader
}

var _ Reader = (*RangesReader)(nil)

// NewRangesReader returns an empty RangesReader.
func NewRangesReader() *RangesReader {
	return &RangesReader{}
}

// Insert adds (or replaces) a range keyed by its exclusive upper bound.
func (rs *RangesReader) Insert(r *RangeReader) {
	lastAddr := r.offset + r.length
	if lastAddr < r.offset {
		// Overflow: clamp to the maximum representable value.
		lastAddr = ^uint64(0)
	}
	i := sort.Search(len(rs.keys), func(i int) bool { return rs.keys[i] >= lastAddr })
	if i < len(rs.keys) && rs.keys[i] == lastAddr {
		rs.ranges[i] = r
		return
	}
	rs.keys = append(rs.keys, 0)
	copy(rs.keys[i+1:], rs.keys[i:])
	rs.keys[i] = lastAddr

	rs.ranges = append(rs.ranges, nil)
	copy(rs.ranges[i+1:], rs.ranges[i:])
	rs.ranges[i] = r
}

// Read implements Reader. It consults exactly one RangeReader: the one
// whose upper bound is the smallest value strictly greater than addr. If
// none exists, it returns 0 without trying any other range.
func (rs *RangesReader) Read(addr uint64, dst []byte, size int) int {
	i := upperBound(rs.keys, addr)
	if i == len(rs.keys) {
		return 0
	}
	return rs.ranges[i].Read(addr, dst, size)
}

// upperBound returns the index of the smallest element of keys strictly
// greater than addr, or len(keys) if none exists.
func upperBound(keys []uint64, addr uint64) int {
	return sort.Search(len(keys), func(i int) bool { return keys[i] > addr })
}
