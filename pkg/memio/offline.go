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

import "encoding/binary"

// OfflineReader wraps a FileReader holding an offline memory snapshot: the
// first 8 bytes of the file are a little-endian base address, and every
// byte after that is exposed at logical address start+k. It is built on
// top of a RangeReader over the underlying FileReader.
type OfflineReader struct {
	file  *FileReader
	inner *RangeReader
}

var _ Reader = (*OfflineReader)(nil)

// NewOfflineReader opens the snapshot file at path starting at byte
// offset and parses its header. It returns (nil, false) if the file
// cannot be mapped or its header is missing or truncated (file shorter
// than 8 bytes past offset).
func NewOfflineReader(path string, offset uint64) (*OfflineReader, bool) {
	file, ok := NewFileReader(path, offset, ^uint64(0))
	if !ok {
		return nil, false
	}

	var header [8]byte
	if !ReadFully(file, 0, header[:], len(header)) {
		file.Close()
		return nil, false
	}
	start := binary.LittleEndian.Uint64(header[:])

	fileSize := uint64(file.size)
	if fileSize < uint64(len(header)) {
		file.Close()
		return nil, false
	}
	size := fileSize - uint64(len(header))

	return &OfflineReader{
		file:  file,
		inner: NewRangeReader(file, uint64(len(header)), size, start),
	}, true
}

// Read implements Reader.
func (o *OfflineReader) Read(addr uint64, dst []byte, size int) int {
	return o.inner.Read(addr, dst, size)
}

// Close releases the underlying mapped file.
func (o *OfflineReader) Close() error {
	return o.file.Close()
}

// OfflinePartsReader holds an ordered list of OfflineReaders, each
// covering a disjoint offline snapshot. A read probes them in order; the
// first part that returns a non-zero count wins, verbatim, with no
// splicing across parts — a read that straddles the boundary between two
// parts returns only the first matching part's contribution.
type OfflinePartsReader struct {
	parts []*OfflineReader
}

var _ Reader = (*OfflinePartsReader)(nil)

// NewOfflinePartsReader takes ownership of parts; Close releases them all.
func NewOfflinePartsReader(parts []*OfflineReader) *OfflinePartsReader {
	return &OfflinePartsReader{parts: parts}
}

// Read implements Reader.
func (p *OfflinePartsReader) Read(addr uint64, dst []byte, size int) int {
	for _, part := range p.parts {
		if n := part.Read(addr, dst, size); n != 0 {
			return n
		}
	}
	return 0
}

// Close releases every owned part, returning the first error encountered
// (if any), after attempting to close them all.
func (p *OfflinePartsReader) Close() error {
	var first error
	for _, part := range p.parts {
		if err := part.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// OfflineBufferReader exposes an in-RAM snapshot buffer with an explicit
// base address, as the address space [start, end). Unlike BufferReader,
// whose address space always begins at 0, this lets a caller hand in a
// snapshot captured from an arbitrary base address. data must have at
// least end-start bytes.
type OfflineBufferReader struct {
	data  []byte
	start uint64
	end   uint64
}

var _ Reader = (*OfflineBufferReader)(nil)

// NewOfflineBufferReader returns an OfflineBufferReader over data,
// exposed as the logical address range [start, end).
func NewOfflineBufferReader(data []byte, start, end uint64) *OfflineBufferReader {
	return &OfflineBufferReader{data: data, start: start, end: end}
}

// Reset repoints the reader at a different buffer/range without
// reallocating, mirroring the original's reusable-view pattern for
// streaming through a sequence of captured snapshots.
func (o *OfflineBufferReader) Reset(data []byte, start, end uint64) {
	o.data = data
	o.start = start
	o.end = end
}

// Read implements Reader.
func (o *OfflineBufferReader) Read(addr uint64, dst []byte, size int) int {
	if addr < o.start || addr >= o.end {
		return 0
	}
	readLength := uint64(size)
	if remaining := o.end - addr; readLength > remaining {
		readLength = remaining
	}
	off := addr - o.start
	copy(dst[:readLength], o.data[off:off+readLength])
	return int(readLength)
}
