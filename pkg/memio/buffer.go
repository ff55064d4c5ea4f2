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

// BufferReader exposes an in-RAM byte slice as a Reader over the address
// space [0, len(raw)). The caller retains ownership of raw; BufferReader
// never mutates it.
type BufferReader struct {
	raw []byte
}

var _ Reader = (*BufferReader)(nil)

// NewBufferReader wraps raw, a borrowed or owned contiguous region, as a
// Reader. raw is not copied.
func NewBufferReader(raw []byte) *BufferReader {
	return &BufferReader{raw: raw}
}

// Read implements Reader.
func (b *BufferReader) Read(addr uint64, dst []byte, size int) int {
	if addr >= uint64(len(b.raw)) {
		return 0
	}
	bytesLeft := len(b.raw) - int(addr)
	n := size
	if bytesLeft < n {
		n = bytesLeft
	}
	copy(dst[:n], b.raw[addr:int(addr)+n])
	return n
}
