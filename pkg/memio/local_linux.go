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

import "unsafe"

// LocalReader reads the current process's own virtual memory. It prefers
// process_vm_readv (targeting getpid()), since that keeps the read path
// identical to RemoteReader's, and falls back to a direct dereference of
// addr when that returns nothing. Unlike RemoteReader there is no sticky
// latch: the fallback is cheap and is tried on every call.
type LocalReader struct {
	pid int
}

var _ Reader = (*LocalReader)(nil)

// NewLocalReader returns a Reader over the calling process's own address
// space.
func NewLocalReader(pid int) *LocalReader {
	return &LocalReader{pid: pid}
}

// Read implements Reader.
func (l *LocalReader) Read(addr uint64, dst []byte, size int) int {
	if n := processVMRead(l.pid, addr, dst, size); n > 0 {
		return n
	}
	if size == 0 {
		return 0
	}
	src := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(addr))), size)
	copy(dst[:size], src)
	return size
}
