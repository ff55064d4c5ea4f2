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

import "unsafe"

// LocalReader reads the current process's own virtual memory by direct
// dereference. On non-Linux platforms there is no process_vm_readv to
// prefer, so this is the only mechanism.
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
	if size == 0 {
		return 0
	}
	src := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(addr))), size)
	copy(dst[:size], src)
	return size
}
