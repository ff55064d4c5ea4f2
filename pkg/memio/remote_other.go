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

// RemoteReader is unsupported on this platform: process_vm_readv and
// ptrace PEEKTEXT are Linux-specific. Read always returns 0.
type RemoteReader struct {
	pid int
}

var _ Reader = (*RemoteReader)(nil)

// NewRemoteReader returns a Reader over pid's address space. On this
// platform it never transfers any bytes.
func NewRemoteReader(pid int) *RemoteReader {
	return &RemoteReader{pid: pid}
}

// Read implements Reader.
func (r *RemoteReader) Read(addr uint64, dst []byte, size int) int {
	return 0
}
